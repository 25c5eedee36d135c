// Package postgres reads stored column names from Postgres tables through
// information_schema, so a scrub class can tell stored attributes from
// virtual ones.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	"github.com/zoobzio/scrub"
)

const defaultDriver = "pgx"

const (
	columnsQuery = `SELECT column_name FROM information_schema.columns
WHERE table_schema = current_schema() AND table_name = $1
ORDER BY ordinal_position`

	schemaColumnsQuery = `SELECT column_name FROM information_schema.columns
WHERE table_schema = $1 AND table_name = $2
ORDER BY ordinal_position`
)

var (
	sqlOpen = sql.Open
	openMu  sync.Mutex
)

// Queryer is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Open connects to Postgres with dsn and verifies the connection.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	openMu.Lock()
	db, err := sqlOpen(defaultDriver, dsn)
	openMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// TableColumns returns the column names of table in ordinal order.
// table may be schema-qualified ("audit.users"); otherwise the current
// schema is used. A missing table yields an error wrapping scrub.ErrNoColumns.
func TableColumns(ctx context.Context, q Queryer, table string) ([]string, error) {
	query, args := columnsQuery, []any{table}
	if schema, name, ok := strings.Cut(table, "."); ok {
		query, args = schemaColumnsQuery, []any{schema, name}
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select columns %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select columns %s: %w", table, err)
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %s: %w", table, scrub.ErrNoColumns)
	}
	return cols, nil
}

// Columns reads the columns of table and returns them as a class option.
func Columns(ctx context.Context, q Queryer, table string) (scrub.Option, error) {
	cols, err := TableColumns(ctx, q, table)
	if err != nil {
		return nil, err
	}
	return scrub.WithColumns(cols...), nil
}

// OverrideSQLOpen swaps the sqlOpen function for tests and returns a restore function.
func OverrideSQLOpen(fn func(driverName, dataSourceName string) (*sql.DB, error)) func() {
	openMu.Lock()
	defer openMu.Unlock()
	prev := sqlOpen
	sqlOpen = fn
	return func() {
		openMu.Lock()
		defer openMu.Unlock()
		sqlOpen = prev
	}
}
