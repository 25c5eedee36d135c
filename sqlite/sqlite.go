// Package sqlite reads stored column names from SQLite tables, so a scrub
// class can tell stored attributes from virtual ones.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/zoobzio/scrub"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const (
	driverName = "sqlite"
	memoryPath = ":memory:"
)

const columnsQuery = `SELECT name FROM pragma_table_info(?) ORDER BY cid`

// Queryer is satisfied by *sql.DB, *sql.Tx and *sql.Conn.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Open opens the SQLite database at path. An empty path or ":memory:" opens
// an in-memory database pinned to a single connection.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = memoryPath
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if path == memoryPath {
		// every connection would get its own empty database
		db.SetMaxOpenConns(1)
	}
	return db, nil
}

// TableColumns returns the column names of table in declaration order.
// A missing table yields an error wrapping scrub.ErrNoColumns.
func TableColumns(ctx context.Context, q Queryer, table string) ([]string, error) {
	rows, err := q.QueryContext(ctx, columnsQuery, table)
	if err != nil {
		return nil, fmt.Errorf("table info %s: %w", table, err)
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
		return nil, fmt.Errorf("table info %s: %w", table, err)
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
