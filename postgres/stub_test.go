package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"sync/atomic"
)

var stubSeq atomic.Int64

// stubConn answers information_schema queries from an in-memory table map.
type stubConn struct {
	tables  map[string][]string // "schema.table" -> columns
	queries []string
	args    [][]any
	failQ   bool
	failPin bool
}

func newStubDB(tables map[string][]string) (*sql.DB, *stubConn) {
	conn := &stubConn{tables: tables}
	name := fmt.Sprintf("stubpg%d", stubSeq.Add(1))
	sql.Register(name, &stubDriver{conn: conn})
	db, err := sql.Open(name, "stub")
	if err != nil {
		panic(err)
	}
	return db, conn
}

type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(string) (driver.Conn, error) {
	return d.conn, nil
}

func (c *stubConn) Prepare(string) (driver.Stmt, error) { return nil, fmt.Errorf("not implemented") }
func (c *stubConn) Close() error                        { return nil }
func (c *stubConn) Begin() (driver.Tx, error)           { return nil, fmt.Errorf("not implemented") }

func (c *stubConn) Ping(_ context.Context) error {
	if c.failPin {
		return fmt.Errorf("ping fail")
	}
	return nil
}

func (c *stubConn) QueryContext(_ context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	vals := make([]any, len(args))
	for i, a := range args {
		vals[i] = a.Value
	}
	c.queries = append(c.queries, query)
	c.args = append(c.args, vals)
	if c.failQ {
		return nil, fmt.Errorf("query fail")
	}

	key := ""
	switch len(vals) {
	case 1:
		key = "public." + fmt.Sprint(vals[0])
	case 2:
		key = fmt.Sprint(vals[0]) + "." + fmt.Sprint(vals[1])
	}
	rows := &stubRows{}
	for _, col := range c.tables[key] {
		rows.rows = append(rows.rows, []driver.Value{col})
	}
	return rows, nil
}

type stubRows struct {
	rows [][]driver.Value
	idx  int
}

func (r *stubRows) Columns() []string { return []string{"column_name"} }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.idx >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.idx])
	r.idx++
	return nil
}
