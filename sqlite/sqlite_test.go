package sqlite

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/zoobzio/scrub"
)

const usersTable = `CREATE TABLE users (
	id INTEGER PRIMARY KEY,
	type TEXT,
	first_name TEXT,
	last_name TEXT,
	created_at DATETIME,
	updated_at DATETIME
)`

func openUsers(t *testing.T) Queryer {
	t.Helper()
	db, err := Open("")
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if _, err := db.ExecContext(context.Background(), usersTable); err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	return db
}

func TestTableColumns(t *testing.T) {
	db := openUsers(t)

	cols, err := TableColumns(context.Background(), db, "users")
	if err != nil {
		t.Fatalf("TableColumns() error: %v", err)
	}

	want := []string{"id", "type", "first_name", "last_name", "created_at", "updated_at"}
	if !slices.Equal(cols, want) {
		t.Errorf("TableColumns() = %v, want %v", cols, want)
	}
}

func TestTableColumns_MissingTable(t *testing.T) {
	db := openUsers(t)

	_, err := TableColumns(context.Background(), db, "admins")
	if !errors.Is(err, scrub.ErrNoColumns) {
		t.Errorf("TableColumns(missing) error = %v, want ErrNoColumns", err)
	}
}

func TestColumns_ClassOption(t *testing.T) {
	db := openUsers(t)

	opt, err := Columns(context.Background(), db, "users")
	if err != nil {
		t.Fatalf("Columns() error: %v", err)
	}

	users := scrub.NewClass("User", opt)
	if !users.IsStored("first_name") {
		t.Error("first_name should be stored")
	}
	if users.IsStored("middle_name") {
		t.Error("middle_name should not be stored")
	}
}

func TestOpen_FilePath(t *testing.T) {
	db, err := Open(t.TempDir() + "/scrub.db")
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(context.Background()); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
}
