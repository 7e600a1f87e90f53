package testutil

import (
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/partes/internal/db"
)

var testDBSeq atomic.Int64

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
// A named shared-cache database is used instead of a plain ":memory:" DSN so
// that every connection in the sql.DB pool sees the same migrated schema; with
// ":memory:" each pooled connection would get its own empty database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	database, err := db.OpenDB(dsn)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
