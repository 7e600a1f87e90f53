package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestMigrate_Idempotent(t *testing.T) {
	database := openTestDB(t)

	// OpenDB already migrated once; re-running must be harmless.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	database := openTestDB(t)

	expected := []string{"employees", "client_types", "clients", "task_types", "client_task_types", "task_records"}
	for _, table := range expected {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	database := openTestDB(t)

	expected := []string{
		"idx_task_records_date",
		"idx_task_records_employee_date",
		"idx_task_records_client_date",
	}
	for _, idx := range expected {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestOpenDB_EnforcesDurationCheck(t *testing.T) {
	database := openTestDB(t)

	_, err := database.Exec(`INSERT INTO employees (id, code, name, created_at, updated_at)
		VALUES ('e1', 'E1', 'Ana', '2026-03-10T00:00:00Z', '2026-03-10T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO clients (id, code, name, created_at, updated_at)
		VALUES ('c1', 'C1', 'Acme', '2026-03-10T00:00:00Z', '2026-03-10T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO task_types (id, code, description, created_at, updated_at)
		VALUES ('t1', 'T1', 'Support', '2026-03-10T00:00:00Z', '2026-03-10T00:00:00Z')`)
	require.NoError(t, err)

	insert := `INSERT INTO task_records (id, employee_id, client_id, task_type_id, date,
		duration_min, note, created_at, updated_at)
		VALUES (?, 'e1', 'c1', 't1', '2026-03-10', ?, 'n', '2026-03-10T00:00:00Z', '2026-03-10T00:00:00Z')`

	_, err = database.Exec(insert, "r1", 60)
	require.NoError(t, err)

	_, err = database.Exec(insert, "r2", 0)
	assert.Error(t, err, "non-positive durations are rejected at the schema level")

	_, err = database.Exec(insert, "r3", 2000)
	assert.Error(t, err, "durations above one day are rejected at the schema level")
}
