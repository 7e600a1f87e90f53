package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id         TEXT PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		supervisor INTEGER NOT NULL DEFAULT 0,
		active     INTEGER NOT NULL DEFAULT 1,
		disabled   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS client_types (
		id         TEXT PRIMARY KEY,
		code       TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS clients (
		id             TEXT PRIMARY KEY,
		code           TEXT NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		client_type_id TEXT REFERENCES client_types(id),
		active         INTEGER NOT NULL DEFAULT 1,
		disabled       INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS task_types (
		id          TEXT PRIMARY KEY,
		code        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL,
		generic     INTEGER NOT NULL DEFAULT 0,
		is_default  INTEGER NOT NULL DEFAULT 0,
		active      INTEGER NOT NULL DEFAULT 1,
		disabled    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS client_task_types (
		client_id    TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		task_type_id TEXT NOT NULL REFERENCES task_types(id) ON DELETE CASCADE,
		PRIMARY KEY (client_id, task_type_id)
	)`,
	`CREATE TABLE IF NOT EXISTS task_records (
		id           TEXT PRIMARY KEY,
		employee_id  TEXT NOT NULL REFERENCES employees(id),
		client_id    TEXT NOT NULL REFERENCES clients(id),
		task_type_id TEXT NOT NULL REFERENCES task_types(id),
		date         TEXT NOT NULL,
		duration_min INTEGER NOT NULL CHECK(duration_min > 0 AND duration_min <= 1440),
		no_charge    INTEGER NOT NULL DEFAULT 0,
		on_site      INTEGER NOT NULL DEFAULT 0,
		note         TEXT NOT NULL,
		closed       INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_task_records_date ON task_records(date)`,
	`CREATE INDEX IF NOT EXISTS idx_task_records_employee_date ON task_records(employee_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_task_records_client_date ON task_records(client_id, date)`,
}
