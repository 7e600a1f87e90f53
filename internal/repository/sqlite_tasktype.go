package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
)

// taskTypeColumns is the canonical SELECT column list for task_types.
const taskTypeColumns = `id, code, description, generic, is_default, active, disabled, created_at, updated_at`

// SQLiteTaskTypeRepo implements TaskTypeRepo using a SQLite database.
type SQLiteTaskTypeRepo struct {
	db db.DBTX
}

// NewSQLiteTaskTypeRepo creates a new SQLiteTaskTypeRepo.
func NewSQLiteTaskTypeRepo(conn db.DBTX) *SQLiteTaskTypeRepo {
	return &SQLiteTaskTypeRepo{db: conn}
}

func (r *SQLiteTaskTypeRepo) Create(ctx context.Context, t *domain.TaskType) error {
	query := `INSERT INTO task_types (` + taskTypeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Code,
		t.Description,
		boolToInt(t.Generic),
		boolToInt(t.Default),
		boolToInt(t.Active),
		boolToInt(t.Disabled),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task type: %w", err)
	}
	return nil
}

func (r *SQLiteTaskTypeRepo) GetByID(ctx context.Context, id string) (*domain.TaskType, error) {
	query := `SELECT ` + taskTypeColumns + ` FROM task_types WHERE id = ?`
	t, err := scanTaskTypeValues(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task type: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task type: %w", err)
	}
	return t, nil
}

// ListAvailableForClient returns the enabled task types usable on records
// for the given client: generic types plus types explicitly assigned.
func (r *SQLiteTaskTypeRepo) ListAvailableForClient(ctx context.Context, clientID string) ([]*domain.TaskType, error) {
	query := `SELECT ` + taskTypeColumns + ` FROM task_types
		WHERE active = 1 AND disabled = 0
		  AND (generic = 1 OR id IN (
			SELECT task_type_id FROM client_task_types WHERE client_id = ?))
		ORDER BY description`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing task types for client: %w", err)
	}
	defer rows.Close()

	var types []*domain.TaskType
	for rows.Next() {
		t, err := scanTaskTypeValues(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning task type row: %w", err)
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task types: %w", err)
	}
	return types, nil
}

func (r *SQLiteTaskTypeRepo) AssignToClient(ctx context.Context, clientID, taskTypeID string) error {
	query := `INSERT OR IGNORE INTO client_task_types (client_id, task_type_id) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, clientID, taskTypeID); err != nil {
		return fmt.Errorf("assigning task type to client: %w", err)
	}
	return nil
}

func (r *SQLiteTaskTypeRepo) IsAssignedToClient(ctx context.Context, clientID, taskTypeID string) (bool, error) {
	query := `SELECT EXISTS(
		SELECT 1 FROM client_task_types WHERE client_id = ? AND task_type_id = ?)`
	var exists int
	if err := r.db.QueryRowContext(ctx, query, clientID, taskTypeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking task type assignment: %w", err)
	}
	return exists == 1, nil
}

func scanTaskTypeValues(scan func(dest ...any) error) (*domain.TaskType, error) {
	var t domain.TaskType
	var genericInt, defaultInt, activeInt, disabledInt int
	var createdAtStr, updatedAtStr string

	err := scan(
		&t.ID, &t.Code, &t.Description,
		&genericInt, &defaultInt, &activeInt, &disabledInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	t.Generic = intToBool(genericInt)
	t.Default = intToBool(defaultInt)
	t.Active = intToBool(activeInt)
	t.Disabled = intToBool(disabledInt)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &t, nil
}
