package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
)

// employeeColumns is the canonical SELECT column list for employees.
const employeeColumns = `id, code, name, email, supervisor, active, disabled, created_at, updated_at`

// SQLiteEmployeeRepo implements EmployeeRepo using a SQLite database.
type SQLiteEmployeeRepo struct {
	db db.DBTX
}

// NewSQLiteEmployeeRepo creates a new SQLiteEmployeeRepo.
func NewSQLiteEmployeeRepo(conn db.DBTX) *SQLiteEmployeeRepo {
	return &SQLiteEmployeeRepo{db: conn}
}

func (r *SQLiteEmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Code,
		e.Name,
		e.Email,
		boolToInt(e.Supervisor),
		boolToInt(e.Active),
		boolToInt(e.Disabled),
		e.CreatedAt.Format(time.RFC3339),
		e.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting employee: %w", err)
	}
	return nil
}

func (r *SQLiteEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	return r.scanEmployee(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteEmployeeRepo) GetByCode(ctx context.Context, code string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE code = ?`
	return r.scanEmployee(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLiteEmployeeRepo) ListEnabled(ctx context.Context) ([]*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE active = 1 AND disabled = 0
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing enabled employees: %w", err)
	}
	defer rows.Close()

	var employees []*domain.Employee
	for rows.Next() {
		e, err := scanEmployeeValues(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning employee row: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating employees: %w", err)
	}
	return employees, nil
}

func (r *SQLiteEmployeeRepo) scanEmployee(row *sql.Row) (*domain.Employee, error) {
	e, err := scanEmployeeValues(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("employee: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning employee: %w", err)
	}
	return e, nil
}

func scanEmployeeValues(scan func(dest ...any) error) (*domain.Employee, error) {
	var e domain.Employee
	var supervisorInt, activeInt, disabledInt int
	var createdAtStr, updatedAtStr string

	err := scan(
		&e.ID, &e.Code, &e.Name, &e.Email,
		&supervisorInt, &activeInt, &disabledInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	e.Supervisor = intToBool(supervisorInt)
	e.Active = intToBool(activeInt)
	e.Disabled = intToBool(disabledInt)

	var parseErr error
	e.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	e.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &e, nil
}
