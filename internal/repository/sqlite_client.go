package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
)

// clientColumns is the canonical SELECT column list for clients.
const clientColumns = `id, code, name, client_type_id, active, disabled, created_at, updated_at`

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(conn db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: conn}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (` + clientColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Code,
		c.Name,
		nullableStringToValue(c.ClientTypeID),
		boolToInt(c.Active),
		boolToInt(c.Disabled),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	return r.scanClient(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteClientRepo) GetByCode(ctx context.Context, code string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE code = ?`
	return r.scanClient(r.db.QueryRowContext(ctx, query, code))
}

func (r *SQLiteClientRepo) ListEnabled(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients
		WHERE active = 1 AND disabled = 0
		ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing enabled clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClientValues(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning client row: %w", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

func (r *SQLiteClientRepo) scanClient(row *sql.Row) (*domain.Client, error) {
	c, err := scanClientValues(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}
	return c, nil
}

func scanClientValues(scan func(dest ...any) error) (*domain.Client, error) {
	var c domain.Client
	var clientTypeID sql.NullString
	var activeInt, disabledInt int
	var createdAtStr, updatedAtStr string

	err := scan(
		&c.ID, &c.Code, &c.Name, &clientTypeID,
		&activeInt, &disabledInt, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}

	c.ClientTypeID = parseNullableString(clientTypeID)
	c.Active = intToBool(activeInt)
	c.Disabled = intToBool(disabledInt)

	var parseErr error
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
