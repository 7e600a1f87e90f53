package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/reporting"
)

// taskRecordColumns is the canonical SELECT column list for task_records.
const taskRecordColumns = `id, employee_id, client_id, task_type_id, date,
		duration_min, no_charge, on_site, note, closed, created_at, updated_at`

// taskRecordColumnsAliased is the same column list prefixed with "r." for
// join queries.
const taskRecordColumnsAliased = `r.id, r.employee_id, r.client_id, r.task_type_id, r.date,
		r.duration_min, r.no_charge, r.on_site, r.note, r.closed, r.created_at, r.updated_at`

// SQLiteTaskRecordRepo implements TaskRecordRepo using a SQLite database.
type SQLiteTaskRecordRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRecordRepo creates a new SQLiteTaskRecordRepo.
func NewSQLiteTaskRecordRepo(conn db.DBTX) *SQLiteTaskRecordRepo {
	return &SQLiteTaskRecordRepo{db: conn}
}

func (r *SQLiteTaskRecordRepo) Create(ctx context.Context, rec *domain.TaskRecord) error {
	query := `INSERT INTO task_records (` + taskRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.EmployeeID,
		rec.ClientID,
		rec.TaskTypeID,
		rec.Date.Format(dateLayout),
		rec.Minutes,
		boolToInt(rec.NoCharge),
		boolToInt(rec.OnSite),
		rec.Note,
		boolToInt(rec.Closed),
		rec.CreatedAt.Format(time.RFC3339),
		rec.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task record: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRecordRepo) GetByID(ctx context.Context, id string) (*domain.TaskRecord, error) {
	query := `SELECT ` + taskRecordColumns + ` FROM task_records WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	rec, err := scanTaskRecord(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task record: %w", err)
	}
	return rec, nil
}

func (r *SQLiteTaskRecordRepo) Update(ctx context.Context, rec *domain.TaskRecord) error {
	query := `UPDATE task_records SET employee_id = ?, client_id = ?, task_type_id = ?,
		date = ?, duration_min = ?, no_charge = ?, on_site = ?, note = ?, closed = ?,
		updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		rec.EmployeeID,
		rec.ClientID,
		rec.TaskTypeID,
		rec.Date.Format(dateLayout),
		rec.Minutes,
		boolToInt(rec.NoCharge),
		boolToInt(rec.OnSite),
		rec.Note,
		boolToInt(rec.Closed),
		rec.UpdatedAt.Format(time.RFC3339),
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task record: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRecordRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM task_records WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting task record: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRecordRepo) ListPage(ctx context.Context, scope reporting.Scope, f reporting.Filters) ([]DetailRow, error) {
	where, args := buildPredicates(scope, f)

	query := `SELECT ` + taskRecordColumnsAliased + `,
			e.code, e.name, c.name, t.description
		FROM task_records r
		JOIN employees e ON r.employee_id = e.id
		JOIN clients c ON r.client_id = c.id
		JOIN task_types t ON r.task_type_id = t.id
		` + where + `
		ORDER BY ` + orderClause(f.SortKey, f.SortDir) + `
		LIMIT ? OFFSET ?`

	page := reporting.NewPagination(f.Page, f.PageSize, 0)
	args = append(args, f.PageSize, page.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing task record page: %w", err)
	}
	defer rows.Close()

	var result []DetailRow
	for rows.Next() {
		var d DetailRow
		var rec domain.TaskRecord
		var dateStr, createdAtStr, updatedAtStr string
		var noChargeInt, onSiteInt, closedInt int

		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.ClientID, &rec.TaskTypeID, &dateStr,
			&rec.Minutes, &noChargeInt, &onSiteInt, &rec.Note, &closedInt,
			&createdAtStr, &updatedAtStr,
			&d.EmployeeCode, &d.EmployeeName, &d.ClientName, &d.TaskTypeDesc,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning detail row: %w", err)
		}
		if err := populateTaskRecord(&rec, dateStr, createdAtStr, updatedAtStr, noChargeInt, onSiteInt, closedInt); err != nil {
			return nil, err
		}
		d.Record = rec
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating detail rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteTaskRecordRepo) TotalsFor(ctx context.Context, scope reporting.Scope, f reporting.Filters) (Totals, error) {
	where, args := buildPredicates(scope, f)
	query := `SELECT COUNT(*), COALESCE(SUM(r.duration_min), 0) FROM task_records r ` + where

	var t Totals
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&t.Count, &t.Minutes); err != nil {
		return Totals{}, fmt.Errorf("computing task record totals: %w", err)
	}
	return t, nil
}

func (r *SQLiteTaskRecordRepo) GroupTotals(ctx context.Context, scope reporting.Scope, f reporting.Filters, dim reporting.GroupDimension) ([]reporting.GroupTotal, error) {
	var keyCol, nameCol, join string
	switch dim {
	case reporting.GroupByClient:
		keyCol, nameCol = "r.client_id", "c.name"
		join = "JOIN clients c ON r.client_id = c.id"
	case reporting.GroupByEmployee:
		keyCol, nameCol = "r.employee_id", "e.name"
		join = "JOIN employees e ON r.employee_id = e.id"
	case reporting.GroupByTaskType:
		keyCol, nameCol = "r.task_type_id", "t.description"
		join = "JOIN task_types t ON r.task_type_id = t.id"
	default:
		return nil, fmt.Errorf("unknown group dimension %q", dim)
	}

	where, args := buildPredicates(scope, f)
	query := fmt.Sprintf(`SELECT %s, %s, COALESCE(SUM(r.duration_min), 0), COUNT(*)
		FROM task_records r %s
		%s
		GROUP BY %s, %s`, keyCol, nameCol, join, where, keyCol, nameCol)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("grouping task records by %s: %w", dim, err)
	}
	defer rows.Close()

	var totals []reporting.GroupTotal
	for rows.Next() {
		var g reporting.GroupTotal
		if err := rows.Scan(&g.Key, &g.Name, &g.Minutes, &g.TaskCount); err != nil {
			return nil, fmt.Errorf("scanning group total: %w", err)
		}
		totals = append(totals, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating group totals: %w", err)
	}
	return totals, nil
}

func (r *SQLiteTaskRecordRepo) DistinctDays(ctx context.Context, scope reporting.Scope, f reporting.Filters) (int, error) {
	where, args := buildPredicates(scope, f)
	query := `SELECT COUNT(DISTINCT r.date) FROM task_records r ` + where

	var days int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&days); err != nil {
		return 0, fmt.Errorf("counting distinct record days: %w", err)
	}
	return days, nil
}

func (r *SQLiteTaskRecordRepo) CloseBulk(ctx context.Context, cutoff time.Time, clientID string) (int, error) {
	query := `UPDATE task_records SET closed = 1, updated_at = ? WHERE closed = 0 AND date <= ?`
	args := []any{nowUTC(), cutoff.Format(dateLayout)}
	if clientID != "" {
		query += ` AND client_id = ?`
		args = append(args, clientID)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("closing task records: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting closed task records: %w", err)
	}
	return int(n), nil
}

// buildPredicates compiles scope and filters into a WHERE clause and its
// arguments. The scope predicate is mandatory and always first; no filter
// value can widen it. ScopeNone compiles to a contradiction as a backstop,
// although services short-circuit before issuing a query.
func buildPredicates(scope reporting.Scope, f reporting.Filters) (string, []any) {
	var conds []string
	var args []any

	switch scope.Kind {
	case reporting.ScopeAll:
		// no scope predicate
	case reporting.ScopeEmployee:
		conds = append(conds, "r.employee_id = ?")
		args = append(args, scope.EmployeeID)
	case reporting.ScopeClient:
		conds = append(conds, "r.client_id = ?")
		args = append(args, scope.ClientID)
	default:
		conds = append(conds, "1 = 0")
	}

	if f.DateFrom != nil {
		conds = append(conds, "r.date >= ?")
		args = append(args, f.DateFrom.Format(dateLayout))
	}
	if f.DateTo != nil {
		conds = append(conds, "r.date <= ?")
		args = append(args, f.DateTo.Format(dateLayout))
	}
	if f.ClientID != "" {
		conds = append(conds, "r.client_id = ?")
		args = append(args, f.ClientID)
	}
	if f.TaskTypeID != "" {
		conds = append(conds, "r.task_type_id = ?")
		args = append(args, f.TaskTypeID)
	}
	if f.EmployeeID != "" && scope.Kind == reporting.ScopeAll {
		// Only meaningful under the all-employees scope; under any other
		// scope the employee is already pinned.
		conds = append(conds, "r.employee_id = ?")
		args = append(args, f.EmployeeID)
	}
	if f.Search != "" {
		conds = append(conds, `LOWER(r.note) LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(strings.ToLower(f.Search))+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderClause maps a normalized sort key to its SQL column. The record id
// tie-break keeps pagination deterministic when the sort column repeats.
func orderClause(key reporting.SortKey, dir reporting.SortDir) string {
	col := map[reporting.SortKey]string{
		reporting.SortDate:      "r.date",
		reporting.SortCreatedAt: "r.created_at",
		reporting.SortClient:    "c.name",
		reporting.SortEmployee:  "e.name",
		reporting.SortTaskType:  "t.description",
		reporting.SortHours:     "r.duration_min",
	}[key]
	if col == "" {
		col = "r.date"
	}
	d := "ASC"
	if dir == reporting.SortDesc {
		d = "DESC"
	}
	return col + " " + d + ", r.id ASC"
}

// scanTaskRecord scans a record through the given scan function.
func scanTaskRecord(scan func(dest ...any) error) (*domain.TaskRecord, error) {
	var rec domain.TaskRecord
	var dateStr, createdAtStr, updatedAtStr string
	var noChargeInt, onSiteInt, closedInt int

	err := scan(
		&rec.ID, &rec.EmployeeID, &rec.ClientID, &rec.TaskTypeID, &dateStr,
		&rec.Minutes, &noChargeInt, &onSiteInt, &rec.Note, &closedInt,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, err
	}
	if err := populateTaskRecord(&rec, dateStr, createdAtStr, updatedAtStr, noChargeInt, onSiteInt, closedInt); err != nil {
		return nil, err
	}
	return &rec, nil
}

// populateTaskRecord fills in parsed fields after scanning raw values.
func populateTaskRecord(rec *domain.TaskRecord, dateStr, createdAtStr, updatedAtStr string, noChargeInt, onSiteInt, closedInt int) error {
	rec.NoCharge = intToBool(noChargeInt)
	rec.OnSite = intToBool(onSiteInt)
	rec.Closed = intToBool(closedInt)

	var err error
	rec.Date, err = time.Parse(dateLayout, dateStr)
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
