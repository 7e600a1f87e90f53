package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/reporting"
)

// DetailRow is a task record joined with the display names of its
// employee, client and task type, as consumed by the detail report.
type DetailRow struct {
	Record       domain.TaskRecord
	EmployeeCode string
	EmployeeName string
	ClientName   string
	TaskTypeDesc string
}

// Totals is the full filtered population's row count and summed minutes,
// computed without pagination so they never describe just one page.
type Totals struct {
	Count   int
	Minutes int
}

type TaskRecordRepo interface {
	Create(ctx context.Context, r *domain.TaskRecord) error
	GetByID(ctx context.Context, id string) (*domain.TaskRecord, error)
	Update(ctx context.Context, r *domain.TaskRecord) error
	Delete(ctx context.Context, id string) error

	// ListPage returns one page of the filtered population joined with
	// display names. Filters must be normalized before they reach here.
	ListPage(ctx context.Context, scope reporting.Scope, f reporting.Filters) ([]DetailRow, error)
	// TotalsFor runs the same predicate set as ListPage without LIMIT/OFFSET.
	TotalsFor(ctx context.Context, scope reporting.Scope, f reporting.Filters) (Totals, error)
	// GroupTotals aggregates the filtered population by one dimension.
	GroupTotals(ctx context.Context, scope reporting.Scope, f reporting.Filters, dim reporting.GroupDimension) ([]reporting.GroupTotal, error)
	// DistinctDays counts the distinct calendar dates carrying records.
	DistinctDays(ctx context.Context, scope reporting.Scope, f reporting.Filters) (int, error)

	// CloseBulk irreversibly closes every open record dated on or before
	// cutoff, optionally limited to one client. Returns the closed count.
	CloseBulk(ctx context.Context, cutoff time.Time, clientID string) (int, error)
}

type EmployeeRepo interface {
	Create(ctx context.Context, e *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	GetByCode(ctx context.Context, code string) (*domain.Employee, error)
	ListEnabled(ctx context.Context) ([]*domain.Employee, error)
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	GetByCode(ctx context.Context, code string) (*domain.Client, error)
	ListEnabled(ctx context.Context) ([]*domain.Client, error)
}

type TaskTypeRepo interface {
	Create(ctx context.Context, t *domain.TaskType) error
	GetByID(ctx context.Context, id string) (*domain.TaskType, error)
	ListAvailableForClient(ctx context.Context, clientID string) ([]*domain.TaskType, error)
	AssignToClient(ctx context.Context, clientID, taskTypeID string) error
	IsAssignedToClient(ctx context.Context, clientID, taskTypeID string) (bool, error)
}
