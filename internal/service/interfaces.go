package service

import (
	"context"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/domain"
)

// ReportService is the read path: every method resolves the principal's
// visibility scope first and never mutates state.
type ReportService interface {
	// List is the personal task listing (sortable by date or creation time).
	List(ctx context.Context, p domain.Principal, req app.DetailRequest) (*app.DetailResponse, error)
	// Detail is the cross-record detail report with the full sort set.
	Detail(ctx context.Context, p domain.Principal, req app.DetailRequest) (*app.DetailResponse, error)
	Grouped(ctx context.Context, p domain.Principal, req app.GroupedRequest) (*app.GroupedResponse, error)
	Dashboard(ctx context.Context, p domain.Principal, req app.DashboardRequest) (*app.DashboardResponse, error)
}

// RecordService mutates task records on behalf of a principal. Closed
// records are immutable to every method here.
type RecordService interface {
	Create(ctx context.Context, p domain.Principal, req app.CreateRecordRequest) (*domain.TaskRecord, error)
	Update(ctx context.Context, p domain.Principal, req app.UpdateRecordRequest) (*domain.TaskRecord, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
	// CloseBulk irreversibly closes open records up to a cutoff date.
	CloseBulk(ctx context.Context, p domain.Principal, req app.CloseBulkRequest) (int, error)
}

// CatalogService serves the id/name selectors the record forms need.
type CatalogService interface {
	Clients(ctx context.Context) ([]*domain.Client, error)
	TaskTypes(ctx context.Context, clientID string) ([]*domain.TaskType, error)
	Employees(ctx context.Context, p domain.Principal) ([]*domain.Employee, error)
}
