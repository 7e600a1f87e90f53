package service

import (
	"context"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/repository"
)

type catalogService struct {
	employees repository.EmployeeRepo
	clients   repository.ClientRepo
	taskTypes repository.TaskTypeRepo
}

// NewCatalogService wires the selector lookups used by record forms.
func NewCatalogService(
	employees repository.EmployeeRepo,
	clients repository.ClientRepo,
	taskTypes repository.TaskTypeRepo,
) CatalogService {
	return &catalogService{
		employees: employees,
		clients:   clients,
		taskTypes: taskTypes,
	}
}

func (s *catalogService) Clients(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.ListEnabled(ctx)
}

func (s *catalogService) TaskTypes(ctx context.Context, clientID string) ([]*domain.TaskType, error) {
	return s.taskTypes.ListAvailableForClient(ctx, clientID)
}

// Employees lists enabled employees. Supervisors only: the employee
// selector exists to filter and assign other people's work.
func (s *catalogService) Employees(ctx context.Context, p domain.Principal) ([]*domain.Employee, error) {
	if p.IsClient || p.EmployeeID == "" {
		return nil, &app.RecordError{Code: app.RecordErrForbidden, Message: "only supervisors may list employees"}
	}
	caller, err := s.employees.GetByID(ctx, p.EmployeeID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, &app.RecordError{Code: app.RecordErrForbidden, Message: "only supervisors may list employees"}
		}
		return nil, err
	}
	if !caller.Supervisor {
		return nil, &app.RecordError{Code: app.RecordErrForbidden, Message: "only supervisors may list employees"}
	}
	return s.employees.ListEnabled(ctx)
}
