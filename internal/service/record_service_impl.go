package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/repository"
	"github.com/google/uuid"
)

type recordService struct {
	records   repository.TaskRecordRepo
	employees repository.EmployeeRepo
	clients   repository.ClientRepo
	taskTypes repository.TaskTypeRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

// NewRecordService wires the task record mutation path.
func NewRecordService(
	records repository.TaskRecordRepo,
	employees repository.EmployeeRepo,
	clients repository.ClientRepo,
	taskTypes repository.TaskTypeRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) RecordService {
	return &recordService{
		records:   records,
		employees: employees,
		clients:   clients,
		taskTypes: taskTypes,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *recordService) Create(ctx context.Context, p domain.Principal, req app.CreateRecordRequest) (*domain.TaskRecord, error) {
	started := time.Now()

	caller, err := s.resolveCaller(ctx, p)
	if err != nil {
		s.observe(ctx, "record_create", started, err)
		return nil, err
	}

	if err := s.checkClientAndType(ctx, req.ClientID, req.TaskTypeID); err != nil {
		s.observe(ctx, "record_create", started, err)
		return nil, err
	}

	ownerID := caller.ID
	if req.EmployeeID != "" && req.EmployeeID != caller.ID {
		if !caller.Supervisor {
			err := &app.RecordError{Code: app.RecordErrForbidden, Message: "only supervisors may log work for other employees"}
			s.observe(ctx, "record_create", started, err)
			return nil, err
		}
		target, err := s.employees.GetByID(ctx, req.EmployeeID)
		if err != nil {
			s.observe(ctx, "record_create", started, err)
			return nil, err
		}
		if !target.Enabled() {
			err := &app.RecordError{Code: app.RecordErrEmployeeInactive, Message: "selected employee is inactive or disabled"}
			s.observe(ctx, "record_create", started, err)
			return nil, err
		}
		ownerID = target.ID
	}

	now := time.Now().UTC()
	rec := &domain.TaskRecord{
		ID:         uuid.New().String(),
		EmployeeID: ownerID,
		ClientID:   req.ClientID,
		TaskTypeID: req.TaskTypeID,
		Date:       req.Date,
		Minutes:    req.Minutes,
		NoCharge:   req.NoCharge,
		OnSite:     req.OnSite,
		Note:       strings.TrimSpace(req.Note),
		Closed:     false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := rec.Validate(); err != nil {
		err = &app.RecordError{Code: app.RecordErrValidation, Message: err.Error()}
		s.observe(ctx, "record_create", started, err)
		return nil, err
	}

	if err := s.records.Create(ctx, rec); err != nil {
		s.observe(ctx, "record_create", started, err)
		return nil, fmt.Errorf("creating task record: %w", err)
	}
	s.observe(ctx, "record_create", started, nil)
	return rec, nil
}

func (s *recordService) Update(ctx context.Context, p domain.Principal, req app.UpdateRecordRequest) (*domain.TaskRecord, error) {
	started := time.Now()

	if err := s.checkClientAndType(ctx, req.ClientID, req.TaskTypeID); err != nil {
		s.observe(ctx, "record_update", started, err)
		return nil, err
	}

	// The closed check and the write run in one transaction so a
	// concurrent bulk close cannot slip in between them.
	var rec *domain.TaskRecord
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteTaskRecordRepo(tx)

		var err error
		rec, err = s.mutableRecord(ctx, txRecords, p, req.ID)
		if err != nil {
			return err
		}

		rec.ClientID = req.ClientID
		rec.TaskTypeID = req.TaskTypeID
		rec.Date = req.Date
		rec.Minutes = req.Minutes
		rec.NoCharge = req.NoCharge
		rec.OnSite = req.OnSite
		rec.Note = strings.TrimSpace(req.Note)
		rec.UpdatedAt = time.Now().UTC()

		if err := rec.Validate(); err != nil {
			return &app.RecordError{Code: app.RecordErrValidation, Message: err.Error()}
		}
		if err := txRecords.Update(ctx, rec); err != nil {
			return fmt.Errorf("updating task record: %w", err)
		}
		return nil
	})
	if err != nil {
		s.observe(ctx, "record_update", started, err)
		return nil, err
	}
	s.observe(ctx, "record_update", started, nil)
	return rec, nil
}

func (s *recordService) Delete(ctx context.Context, p domain.Principal, id string) error {
	started := time.Now()

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRecords := repository.NewSQLiteTaskRecordRepo(tx)

		if _, err := s.mutableRecord(ctx, txRecords, p, id); err != nil {
			return err
		}
		if err := txRecords.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting task record: %w", err)
		}
		return nil
	})
	if err != nil {
		s.observe(ctx, "record_delete", started, err)
		return err
	}
	s.observe(ctx, "record_delete", started, nil)
	return nil
}

func (s *recordService) CloseBulk(ctx context.Context, p domain.Principal, req app.CloseBulkRequest) (int, error) {
	started := time.Now()

	caller, err := s.resolveCaller(ctx, p)
	if err != nil {
		s.observe(ctx, "record_close_bulk", started, err)
		return 0, err
	}
	if !caller.Supervisor {
		err := &app.RecordError{Code: app.RecordErrForbidden, Message: "only supervisors may close records"}
		s.observe(ctx, "record_close_bulk", started, err)
		return 0, err
	}
	if req.Cutoff.IsZero() {
		err := &app.RecordError{Code: app.RecordErrValidation, Message: "cutoff date is required"}
		s.observe(ctx, "record_close_bulk", started, err)
		return 0, err
	}

	n, err := s.records.CloseBulk(ctx, req.Cutoff, req.ClientID)
	if err != nil {
		s.observe(ctx, "record_close_bulk", started, err)
		return 0, err
	}
	s.observe(ctx, "record_close_bulk", started, nil)
	return n, nil
}

// resolveCaller loads the employee behind the principal. Client logins and
// principals with no backing employee cannot mutate records.
func (s *recordService) resolveCaller(ctx context.Context, p domain.Principal) (*domain.Employee, error) {
	if p.IsClient || p.EmployeeID == "" {
		return nil, &app.RecordError{Code: app.RecordErrForbidden, Message: "caller is not an employee"}
	}
	caller, err := s.employees.GetByID(ctx, p.EmployeeID)
	if err != nil {
		if errorsIsNotFound(err) {
			return nil, &app.RecordError{Code: app.RecordErrForbidden, Message: "caller is not an employee"}
		}
		return nil, err
	}
	return caller, nil
}

// mutableRecord loads a record and enforces the mutation rules shared by
// update and delete: the record must be open, and the caller must own it
// or be a supervisor.
func (s *recordService) mutableRecord(ctx context.Context, records repository.TaskRecordRepo, p domain.Principal, id string) (*domain.TaskRecord, error) {
	caller, err := s.resolveCaller(ctx, p)
	if err != nil {
		return nil, err
	}
	rec, err := records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec.Closed {
		return nil, &app.RecordError{Code: app.RecordErrClosed, Message: "closed records cannot be modified"}
	}
	if rec.EmployeeID != caller.ID && !caller.Supervisor {
		return nil, &app.RecordError{Code: app.RecordErrForbidden, Message: "record belongs to another employee"}
	}
	return rec, nil
}

// checkClientAndType enforces that the client and task type are enabled and
// that a non-generic type is assigned to the client.
func (s *recordService) checkClientAndType(ctx context.Context, clientID, taskTypeID string) error {
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if !client.Enabled() {
		return &app.RecordError{Code: app.RecordErrClientInactive, Message: "selected client is inactive or disabled"}
	}

	taskType, err := s.taskTypes.GetByID(ctx, taskTypeID)
	if err != nil {
		return err
	}
	if !taskType.Enabled() {
		return &app.RecordError{Code: app.RecordErrTaskTypeInactive, Message: "selected task type is inactive or disabled"}
	}
	if !taskType.Generic {
		assigned, err := s.taskTypes.IsAssignedToClient(ctx, clientID, taskTypeID)
		if err != nil {
			return err
		}
		if !assigned {
			return &app.RecordError{Code: app.RecordErrTaskTypeNotAvailable, Message: "task type is not available for the selected client"}
		}
	}
	return nil
}

func (s *recordService) observe(ctx context.Context, name string, started time.Time, err error) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		StartedAt: started,
	})
}
