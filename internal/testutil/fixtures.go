package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/partes/internal/domain"
	"github.com/google/uuid"
)

var testCodeCounter atomic.Int64

func nextCode(prefix string) string {
	return fmt.Sprintf("%s%03d", prefix, testCodeCounter.Add(1))
}

// Employee options
type EmployeeOption func(*domain.Employee)

func WithSupervisor() EmployeeOption {
	return func(e *domain.Employee) {
		e.Supervisor = true
	}
}

func WithEmployeeDisabled() EmployeeOption {
	return func(e *domain.Employee) {
		e.Disabled = true
	}
}

func WithEmployeeInactive() EmployeeOption {
	return func(e *domain.Employee) {
		e.Active = false
	}
}

func WithEmployeeCode(code string) EmployeeOption {
	return func(e *domain.Employee) {
		e.Code = code
	}
}

func NewTestEmployee(name string, opts ...EmployeeOption) *domain.Employee {
	now := time.Now().UTC()
	e := &domain.Employee{
		ID:        uuid.New().String(),
		Code:      nextCode("EMP"),
		Name:      name,
		Email:     name + "@example.com",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Client options
type ClientOption func(*domain.Client)

func WithClientDisabled() ClientOption {
	return func(c *domain.Client) {
		c.Disabled = true
	}
}

func WithClientInactive() ClientOption {
	return func(c *domain.Client) {
		c.Active = false
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:        uuid.New().String(),
		Code:      nextCode("CLI"),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TaskType options
type TaskTypeOption func(*domain.TaskType)

func WithGeneric() TaskTypeOption {
	return func(t *domain.TaskType) {
		t.Generic = true
	}
}

func WithTaskTypeDisabled() TaskTypeOption {
	return func(t *domain.TaskType) {
		t.Disabled = true
	}
}

func NewTestTaskType(description string, opts ...TaskTypeOption) *domain.TaskType {
	now := time.Now().UTC()
	t := &domain.TaskType{
		ID:          uuid.New().String(),
		Code:        nextCode("TT"),
		Description: description,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TaskRecord options
type RecordOption func(*domain.TaskRecord)

func WithMinutes(m int) RecordOption {
	return func(r *domain.TaskRecord) {
		r.Minutes = m
	}
}

func WithDate(d time.Time) RecordOption {
	return func(r *domain.TaskRecord) {
		r.Date = d
	}
}

func WithNote(note string) RecordOption {
	return func(r *domain.TaskRecord) {
		r.Note = note
	}
}

func WithClosed() RecordOption {
	return func(r *domain.TaskRecord) {
		r.Closed = true
	}
}

func WithNoCharge() RecordOption {
	return func(r *domain.TaskRecord) {
		r.NoCharge = true
	}
}

func WithCreatedAt(t time.Time) RecordOption {
	return func(r *domain.TaskRecord) {
		r.CreatedAt = t
		r.UpdatedAt = t
	}
}

func NewTestRecord(employeeID, clientID, taskTypeID string, opts ...RecordOption) *domain.TaskRecord {
	now := time.Now().UTC()
	r := &domain.TaskRecord{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		ClientID:   clientID,
		TaskTypeID: taskTypeID,
		Date:       now.Truncate(24 * time.Hour),
		Minutes:    60,
		Note:       "logged work",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
