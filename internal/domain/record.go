package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxMinutesPerRecord caps a single record at 24 hours.
const MaxMinutesPerRecord = 1440

// MinutesStep is the granularity every duration must align to.
const MinutesStep = 15

// TaskRecord is one unit of logged work: an employee spent Minutes on a
// task of TaskTypeID for ClientID on Date. Closed records are immutable
// to every write path; they remain visible to reports.
type TaskRecord struct {
	ID         string
	EmployeeID string
	ClientID   string
	TaskTypeID string
	Date       time.Time // date-only, stored as YYYY-MM-DD
	Minutes    int
	NoCharge   bool
	OnSite     bool
	Note       string
	Closed     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the field-level invariants of a task record.
func (r *TaskRecord) Validate() error {
	if r.EmployeeID == "" {
		return fmt.Errorf("employee is required")
	}
	if r.ClientID == "" {
		return fmt.Errorf("client is required")
	}
	if r.TaskTypeID == "" {
		return fmt.Errorf("task type is required")
	}
	if r.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if r.Minutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d", r.Minutes)
	}
	if r.Minutes%MinutesStep != 0 {
		return fmt.Errorf("duration must be a multiple of %d minutes, got %d", MinutesStep, r.Minutes)
	}
	if r.Minutes > MaxMinutesPerRecord {
		return fmt.Errorf("duration must not exceed %d minutes, got %d", MaxMinutesPerRecord, r.Minutes)
	}
	if strings.TrimSpace(r.Note) == "" {
		return fmt.Errorf("note is required")
	}
	return nil
}

// Hours returns the record duration as decimal hours.
func (r *TaskRecord) Hours() float64 {
	return HoursDecimal(r.Minutes)
}
