package app

import "time"

// CreateRecordRequest carries the fields of a new task record.
type CreateRecordRequest struct {
	// EmployeeID may name another employee; that requires supervisor
	// rights. Empty means the caller logs work for themselves.
	EmployeeID string
	ClientID   string
	TaskTypeID string
	Date       time.Time
	Minutes    int
	NoCharge   bool
	OnSite     bool
	Note       string
}

// UpdateRecordRequest carries a full replacement of an open record's fields.
type UpdateRecordRequest struct {
	ID         string
	ClientID   string
	TaskTypeID string
	Date       time.Time
	Minutes    int
	NoCharge   bool
	OnSite     bool
	Note       string
}

// CloseBulkRequest closes every open record dated on or before Cutoff,
// optionally limited to one client. Closing is irreversible.
type CloseBulkRequest struct {
	Cutoff   time.Time
	ClientID string
}

type RecordErrorCode string

const (
	RecordErrForbidden            RecordErrorCode = "FORBIDDEN"
	RecordErrValidation           RecordErrorCode = "VALIDATION"
	RecordErrClientInactive       RecordErrorCode = "CLIENT_INACTIVE"
	RecordErrTaskTypeInactive     RecordErrorCode = "TASK_TYPE_INACTIVE"
	RecordErrEmployeeInactive     RecordErrorCode = "EMPLOYEE_INACTIVE"
	RecordErrTaskTypeNotAvailable RecordErrorCode = "TASK_TYPE_NOT_AVAILABLE"
	RecordErrClosed               RecordErrorCode = "RECORD_CLOSED"
)

// RecordError is a business-rule rejection of a record mutation.
type RecordError struct {
	Code    RecordErrorCode
	Message string
}

func (e *RecordError) Error() string {
	return string(e.Code) + ": " + e.Message
}
