package domain

import "time"

// TaskType categorizes a task record. Generic types are available to every
// client; non-generic types must be assigned to a client explicitly.
type TaskType struct {
	ID          string
	Code        string
	Description string
	Generic     bool
	Default     bool
	Active      bool
	Disabled    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Enabled reports whether the task type may be used on new records.
func (t *TaskType) Enabled() bool {
	return t.Active && !t.Disabled
}
