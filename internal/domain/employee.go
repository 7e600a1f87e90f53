package domain

import "time"

// Employee is an internal user who logs task records. Supervisors may
// additionally see and manage every employee's records.
type Employee struct {
	ID         string
	Code       string
	Name       string
	Email      string
	Supervisor bool
	Active     bool
	Disabled   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Enabled reports whether the employee may log work and appear in selectors.
func (e *Employee) Enabled() bool {
	return e.Active && !e.Disabled
}
