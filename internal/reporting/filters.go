package reporting

import (
	"errors"
	"time"
)

// ErrInvalidPeriod is returned when a date range has its start after its
// end. The request is rejected before any query is issued, never silently
// corrected.
var ErrInvalidPeriod = errors.New("period start date is after end date")

// SortKey names a sortable column of the detail listing.
type SortKey string

const (
	SortDate      SortKey = "date"
	SortCreatedAt SortKey = "created_at"
	SortClient    SortKey = "client"
	SortEmployee  SortKey = "employee"
	SortTaskType  SortKey = "task_type"
	SortHours     SortKey = "hours"
)

// SortDir is the sort direction.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// PersonalSortKeys is the allow-list for the personal task listing.
var PersonalSortKeys = []SortKey{SortDate, SortCreatedAt}

// DetailSortKeys is the allow-list for the cross-employee detail report.
var DetailSortKeys = []SortKey{SortDate, SortClient, SortEmployee, SortTaskType, SortHours}

// Page size band. Callers cannot request arbitrarily large pages.
const (
	DefaultPageSize = 15
	MinPageSize     = 10
	MaxPageSize     = 50
)

// Filters carries the user-supplied narrowing, sorting and paging
// parameters layered on top of a Scope. Absent values are zero.
type Filters struct {
	DateFrom   *time.Time
	DateTo     *time.Time
	ClientID   string
	TaskTypeID string
	EmployeeID string
	Search     string
	SortKey    SortKey
	SortDir    SortDir
	Page       int
	PageSize   int
}

// Normalize validates the period, resolves the sort key against the
// allowed set and clamps pagination to the permitted band.
//
// An unrecognized sort key falls back to the date sort instead of failing;
// the returned flag lets callers log the fallback as a notice so stale
// client code stays detectable. An invalid period is the only rejection.
func (f Filters) Normalize(allowed []SortKey) (Filters, bool, error) {
	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		return Filters{}, false, ErrInvalidPeriod
	}

	fellBack := false
	if !sortKeyAllowed(f.SortKey, allowed) {
		fellBack = f.SortKey != ""
		f.SortKey = SortDate
	}
	if f.SortDir != SortAsc && f.SortDir != SortDesc {
		// Newest first reads naturally for date-keyed listings.
		if f.SortKey == SortDate || f.SortKey == SortCreatedAt {
			f.SortDir = SortDesc
		} else {
			f.SortDir = SortAsc
		}
	}

	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.PageSize == 0:
		f.PageSize = DefaultPageSize
	case f.PageSize < MinPageSize:
		f.PageSize = MinPageSize
	case f.PageSize > MaxPageSize:
		f.PageSize = MaxPageSize
	}

	return f, fellBack, nil
}

func sortKeyAllowed(k SortKey, allowed []SortKey) bool {
	for _, a := range allowed {
		if k == a {
			return true
		}
	}
	return false
}
