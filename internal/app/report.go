package app

import (
	"time"

	"github.com/alexanderramin/partes/internal/reporting"
)

// DetailRequest asks for one page of the filtered task-record listing.
// The zero value requests the first default-size page, newest first.
type DetailRequest struct {
	Page       int
	PageSize   int
	DateFrom   *time.Time
	DateTo     *time.Time
	ClientID   string
	TaskTypeID string
	// EmployeeID narrows to one employee. For supervisors it narrows the
	// visibility scope; for everyone else it is ignored server-side.
	EmployeeID string
	Search     string
	SortKey    reporting.SortKey
	SortDir    reporting.SortDir
}

// DetailRow is one display-projected row of the detail listing.
type DetailRow struct {
	ID   string
	Date string // YYYY-MM-DD
	// EmployeeCode/Name are populated only when the caller sees all
	// employees; a personal or client listing carries no employee column.
	EmployeeCode string
	EmployeeName string
	ClientName   string
	TaskType     string
	Hours        float64
	HoursClock   string
	NoCharge     bool
	OnSite       bool
	Closed       bool
	Note         string
}

type DetailResponse struct {
	Rows       []DetailRow
	Pagination reporting.Pagination
	// TotalHours covers the whole filtered population, not just this page.
	TotalHours float64
}

// GroupedRequest asks for an aggregation of the visible records over one
// dimension within an optional period.
type GroupedRequest struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Dimension reporting.GroupDimension
}

type GroupedResponse struct {
	Groups          []reporting.Group
	GrandTotalHours float64
	GrandTotalTasks int
}

// DashboardRequest asks for the period KPIs shown on the landing screen.
type DashboardRequest struct {
	DateFrom *time.Time
	DateTo   *time.Time
	// TopN bounds the top-clients and top-employees lists; 0 means 5.
	TopN int
}

type DashboardResponse struct {
	TotalHours     float64
	TaskCount      int
	AvgHoursPerDay float64
	TopClients     []reporting.Group
	// TopEmployees is populated for supervisors only.
	TopEmployees []reporting.Group
	// TypeDistribution is populated for client principals only.
	TypeDistribution []reporting.Group
}

type ReportErrorCode string

const (
	ReportErrInvalidPeriod ReportErrorCode = "INVALID_PERIOD"
)

// ReportError is a caller-attributable report failure, distinct from
// infrastructure errors which propagate unwrapped.
type ReportError struct {
	Code    ReportErrorCode
	Message string
}

func (e *ReportError) Error() string {
	return string(e.Code) + ": " + e.Message
}
