package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/reporting"
	"github.com/stretchr/testify/assert"
)

func detailResp(rows ...app.DetailRow) *app.DetailResponse {
	return &app.DetailResponse{
		Rows:       rows,
		Pagination: reporting.NewPagination(1, 15, len(rows)),
		TotalHours: 1.5,
	}
}

func TestFormatDetail_EmptyState(t *testing.T) {
	out := FormatDetail(detailResp(), false)
	assert.Contains(t, out, "No matching records.")
	assert.Contains(t, out, "Page 1/1")
}

func TestFormatDetail_RowsAndFooter(t *testing.T) {
	out := FormatDetail(detailResp(app.DetailRow{
		Date:       "2026-03-10",
		ClientName: "Acme",
		TaskType:   "Support",
		Hours:      1.5,
		HoursClock: "1:30",
		NoCharge:   true,
		Note:       "patched billing export",
	}), false)

	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "1.50")
	assert.Contains(t, out, "1:30")
	assert.Contains(t, out, "NC")
	assert.Contains(t, out, "1 records")
	assert.NotContains(t, out, "Employee", "no employee column without employee data")
}

func TestFormatDetail_EmployeeColumnWhenPresent(t *testing.T) {
	out := FormatDetail(detailResp(app.DetailRow{
		Date:         "2026-03-10",
		EmployeeCode: "JPEREZ",
		EmployeeName: "Juan Perez",
		ClientName:   "Acme",
		TaskType:     "Support",
		Hours:        1.5,
		HoursClock:   "1:30",
		Note:         "patched billing export",
	}), false)

	assert.Contains(t, out, "Employee")
	assert.Contains(t, out, "Juan Perez (JPEREZ)")
}

func TestFormatDetail_TruncatesNotes(t *testing.T) {
	long := strings.Repeat("x", 80)
	out := FormatDetail(detailResp(app.DetailRow{
		Date: "2026-03-10", ClientName: "Acme", TaskType: "Support",
		HoursClock: "1:00", Note: long,
	}), true)

	assert.NotContains(t, out, long)
	assert.Contains(t, out, "…")
}

func TestFormatGrouped(t *testing.T) {
	pct := 75
	out := FormatGrouped(&app.GroupedResponse{
		Groups: []reporting.Group{
			{Name: "Acme", TotalHours: 3, TaskCount: 2, Percentage: &pct},
		},
		GrandTotalHours: 4,
		GrandTotalTasks: 3,
	}, "client")

	assert.Contains(t, out, "Client")
	assert.Contains(t, out, "75%")
	assert.Contains(t, out, "Grand total")
	assert.Contains(t, out, "4.00")
}

func TestFormatGrouped_NilPercentagePlaceholder(t *testing.T) {
	out := FormatGrouped(&app.GroupedResponse{
		Groups: []reporting.Group{{Name: "Acme", TotalHours: 0, TaskCount: 0}},
	}, "client")

	assert.NotContains(t, out, "%")
}

func TestFormatDashboard_Sections(t *testing.T) {
	out := FormatDashboard(&app.DashboardResponse{
		TotalHours:     4.5,
		TaskCount:      3,
		AvgHoursPerDay: 2.25,
		TopClients:     []reporting.Group{{Name: "Acme", TotalHours: 3}},
		TopEmployees:   []reporting.Group{{Name: "Ana", TotalHours: 2}},
	})

	assert.Contains(t, out, "PERIOD SUMMARY")
	assert.Contains(t, out, "4.50")
	assert.Contains(t, out, "2.25")
	assert.Contains(t, out, "TOP CLIENTS")
	assert.Contains(t, out, "TOP EMPLOYEES")
	assert.NotContains(t, out, "BY TASK TYPE")
}
