package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/reporting"
)

// listNoteLimit truncates notes in list views; report views keep them whole.
const listNoteLimit = 40

// FormatDetail renders the detail listing as a table with a pagination and
// totals footer. With truncateNotes set the note column is shortened for
// the compact personal listing.
func FormatDetail(resp *app.DetailResponse, truncateNotes bool) string {
	if len(resp.Rows) == 0 {
		return StyleDim.Render("No matching records.") + "\n" +
			paginationFooter(resp.Pagination, resp.TotalHours)
	}

	withEmployee := false
	for _, r := range resp.Rows {
		if r.EmployeeCode != "" {
			withEmployee = true
			break
		}
	}

	headers := []string{"Date", "Client", "Task type", "Hours", "", "Status", "Note"}
	if withEmployee {
		headers = append([]string{"Employee"}, headers...)
	}

	rows := make([][]string, 0, len(resp.Rows))
	for _, r := range resp.Rows {
		note := r.Note
		if truncateNotes {
			note = truncate(note, listNoteLimit)
		}
		flags := recordFlags(r)
		row := []string{
			r.Date,
			r.ClientName,
			r.TaskType,
			fmt.Sprintf("%.2f", r.Hours),
			r.HoursClock,
			ClosedMarker(r.Closed) + flags,
			note,
		}
		if withEmployee {
			row = append([]string{r.EmployeeName + " (" + r.EmployeeCode + ")"}, row...)
		}
		rows = append(rows, row)
	}

	return RenderTable(headers, rows) + paginationFooter(resp.Pagination, resp.TotalHours)
}

// FormatGrouped renders a grouped report with per-group totals and shares.
func FormatGrouped(resp *app.GroupedResponse, dimension string) string {
	if len(resp.Groups) == 0 {
		return StyleDim.Render("No matching records.") + "\n"
	}

	headers := []string{capitalize(dimension), "Hours", "Tasks", "Share"}
	rows := make([][]string, 0, len(resp.Groups))
	for _, g := range resp.Groups {
		share := StyleDim.Render("-")
		if g.Percentage != nil {
			share = fmt.Sprintf("%d%%", *g.Percentage)
		}
		rows = append(rows, []string{
			g.Name,
			fmt.Sprintf("%.2f", g.TotalHours),
			fmt.Sprintf("%d", g.TaskCount),
			share,
		})
	}

	footer := fmt.Sprintf("Grand total: %s h across %d tasks\n",
		StyleBold.Render(fmt.Sprintf("%.2f", resp.GrandTotalHours)), resp.GrandTotalTasks)
	return RenderTable(headers, rows) + footer
}

// FormatDashboard renders the period KPI summary.
func FormatDashboard(resp *app.DashboardResponse) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("PERIOD SUMMARY") + "\n")
	b.WriteString(fmt.Sprintf("  Total hours:    %s\n", StyleBold.Render(fmt.Sprintf("%.2f", resp.TotalHours))))
	b.WriteString(fmt.Sprintf("  Tasks:          %d\n", resp.TaskCount))
	b.WriteString(fmt.Sprintf("  Avg hours/day:  %.2f\n", resp.AvgHoursPerDay))

	if len(resp.TopClients) > 0 {
		b.WriteString("\n" + StyleHeader.Render("TOP CLIENTS") + "\n")
		b.WriteString(groupList(resp.TopClients))
	}
	if len(resp.TopEmployees) > 0 {
		b.WriteString("\n" + StyleHeader.Render("TOP EMPLOYEES") + "\n")
		b.WriteString(groupList(resp.TopEmployees))
	}
	if len(resp.TypeDistribution) > 0 {
		b.WriteString("\n" + StyleHeader.Render("BY TASK TYPE") + "\n")
		b.WriteString(groupList(resp.TypeDistribution))
	}

	return b.String()
}

func groupList(groups []reporting.Group) string {
	var b strings.Builder
	for _, g := range groups {
		share := ""
		if g.Percentage != nil {
			share = StyleDim.Render(fmt.Sprintf("  %d%%", *g.Percentage))
		}
		b.WriteString(fmt.Sprintf("  %-30s %7.2f h%s\n", g.Name, g.TotalHours, share))
	}
	return b.String()
}

func paginationFooter(p reporting.Pagination, totalHours float64) string {
	return StyleDim.Render(fmt.Sprintf("Page %d/%d · %d records", p.CurrentPage, p.LastPage, p.Total)) +
		fmt.Sprintf(" · total %s h\n", StyleBold.Render(fmt.Sprintf("%.2f", totalHours)))
}

func recordFlags(r app.DetailRow) string {
	var flags []string
	if r.NoCharge {
		flags = append(flags, "NC")
	}
	if r.OnSite {
		flags = append(flags, "OS")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + StyleYellow.Render(strings.Join(flags, ","))
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	if limit <= 1 {
		return "…"
	}
	return string(runes[:limit-1]) + "…"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
