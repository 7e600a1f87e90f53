package cli

import (
	"fmt"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/cli/formatter"
	"github.com/alexanderramin/partes/internal/reporting"
	"github.com/spf13/cobra"
)

func newReportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Query task records",
	}

	cmd.AddCommand(
		newReportDetailCmd(a),
		newReportGroupedCmd(a, "by-client", reporting.GroupByClient, "Hours per client with share of total"),
		newReportGroupedCmd(a, "by-employee", reporting.GroupByEmployee, "Hours per employee with share of total"),
		newReportGroupedCmd(a, "by-type", reporting.GroupByTaskType, "Hours per task type with share of total"),
	)

	return cmd
}

func newReportDetailCmd(a *App) *cobra.Command {
	var clientID, taskTypeID, employeeID, search, sortKey, sortDir string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "detail",
		Short: "Paginated detail listing with totals",
	}

	from := dateVar(cmd.Flags(), "from", "Period start (YYYY-MM-DD)")
	to := dateVar(cmd.Flags(), "to", "Period end (YYYY-MM-DD)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		resp, err := a.Reports.Detail(cmd.Context(), principal, app.DetailRequest{
			Page:       page,
			PageSize:   pageSize,
			DateFrom:   from.Time(),
			DateTo:     to.Time(),
			ClientID:   clientID,
			TaskTypeID: taskTypeID,
			EmployeeID: employeeID,
			Search:     search,
			SortKey:    reporting.SortKey(sortKey),
			SortDir:    reporting.SortDir(sortDir),
		})
		if err != nil {
			return friendlyReportError(err)
		}

		fmt.Print(formatter.FormatDetail(resp, false))
		return nil
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Rows per page")
	cmd.Flags().StringVar(&clientID, "client", "", "Filter by client ID")
	cmd.Flags().StringVar(&taskTypeID, "task-type", "", "Filter by task type ID")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Narrow to one employee ID (supervisors)")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on the note text")
	cmd.Flags().StringVar(&sortKey, "sort", "date", "Sort key: date|client|employee|task_type|hours")
	cmd.Flags().StringVar(&sortDir, "dir", "", "Sort direction: asc|desc")

	return cmd
}

func newReportGroupedCmd(a *App, use string, dim reporting.GroupDimension, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}

	from := dateVar(cmd.Flags(), "from", "Period start (YYYY-MM-DD)")
	to := dateVar(cmd.Flags(), "to", "Period end (YYYY-MM-DD)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		resp, err := a.Reports.Grouped(cmd.Context(), principal, app.GroupedRequest{
			DateFrom:  from.Time(),
			DateTo:    to.Time(),
			Dimension: dim,
		})
		if err != nil {
			return friendlyReportError(err)
		}

		fmt.Print(formatter.FormatGrouped(resp, string(dim)))
		return nil
	}

	return cmd
}
