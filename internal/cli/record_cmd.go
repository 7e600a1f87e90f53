package cli

import (
	"fmt"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/cli/formatter"
	"github.com/alexanderramin/partes/internal/reporting"
	"github.com/spf13/cobra"
)

func newRecordCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage task records",
	}

	cmd.AddCommand(
		newRecordAddCmd(a),
		newRecordListCmd(a),
		newRecordUpdateCmd(a),
		newRecordDeleteCmd(a),
		newRecordCloseCmd(a),
	)

	return cmd
}

func newRecordAddCmd(a *App) *cobra.Command {
	var clientID, taskTypeID, employeeID, note string
	var minutes int
	var noCharge, onSite bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a task record",
	}

	date := dateVar(cmd.Flags(), "date", "Record date (YYYY-MM-DD)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		rec, err := a.Records.Create(cmd.Context(), principal, app.CreateRecordRequest{
			EmployeeID: employeeID,
			ClientID:   clientID,
			TaskTypeID: taskTypeID,
			Date:       *date.Time(),
			Minutes:    minutes,
			NoCharge:   noCharge,
			OnSite:     onSite,
			Note:       note,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Logged %s (%s h) on %s (%s)\n",
			formatter.StyleBold.Render(fmt.Sprintf("%d min", rec.Minutes)),
			fmt.Sprintf("%.2f", rec.Hours()),
			rec.Date.Format(dateLayout),
			rec.ID,
		)
		return nil
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client ID")
	cmd.Flags().StringVar(&taskTypeID, "task-type", "", "Task type ID")
	cmd.Flags().StringVar(&employeeID, "employee", "", "Log for another employee ID (supervisors)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration in minutes (multiple of 15)")
	cmd.Flags().BoolVar(&noCharge, "no-charge", false, "Mark as not billable to the client")
	cmd.Flags().BoolVar(&onSite, "on-site", false, "Mark as performed at the client site")
	cmd.Flags().StringVar(&note, "note", "", "Work description")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("task-type")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("minutes")
	_ = cmd.MarkFlagRequired("note")

	return cmd
}

func newRecordListCmd(a *App) *cobra.Command {
	var search, sortKey, sortDir string
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your own task records",
	}

	from := dateVar(cmd.Flags(), "from", "Period start (YYYY-MM-DD)")
	to := dateVar(cmd.Flags(), "to", "Period end (YYYY-MM-DD)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		resp, err := a.Reports.List(cmd.Context(), principal, app.DetailRequest{
			Page:     page,
			PageSize: pageSize,
			DateFrom: from.Time(),
			DateTo:   to.Time(),
			Search:   search,
			SortKey:  reporting.SortKey(sortKey),
			SortDir:  reporting.SortDir(sortDir),
		})
		if err != nil {
			return friendlyReportError(err)
		}

		fmt.Print(formatter.FormatDetail(resp, true))
		return nil
	}

	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based)")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Rows per page")
	cmd.Flags().StringVar(&search, "search", "", "Substring match on the note text")
	cmd.Flags().StringVar(&sortKey, "sort", "date", "Sort key: date|created_at")
	cmd.Flags().StringVar(&sortDir, "dir", "", "Sort direction: asc|desc")

	return cmd
}

func newRecordUpdateCmd(a *App) *cobra.Command {
	var id, clientID, taskTypeID, note string
	var minutes int
	var noCharge, onSite bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the fields of an open record",
	}

	date := dateVar(cmd.Flags(), "date", "Record date (YYYY-MM-DD)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		rec, err := a.Records.Update(cmd.Context(), principal, app.UpdateRecordRequest{
			ID:         id,
			ClientID:   clientID,
			TaskTypeID: taskTypeID,
			Date:       *date.Time(),
			Minutes:    minutes,
			NoCharge:   noCharge,
			OnSite:     onSite,
			Note:       note,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Updated record %s\n", rec.ID)
		return nil
	}

	cmd.Flags().StringVar(&id, "id", "", "Record ID")
	cmd.Flags().StringVar(&clientID, "client", "", "Client ID")
	cmd.Flags().StringVar(&taskTypeID, "task-type", "", "Task type ID")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Duration in minutes (multiple of 15)")
	cmd.Flags().BoolVar(&noCharge, "no-charge", false, "Mark as not billable to the client")
	cmd.Flags().BoolVar(&onSite, "on-site", false, "Mark as performed at the client site")
	cmd.Flags().StringVar(&note, "note", "", "Work description")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("task-type")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("minutes")
	_ = cmd.MarkFlagRequired("note")

	return cmd
}

func newRecordDeleteCmd(a *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an open record",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := principalFromFlags(cmd, a)
			if err != nil {
				return err
			}
			if err := a.Records.Delete(cmd.Context(), principal, id); err != nil {
				return err
			}
			fmt.Printf("Deleted record %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Record ID")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newRecordCloseCmd(a *App) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Bulk-close open records up to a cutoff date (irreversible)",
	}

	cutoff := dateVar(cmd.Flags(), "until", "Close records dated on or before this date")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		n, err := a.Records.CloseBulk(cmd.Context(), principal, app.CloseBulkRequest{
			Cutoff:   *cutoff.Time(),
			ClientID: clientID,
		})
		if err != nil {
			return err
		}

		fmt.Printf("Closed %d records\n", n)
		return nil
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Limit to one client ID")
	_ = cmd.MarkFlagRequired("until")

	return cmd
}
