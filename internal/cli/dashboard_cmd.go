package cli

import (
	"fmt"

	"github.com/alexanderramin/partes/internal/app"
	"github.com/alexanderramin/partes/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newDashboardCmd(a *App) *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Period KPIs: total hours, averages, top clients and employees",
	}

	from := dateVar(cmd.Flags(), "from", "Period start (YYYY-MM-DD)")
	to := dateVar(cmd.Flags(), "to", "Period end (YYYY-MM-DD)")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		principal, err := principalFromFlags(cmd, a)
		if err != nil {
			return err
		}

		resp, err := a.Reports.Dashboard(cmd.Context(), principal, app.DashboardRequest{
			DateFrom: from.Time(),
			DateTo:   to.Time(),
			TopN:     topN,
		})
		if err != nil {
			return friendlyReportError(err)
		}

		fmt.Print(formatter.FormatDashboard(resp))
		return nil
	}

	cmd.Flags().IntVar(&topN, "top", 0, "Entries per top list")

	return cmd
}
