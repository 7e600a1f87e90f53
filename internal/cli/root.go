package cli

import (
	"context"

	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reports service.ReportService
	Records service.RecordService
	Catalog service.CatalogService

	// ResolvePrincipal maps the --as / --as-client flags to a Principal.
	// An unknown code resolves to an empty principal, which in turn sees
	// nothing; identity checking itself lives outside the engine.
	ResolvePrincipal func(ctx context.Context, employeeCode, clientCode string) (domain.Principal, error)
}

// NewRootCmd creates the top-level "partes" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "partes",
		Short: "Task record query and reporting engine",
	}

	root.PersistentFlags().String("as", "", "Act as the employee with this code")
	root.PersistentFlags().String("as-client", "", "Act as the client login with this code")

	root.AddCommand(
		newReportCmd(app),
		newDashboardCmd(app),
		newRecordCmd(app),
		newCatalogCmd(app),
	)

	return root
}

// principalFromFlags resolves the acting principal for a command invocation.
func principalFromFlags(cmd *cobra.Command, app *App) (domain.Principal, error) {
	employeeCode, _ := cmd.Flags().GetString("as")
	clientCode, _ := cmd.Flags().GetString("as-client")
	return app.ResolvePrincipal(cmd.Context(), employeeCode, clientCode)
}
