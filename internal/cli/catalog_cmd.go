package cli

import (
	"fmt"

	"github.com/alexanderramin/partes/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse clients, task types and employees",
	}

	cmd.AddCommand(
		newCatalogClientsCmd(a),
		newCatalogTypesCmd(a),
		newCatalogEmployeesCmd(a),
	)

	return cmd
}

func newCatalogClientsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List active clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			clients, err := a.Catalog.Clients(cmd.Context())
			if err != nil {
				return err
			}
			if len(clients) == 0 {
				fmt.Println("No active clients.")
				return nil
			}
			rows := make([][]string, 0, len(clients))
			for _, c := range clients {
				rows = append(rows, []string{c.ID, c.Code, c.Name})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Code", "Name"}, rows))
			return nil
		},
	}
}

func newCatalogTypesCmd(a *App) *cobra.Command {
	var clientID string

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List task types available to a client",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.Catalog.TaskTypes(cmd.Context(), clientID)
			if err != nil {
				return err
			}
			if len(types) == 0 {
				fmt.Println("No task types available for this client.")
				return nil
			}
			rows := make([][]string, 0, len(types))
			for _, t := range types {
				kind := "assigned"
				if t.Generic {
					kind = "generic"
				}
				rows = append(rows, []string{t.ID, t.Description, kind})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Description", "Kind"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client", "", "Client ID")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}

func newCatalogEmployeesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "List active employees (supervisors only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := principalFromFlags(cmd, a)
			if err != nil {
				return err
			}
			employees, err := a.Catalog.Employees(cmd.Context(), principal)
			if err != nil {
				return err
			}
			if len(employees) == 0 {
				fmt.Println("No active employees.")
				return nil
			}
			rows := make([][]string, 0, len(employees))
			for _, e := range employees {
				role := ""
				if e.Supervisor {
					role = "supervisor"
				}
				rows = append(rows, []string{e.ID, e.Code, e.Name, role})
			}
			fmt.Print(formatter.RenderTable([]string{"ID", "Code", "Name", "Role"}, rows))
			return nil
		},
	}
}
