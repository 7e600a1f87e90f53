package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/partes/internal/cli"
	"github.com/alexanderramin/partes/internal/cli/formatter"
	"github.com/alexanderramin/partes/internal/db"
	"github.com/alexanderramin/partes/internal/domain"
	"github.com/alexanderramin/partes/internal/repository"
	"github.com/alexanderramin/partes/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.partes/partes.db
	dbPath := os.Getenv("PARTES_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".partes", "partes.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	recordRepo := repository.NewSQLiteTaskRecordRepo(database)
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	clientRepo := repository.NewSQLiteClientRepo(database)
	taskTypeRepo := repository.NewSQLiteTaskTypeRepo(database)

	// Unit of work for transactional mutations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case logging is opt-in; the observer stays silent otherwise.
	var observer service.UseCaseObserver
	if os.Getenv("PARTES_LOG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Reports: service.NewReportService(recordRepo, observer),
		Records: service.NewRecordService(recordRepo, employeeRepo, clientRepo, taskTypeRepo, uow, observer),
		Catalog: service.NewCatalogService(employeeRepo, clientRepo, taskTypeRepo),
	}

	// Identity is asserted, not authenticated. An unknown code resolves
	// to an empty principal, which sees no records at all.
	app.ResolvePrincipal = func(ctx context.Context, employeeCode, clientCode string) (domain.Principal, error) {
		if clientCode != "" {
			c, err := clientRepo.GetByCode(ctx, clientCode)
			if errors.Is(err, repository.ErrNotFound) {
				return domain.Principal{IsClient: true}, nil
			}
			if err != nil {
				return domain.Principal{}, err
			}
			return domain.Principal{IsClient: true, ClientID: c.ID}, nil
		}
		if employeeCode != "" {
			e, err := employeeRepo.GetByCode(ctx, employeeCode)
			if errors.Is(err, repository.ErrNotFound) {
				return domain.Principal{}, nil
			}
			if err != nil {
				return domain.Principal{}, err
			}
			return domain.Principal{EmployeeID: e.ID, Supervisor: e.Supervisor}, nil
		}
		return domain.Principal{}, nil
	}

	// Plain output when stdout is piped or redirected.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
