package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tempus/internal/cli"
	"github.com/alexanderramin/tempus/internal/db"
	"github.com/alexanderramin/tempus/internal/repository"
	"github.com/alexanderramin/tempus/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempus/tempus.db
	dbPath := os.Getenv("TEMPUS_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempus", "tempus.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	departmentRepo := repository.NewSQLiteDepartmentRepo(database)
	elementRepo := repository.NewSQLiteElementRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry to stderr when TEMPUS_LOG is set.
	var observers []service.UseCaseObserver
	if os.Getenv("TEMPUS_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Departments: service.NewDepartmentService(departmentRepo),
		Elements:    service.NewElementService(departmentRepo, elementRepo),
		Tasks:       service.NewTaskService(departmentRepo, elementRepo, taskRepo),
		Timeline:    service.NewTimelineService(departmentRepo, elementRepo, taskRepo, observers...),
		Seeder:      service.NewSeedService(uow, observers...),
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
