package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/dmarkov/sprintwise/internal/cli"
	"github.com/dmarkov/sprintwise/internal/config"
	"github.com/dmarkov/sprintwise/internal/db"
	"github.com/dmarkov/sprintwise/internal/repository"
	"github.com/dmarkov/sprintwise/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: env var, or ~/.sprintwise/config.yaml when present.
	cfgPath := os.Getenv("SPRINTWISE_CONFIG")
	if cfgPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".sprintwise", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				cfgPath = candidate
			}
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	reqRepo := repository.NewSQLiteRequirementRepo(database)
	poolRepo := repository.NewSQLitePoolRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Planning:     service.NewPlanningService(reqRepo, poolRepo, uow),
		Imports:      service.NewImportService(reqRepo, poolRepo, uow),
		PoolDefaults: cfg.Pools,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
