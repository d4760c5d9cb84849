package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/practicelog/internal/cli"
	"github.com/alexanderramin/practicelog/internal/clock"
	"github.com/alexanderramin/practicelog/internal/config"
	"github.com/alexanderramin/practicelog/internal/db"
	"github.com/alexanderramin/practicelog/internal/repository"
	"github.com/alexanderramin/practicelog/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.LogCalls {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	goalRepo := repository.NewSQLiteWeeklyGoalRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	clk := clock.Real()
	observer := service.NewLogUseCaseObserver(logger)
	sessionSvc := service.NewSessionService(sessionRepo, clk, observer)
	statsSvc := service.NewStatsService(sessionRepo, goalRepo, uow, clk, observer)

	app := &cli.App{
		Sessions: sessionSvc,
		Stats:    statsSvc,
		Store:    service.NewStore(sessionSvc, statsSvc),
		Config:   cfg,
		Clock:    clk,
		Logger:   logger,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	if cfg.Quotes {
		app.Quote = cli.RandomQuote
	}

	return cli.NewRootCmd(app).Execute()
}
