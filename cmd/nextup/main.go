package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/nextup/internal/cli"
	"github.com/alexanderramin/nextup/internal/cliconfig"
	"github.com/alexanderramin/nextup/internal/db"
	"github.com/alexanderramin/nextup/internal/metadata"
	"github.com/alexanderramin/nextup/internal/repository"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := cliconfig.Load(); err != nil {
		return err
	}

	// Open database
	database, err := db.OpenDB(cliconfig.DBPath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteItemRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	achievementRepo := repository.NewSQLiteAchievementRepo(database)
	goalRepo := repository.NewSQLiteGoalRepo(database)
	configRepo := repository.NewSQLiteConfigRepo(database)

	// Wire services
	achievementSvc := service.NewAchievementService(itemRepo, achievementRepo)

	app := &cli.App{
		Library:      service.NewLibraryService(itemRepo, configRepo, achievementSvc),
		Ranking:      service.NewRankingService(itemRepo, configRepo),
		Sessions:     service.NewSessionService(itemRepo, sessionRepo),
		Achievements: achievementSvc,
		Goals:        service.NewGoalService(itemRepo, goalRepo),
		Stats:        service.NewStatsService(itemRepo, sessionRepo, configRepo),
		Config:       configRepo,
	}

	// Detect interactive terminal to keep piped output plain.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Wire the metadata provider (only when enabled)
	metaCfg := metadata.LoadConfig()
	if metaCfg.Enabled {
		app.Metadata = metadata.NewHTTPProvider(metaCfg)
	} else {
		app.Metadata = metadata.NoopProvider{}
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
