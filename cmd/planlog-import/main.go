package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/planlog/internal/config"
	"github.com/claude/planlog/internal/importer"
	"github.com/claude/planlog/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	plansPath := flag.String("path", "", "path to directory of plan files (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without inserting into database")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *plansPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: planlog-import -config config.yaml -path /path/to/plans [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	info, err := os.Stat(*plansPath)
	if err != nil || !info.IsDir() {
		log.Error("plans path does not exist or is not a directory", "path", *plansPath)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dsn := cfg.Database.DSN()

	// Run migrations
	if err := storage.RunMigrations(dsn, "migrations"); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied")

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the database")
	}

	// Connect database
	db, err := storage.New(ctx, dsn)
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	// Run import
	imp := importer.New(db, log, *dryRun)
	stats, err := imp.Import(ctx, *plansPath, 1)
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete",
		"files", stats.FilesProcessed,
		"skipped", stats.FilesSkipped,
		"errored", stats.FilesErrored,
		"logs", stats.LogsInserted,
		"sets", stats.SetsInserted,
	)
}
