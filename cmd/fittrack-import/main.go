package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fittrack/internal/config"
	"github.com/claude/fittrack/internal/importer"
	"github.com/claude/fittrack/internal/storage"
	"github.com/claude/fittrack/internal/tracker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "", "path to JSON export file (required)")
	dryRun := flag.Bool("dry-run", false, "report counts without writing to the data store")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *filePath == "" {
		fmt.Fprintf(os.Stderr, "Usage: fittrack-import -config config.yaml -file /path/to/workouts.json [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *dryRun {
		log.Info("DRY RUN mode — no data will be written to the data store")
	}

	// Open snapshot store
	db, err := storage.Open(cfg.Data.Dir)
	if err != nil {
		log.Error("failed to open data store", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("data store opened", "dir", cfg.Data.Dir)

	tr := tracker.New(db, log)
	tr.Load()

	// Run import
	imp := importer.New(tr, log, *dryRun)
	stats, err := imp.Import(*filePath)
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import stats",
		"records", stats.Records,
		"imported", stats.Imported,
		"skipped", stats.Skipped,
	)
	for record, reason := range stats.Reasons {
		log.Info("skipped record", "record", record, "reason", reason)
	}
	log.Info("import complete")
}
