// Command seed pulls seasons from the statistics feed into the store.
//
// Usage:
//
//	seed [-dry-run] [-workers N] <seasonID> [seasonID...]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/riskibarqy/soccer-insights/internal/app"
	"github.com/riskibarqy/soccer-insights/internal/config"
	"github.com/riskibarqy/soccer-insights/internal/usecase"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "fetch and count records without writing to the database")
	workers := flag.Int("workers", 0, "max concurrent season tasks (0 uses INGEST_MAX_WORKERS)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: seed [-dry-run] [-workers N] <seasonID> [seasonID...]")
		os.Exit(2)
	}

	seasonIDs := make([]int64, 0, flag.NArg())
	for _, arg := range flag.Args() {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil || id <= 0 {
			fmt.Fprintf(os.Stderr, "invalid season id %q\n", arg)
			os.Exit(2)
		}
		seasonIDs = append(seasonIDs, id)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	svc, db, err := app.NewIngestionService(cfg, logger)
	if err != nil {
		logger.Error("build ingestion service", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = db.Close()
	}()

	maxWorkers := *workers
	if maxWorkers <= 0 {
		maxWorkers = cfg.IngestMaxWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result, err := svc.Ingest(ctx, usecase.IngestionInput{
		SeasonIDs:  seasonIDs,
		MaxWorkers: maxWorkers,
		DryRun:     *dryRun,
	})
	if err != nil {
		logger.Error("ingest failed", "error", err)
		os.Exit(1)
	}

	logger.Info("ingest finished",
		"run_id", result.RunID,
		"tasks", result.TaskCount,
		"success", result.SuccessCount,
		"failed", result.FailedCount,
		"skipped", result.SkippedCount,
		"workers", result.WorkerCount,
		"dry_run", *dryRun,
	)
	for _, task := range result.Tasks {
		logger.Info("season task",
			"season_id", task.SeasonID,
			"status", task.Status,
			"records", task.Records,
			"duration_ms", task.DurationMs,
			"message", task.Message,
		)
	}

	if result.FailedCount > 0 {
		os.Exit(1)
	}
}
