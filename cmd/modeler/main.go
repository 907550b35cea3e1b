package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
	"quakecli/internal/infrastructure"
	"quakecli/internal/models"
	"quakecli/internal/validation"
)

func main() {
	inPath := flag.String("in", "", "cleaned CSV catalog (defaults to data/processed relative to executable)")
	reportPath := flag.String("report", "", "model report text file (defaults to outputs/results relative to executable)")
	clusters := flag.Int("clusters", 0, "number of k-means clusters (defaults to configuration)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		*inPath = paths.CleanCSV
	}
	if *reportPath == "" {
		*reportPath = paths.ModelReportTXT
	}

	if err := paths.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = &config.Config{
			Logging: config.LoggingConfig{
				Level:    "info",
				Format:   "json",
				Output:   "both",
				FilePath: paths.GetLogPath("modeler.log"),
			},
			Models: config.ModelsConfig{
				Clusters:      5,
				MaxElbowK:     10,
				PCAComponents: 3,
				SampleSize:    100000,
				Seed:          42,
			},
		}
	}
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/app.log" {
		cfg.Logging.FilePath = paths.GetLogPath("modeler.log")
	}
	if *clusters > 0 {
		cfg.Models.Clusters = *clusters
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogger()

	ctx := infrastructure.EnsureTraceID(context.Background())

	fv := validation.NewFileValidator(logger)
	if err := fv.ValidateCatalogFile(*inPath); err != nil {
		logger.ErrorContext(ctx, "Input validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := fv.ValidateOutputDirectory(filepath.Dir(*reportPath)); err != nil {
		logger.ErrorContext(ctx, "Output validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Starting analytical model runs",
		slog.String("input", *inPath),
		slog.String("report", *reportPath),
		slog.Int("clusters", cfg.Models.Clusters))

	events, err := dataset.LoadCSV(ctx, *inPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load cleaned catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	runner := models.NewRunner(cfg.Models, logger)
	report, err := runner.Run(ctx, events)
	if err != nil {
		logger.ErrorContext(ctx, "Model runs failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := models.WriteReport(*reportPath, report); err != nil {
		logger.ErrorContext(ctx, "Failed to write model report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Model runs complete",
		slog.Int("events", len(events)),
		slog.String("report", *reportPath))

	fmt.Printf("Model runs complete: report written to %s\n", *reportPath)
}
