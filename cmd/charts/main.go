package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"quakecli/internal/charts"
	"quakecli/internal/config"
	"quakecli/internal/dataset"
	"quakecli/internal/infrastructure"
	"quakecli/internal/validation"
)

func main() {
	inPath := flag.String("in", "", "cleaned CSV catalog (defaults to data/processed relative to executable)")
	outPath := flag.String("out", "", "chart workbook path (defaults to outputs/figures relative to executable)")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		*inPath = paths.CleanCSV
	}
	if *outPath == "" {
		*outPath = paths.ChartsWorkbook
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
				FilePath: paths.GetLogPath("charts.log"),
			},
			Models: config.ModelsConfig{Seed: 42},
		}
	}
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/app.log" {
		cfg.Logging.FilePath = paths.GetLogPath("charts.log")
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
	if err := fv.ValidateOutputDirectory(filepath.Dir(*outPath)); err != nil {
		logger.ErrorContext(ctx, "Output validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Starting chart workbook generation",
		slog.String("input", *inPath),
		slog.String("output", *outPath))

	events, err := dataset.LoadCSV(ctx, *inPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load cleaned catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	builder := charts.NewBuilder(logger, int64(cfg.Models.Seed))
	if err := builder.Build(ctx, events, *outPath); err != nil {
		logger.ErrorContext(ctx, "Chart workbook generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Chart workbook written",
		slog.Int("events", len(events)),
		slog.String("path", *outPath))

	fmt.Printf("Chart workbook written to %s\n", *outPath)
}
