package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"quakecli/internal/analysis"
	"quakecli/internal/config"
	"quakecli/internal/dataset"
	"quakecli/internal/infrastructure"
	"quakecli/internal/validation"
)

func main() {
	inPath := flag.String("in", "", "cleaned CSV catalog (defaults to data/processed relative to executable)")
	reportPath := flag.String("report", "", "analysis report text file (defaults to outputs/results relative to executable)")
	topRegions := flag.Int("top", 0, "number of regions to rank (defaults to configuration)")
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
		*reportPath = paths.AnalysisReportTXT
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
				FilePath: paths.GetLogPath("analyzer.log"),
			},
			Analysis: config.AnalysisConfig{
				TopRegions:       20,
				TopEvents:        10,
				HighMagThreshold: 7.0,
			},
		}
	}
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/app.log" {
		cfg.Logging.FilePath = paths.GetLogPath("analyzer.log")
	}
	if *topRegions > 0 {
		cfg.Analysis.TopRegions = *topRegions
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

	logger.InfoContext(ctx, "Starting descriptive analysis",
		slog.String("input", *inPath),
		slog.String("report", *reportPath))

	events, err := dataset.LoadCSV(ctx, *inPath)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load cleaned catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyzer := analysis.NewAnalyzer(cfg.Analysis, logger)
	report, err := analyzer.Analyze(ctx, events)
	if err != nil {
		logger.ErrorContext(ctx, "Analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := analysis.WriteReport(*reportPath, report); err != nil {
		logger.ErrorContext(ctx, "Failed to write analysis report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "Analysis complete",
		slog.Int("events", len(events)),
		slog.String("report", *reportPath))

	fmt.Printf("Analysis complete: %d events analyzed, report written to %s\n",
		len(events), *reportPath)
}
