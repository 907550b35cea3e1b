package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"quakecli/internal/cleaning"
	"quakecli/internal/config"
	"quakecli/internal/infrastructure"
	"quakecli/internal/validation"
)

func main() {
	inPath := flag.String("in", "", "input CSV of raw earthquake events (defaults to data/raw relative to executable)")
	outPath := flag.String("out", "", "output CSV for the cleaned catalog (defaults to data/processed relative to executable)")
	reportPath := flag.String("report", "", "cleaning report text file (defaults to outputs/results relative to executable)")
	pdf := flag.Bool("pdf", true, "also write the cleaning report as PDF")
	flag.Parse()

	// Initialize paths first to get default locations
	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inPath == "" {
		*inPath = paths.RawCSV
	}
	if *outPath == "" {
		*outPath = paths.CleanCSV
	}
	if *reportPath == "" {
		*reportPath = paths.CleaningReportTXT
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
				FilePath: paths.GetLogPath("cleaner.log"),
			},
			Cleaning: config.CleaningConfig{
				MagMin:   0,
				MagMax:   10,
				DepthMin: 0,
				DepthMax: 700,
			},
		}
	}
	if cfg.Logging.FilePath == "" || cfg.Logging.FilePath == "logs/app.log" {
		cfg.Logging.FilePath = paths.GetLogPath("cleaner.log")
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
	for _, dir := range []string{filepath.Dir(*outPath), filepath.Dir(*reportPath)} {
		if err := fv.ValidateOutputDirectory(dir); err != nil {
			logger.ErrorContext(ctx, "Output validation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.InfoContext(ctx, "Starting earthquake catalog cleaning",
		slog.String("input", *inPath),
		slog.String("output", *outPath),
		slog.String("report", *reportPath),
		slog.String("executable_dir", paths.BaseDir))

	pipeline := cleaning.NewPipeline(cfg.Cleaning, logger)
	summary, err := pipeline.Execute(ctx, *inPath, *outPath, *reportPath)
	if err != nil {
		logger.ErrorContext(ctx, "Cleaning pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *pdf {
		if err := cleaning.WritePDFReport(paths.CleaningReportPDF, summary); err != nil {
			logger.WarnContext(ctx, "Failed to write PDF report", slog.String("error", err.Error()))
		} else {
			logger.InfoContext(ctx, "PDF report written", slog.String("path", paths.CleaningReportPDF))
		}
	}

	logger.InfoContext(ctx, "Cleaning complete",
		slog.Int("original_records", summary.OriginalCount),
		slog.Int("final_records", summary.FinalCount),
		slog.Float64("retention_percent", summary.RetentionPercent()))

	fmt.Printf("Cleaning complete: %d of %d records retained (%.2f%%)\n",
		summary.FinalCount, summary.OriginalCount, summary.RetentionPercent())
}
