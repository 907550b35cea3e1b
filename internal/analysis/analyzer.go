package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
)

// Analyzer runs the descriptive analysis over a cleaned dataset
type Analyzer struct {
	cfg    config.AnalysisConfig
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer with the given configuration
func NewAnalyzer(cfg config.AnalysisConfig, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{cfg: cfg, logger: logger}
}

// Analyze computes every section of the descriptive report
func (a *Analyzer) Analyze(ctx context.Context, events []dataset.Event) (*Report, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("no events to analyze")
	}

	a.logger.InfoContext(ctx, "starting descriptive analysis",
		"events", len(events),
		"top_regions", a.cfg.TopRegions,
	)

	mags := make([]float64, 0, len(events))
	depths := make([]float64, 0, len(events))
	for _, e := range events {
		if e.HasMag() {
			mags = append(mags, e.Mag)
		}
		if e.HasDepth() {
			depths = append(depths, e.Depth)
		}
	}

	report := &Report{
		TotalEvents: len(events),
		Magnitude:   Describe(mags),
		Depth:       Describe(depths),
		Temporal:    AnalyzeTemporal(events),
		Geographic:  AnalyzeGeographic(events, a.cfg.TopRegions),
		Correlation: AnalyzeCorrelation(events),
		Extremes:    AnalyzeExtremes(events, a.cfg.TopEvents, a.cfg.HighMagThreshold),
		GeneratedAt: time.Now(),
	}

	a.logger.InfoContext(ctx, "descriptive analysis completed",
		"mean_mag", report.Magnitude.Mean,
		"pearson", report.Correlation.Pearson,
		"distinct_regions", report.Geographic.DistinctRegions,
	)

	return report, nil
}
