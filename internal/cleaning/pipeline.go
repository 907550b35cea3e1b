package cleaning

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
	"quakecli/internal/exporter"
)

// Pipeline drives the record cleaning and normalization sequence:
// load, normalize timestamps, deduplicate, drop critical missing values,
// range-validate, export. The sequence is strictly linear with no retries;
// the only fatal failures are a missing input file and an unwritable
// output, surfaced as errors from Execute.
type Pipeline struct {
	cfg     config.CleaningConfig
	logger  *slog.Logger
	checker *RangeChecker
	writer  *exporter.CSVWriter
	state   State
}

// NewPipeline creates a cleaning pipeline with the given bounds
func NewPipeline(cfg config.CleaningConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:     cfg,
		logger:  logger,
		checker: NewRangeChecker(cfg),
		writer:  exporter.NewCSVWriter(),
		state:   StateLoaded,
	}
}

// State returns the driver's current state
func (p *Pipeline) State() State {
	return p.state
}

// Clean runs the in-memory cleaning stages over a loaded catalog and
// returns the surviving events together with a structured summary of every
// filtering decision. Per-record problems never abort the run.
func (p *Pipeline) Clean(ctx context.Context, events []dataset.Event) ([]dataset.Event, *Summary) {
	summary := &Summary{
		OriginalCount: len(events),
		StartedAt:     time.Now(),
	}
	p.state = StateLoaded

	p.logger.InfoContext(ctx, "starting cleaning pipeline",
		"records", len(events),
	)

	events, summary.Timestamps = NormalizeTimestamps(events)
	p.advance(ctx, StateTimestampsNormalized, len(events))
	p.logger.InfoContext(ctx, "timestamps normalized",
		"with_time", summary.Timestamps.WithTime,
		"fraction", summary.Timestamps.Fraction,
	)

	events, summary.Dedup = Deduplicate(events)
	p.advance(ctx, StateDeduplicated, len(events))

	events, summary.Completeness = FilterComplete(events)
	p.advance(ctx, StateCompletenessFiltered, len(events))
	for _, fm := range summary.Completeness.Missing {
		p.logger.InfoContext(ctx, "critical field missing values",
			"field", fm.Field,
			"count", fm.Count,
			"percent", fm.Percent,
		)
	}

	events, summary.Ranges = p.checker.Filter(events)
	p.advance(ctx, StateRangeValidated, len(events))
	p.logger.InfoContext(ctx, "range validation removals",
		"mag", summary.Ranges.RemovedMag,
		"depth", summary.Ranges.RemovedDepth,
		"coords", summary.Ranges.RemovedCoords,
	)

	summary.FinalCount = len(events)
	summary.DecadeCounts = decadeCounts(events)
	summary.MinYear, summary.MaxYear = yearRange(events)
	summary.FinishedAt = time.Now()

	return events, summary
}

// Execute runs the complete pipeline against the filesystem: load the raw
// catalog, clean it, export the clean CSV and write the report artifacts.
func (p *Pipeline) Execute(ctx context.Context, inPath, outPath, reportPath string) (*Summary, error) {
	events, err := dataset.LoadCSV(ctx, inPath)
	if err != nil {
		return nil, fmt.Errorf("load raw catalog: %w", err)
	}

	cleaned, summary := p.Clean(ctx, events)

	if err := p.writer.WriteEvents(outPath, cleaned); err != nil {
		return nil, fmt.Errorf("export clean catalog: %w", err)
	}
	p.advance(ctx, StateExported, len(cleaned))

	if reportPath != "" {
		if err := WriteReport(reportPath, summary); err != nil {
			return nil, fmt.Errorf("write cleaning report: %w", err)
		}
	}

	p.logger.InfoContext(ctx, "cleaning pipeline finished",
		"original", summary.OriginalCount,
		"final", summary.FinalCount,
		"retention_percent", summary.RetentionPercent(),
	)

	return summary, nil
}

// advance moves the driver to the next state and logs the transition
func (p *Pipeline) advance(ctx context.Context, next State, remaining int) {
	p.logger.DebugContext(ctx, "pipeline state transition",
		"from", p.state.String(),
		"to", next.String(),
		"remaining", remaining,
	)
	p.state = next
}

func decadeCounts(events []dataset.Event) map[int]int {
	counts := make(map[int]int)
	for _, e := range events {
		if e.HasTime() {
			counts[e.Decade]++
		}
	}
	return counts
}

func yearRange(events []dataset.Event) (min, max int) {
	first := true
	for _, e := range events {
		if !e.HasTime() {
			continue
		}
		if first || e.Year < min {
			min = e.Year
		}
		if first || e.Year > max {
			max = e.Year
		}
		first = false
	}
	return min, max
}
