package cleaning

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
)

// RangeChecker applies the physical-plausibility bounds to events that
// already passed the completeness filter. Magnitude and depth bounds come
// from configuration; coordinate bounds are the fixed geographic limits.
type RangeChecker struct {
	validate *validator.Validate

	magRule   string
	depthRule string
	latRule   string
	lonRule   string
}

// NewRangeChecker creates a range checker for the configured bounds
func NewRangeChecker(cfg config.CleaningConfig) *RangeChecker {
	return &RangeChecker{
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		magRule:   fmt.Sprintf("gte=%g,lte=%g", cfg.MagMin, cfg.MagMax),
		depthRule: fmt.Sprintf("gte=%g,lte=%g", cfg.DepthMin, cfg.DepthMax),
		latRule:   "gte=-90,lte=90",
		lonRule:   "gte=-180,lte=180",
	}
}

// Filter retains only events satisfying all three range predicates.
// Predicates are applied in order (magnitude, depth, coordinates) and each
// dropped row is counted in the first category it failed; a row violating
// several bounds still counts only once. This preserves the per-category
// attribution of the sequential-filter formulation while walking the
// surviving set a single time.
func (rc *RangeChecker) Filter(events []dataset.Event) ([]dataset.Event, RangeSummary) {
	summary := RangeSummary{Before: len(events)}

	result := events[:0:0]
	for _, e := range events {
		switch {
		case rc.validate.Var(e.Mag, rc.magRule) != nil:
			summary.RemovedMag++
		case rc.validate.Var(e.Depth, rc.depthRule) != nil:
			summary.RemovedDepth++
		case rc.validate.Var(e.Latitude, rc.latRule) != nil,
			rc.validate.Var(e.Longitude, rc.lonRule) != nil:
			summary.RemovedCoords++
		default:
			result = append(result, e)
		}
	}

	summary.After = len(result)
	return result, summary
}
