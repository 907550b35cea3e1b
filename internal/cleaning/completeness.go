package cleaning

import (
	"quakecli/internal/dataset"
)

// FilterComplete drops every record missing a value in any critical field
// (mag, depth, latitude, longitude, time). It must run after timestamp
// normalization, since time becomes absent precisely when parsing fails,
// and before range validation, since values must exist before they can be
// range-checked. Per-field missing counts are observed over the input set
// immediately before the drop.
func FilterComplete(events []dataset.Event) ([]dataset.Event, CompletenessSummary) {
	summary := CompletenessSummary{Before: len(events)}

	missing := map[string]int{}
	for _, e := range events {
		if !e.HasMag() {
			missing["mag"]++
		}
		if !e.HasDepth() {
			missing["depth"]++
		}
		if !e.HasLatitude() {
			missing["latitude"]++
		}
		if !e.HasLongitude() {
			missing["longitude"]++
		}
		if !e.HasTime() {
			missing["time"]++
		}
	}

	for _, field := range []string{"mag", "depth", "latitude", "longitude", "time"} {
		count := missing[field]
		pct := 0.0
		if len(events) > 0 {
			pct = float64(count) / float64(len(events)) * 100
		}
		summary.Missing = append(summary.Missing, FieldMissing{
			Field:   field,
			Count:   count,
			Percent: pct,
		})
	}

	result := events[:0:0]
	for _, e := range events {
		if e.Complete() {
			result = append(result, e)
		}
	}

	summary.After = len(result)
	return result, summary
}
