package cleaning

import (
	"fmt"

	"quakecli/internal/dataset"
)

// Deduplicate removes rows sharing a previously seen event ID, keeping the
// first occurrence in catalog row order. Rows without an ID fall back to a
// composite key of (time, latitude, longitude, mag, depth) with the same
// first-occurrence-wins rule. Surviving rows are never mutated, which makes
// the operation idempotent: a second pass over its output removes nothing.
func Deduplicate(events []dataset.Event) ([]dataset.Event, DedupSummary) {
	summary := DedupSummary{Before: len(events)}

	seenID := make(map[string]struct{}, len(events))
	seenComposite := make(map[string]struct{})

	result := events[:0:0]
	for _, e := range events {
		if e.ID != "" {
			if _, dup := seenID[e.ID]; dup {
				summary.RemovedByID++
				continue
			}
			seenID[e.ID] = struct{}{}
		} else {
			key := compositeKey(e)
			if _, dup := seenComposite[key]; dup {
				summary.RemovedByComposite++
				continue
			}
			seenComposite[key] = struct{}{}
		}
		result = append(result, e)
	}

	summary.After = len(result)
	return result, summary
}

// compositeKey builds the fallback dedup key for rows without an ID.
// NaN fields format as "NaN" and so compare equal across rows, matching
// the treatment of the identifier-less case as a whole-row comparison.
func compositeKey(e dataset.Event) string {
	return fmt.Sprintf("%d|%v|%v|%v|%v",
		e.Time.UnixNano(), e.Latitude, e.Longitude, e.Mag, e.Depth)
}
