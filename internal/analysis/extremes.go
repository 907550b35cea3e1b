package analysis

import (
	"sort"

	"quakecli/internal/dataset"
)

// AnalyzeExtremes ranks the topN highest-magnitude events and counts the
// events at or above the high-magnitude threshold.
func AnalyzeExtremes(events []dataset.Event, topN int, threshold float64) ExtremeStats {
	es := ExtremeStats{Threshold: threshold}
	if len(events) == 0 {
		return es
	}

	ordered := make([]dataset.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Mag > ordered[j].Mag
	})

	if topN > len(ordered) {
		topN = len(ordered)
	}
	for i := 0; i < topN; i++ {
		e := ordered[i]
		es.TopEvents = append(es.TopEvents, ExtremeEvent{
			Rank:      i + 1,
			Mag:       e.Mag,
			Depth:     e.Depth,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
			Place:     e.Place,
			Time:      e.Time,
		})
	}

	for _, e := range events {
		if e.Mag >= threshold {
			es.HighMagCount++
		}
	}
	es.HighMagPercent = float64(es.HighMagCount) / float64(len(events)) * 100

	return es
}
