package cleaning

import (
	"quakecli/internal/dataset"
)

// NormalizeTimestamps derives the temporal columns (year, decade, month)
// for every event carrying a valid timestamp. Events whose timestamp failed
// coercion at load time are left untouched; they are reported in the
// summary and removed later by the completeness filter. Rows are never
// dropped here.
func NormalizeTimestamps(events []dataset.Event) ([]dataset.Event, TimestampSummary) {
	summary := TimestampSummary{Total: len(events)}

	first := true
	for i := range events {
		if !events[i].HasTime() {
			continue
		}

		year := events[i].Time.Year()
		events[i].Year = year
		events[i].Decade = DecadeOf(year)
		events[i].Month = int(events[i].Time.Month())

		summary.WithTime++
		if first || year < summary.MinYear {
			summary.MinYear = year
		}
		if first || year > summary.MaxYear {
			summary.MaxYear = year
		}
		first = false
	}

	if summary.Total > 0 {
		summary.Fraction = float64(summary.WithTime) / float64(summary.Total)
	}

	return events, summary
}

// DecadeOf returns the year floored to the nearest lower multiple of ten.
// Flooring is toward negative infinity, so year -5 maps to decade -10.
func DecadeOf(year int) int {
	return year - ((year%10)+10)%10
}
