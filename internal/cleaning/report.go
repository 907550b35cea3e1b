package cleaning

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const reportRule = 80

// WriteReport writes the human-readable cleaning summary as plain text.
// The artifact is consumed by people auditing how much data was discarded
// and why; nothing parses it programmatically.
func WriteReport(path string, summary *Summary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	var b strings.Builder
	rule := strings.Repeat("=", reportRule)
	thin := strings.Repeat("-", reportRule)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "DATA CLEANING REPORT - USGS EARTHQUAKE CATALOG")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintln(&b, "GENERAL STATISTICS:")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Original records:        %15d\n", summary.OriginalCount)
	fmt.Fprintf(&b, "Final records:           %15d\n", summary.FinalCount)
	fmt.Fprintf(&b, "Records removed:         %15d\n", summary.OriginalCount-summary.FinalCount)
	fmt.Fprintf(&b, "Retention:               %14.2f%%\n\n", summary.RetentionPercent())

	fmt.Fprintln(&b, "STAGE BREAKDOWN:")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Valid timestamps:        %15d (%.2f%%)\n",
		summary.Timestamps.WithTime, summary.Timestamps.Fraction*100)
	fmt.Fprintf(&b, "Duplicates removed:      %15d\n", summary.Dedup.Removed())
	fmt.Fprintf(&b, "Incomplete rows removed: %15d\n", summary.Completeness.Removed())
	for _, fm := range summary.Completeness.Missing {
		fmt.Fprintf(&b, "  %-12s missing:    %15d (%.2f%%)\n", fm.Field, fm.Count, fm.Percent)
	}
	fmt.Fprintf(&b, "Out-of-range removed:    %15d\n", summary.Ranges.Removed())
	fmt.Fprintf(&b, "  magnitude:             %15d\n", summary.Ranges.RemovedMag)
	fmt.Fprintf(&b, "  depth:                 %15d\n", summary.Ranges.RemovedDepth)
	fmt.Fprintf(&b, "  coordinates:           %15d\n\n", summary.Ranges.RemovedCoords)

	fmt.Fprintln(&b, "TEMPORAL RANGE:")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "First year:              %15d\n", summary.MinYear)
	fmt.Fprintf(&b, "Last year:               %15d\n", summary.MaxYear)
	fmt.Fprintf(&b, "Years covered:           %15d\n\n", summary.MaxYear-summary.MinYear)

	fmt.Fprintln(&b, "DISTRIBUTION BY DECADE:")
	fmt.Fprintln(&b, thin)
	for _, decade := range sortedDecades(summary.DecadeCounts) {
		fmt.Fprintf(&b, "  %ds:                  %15d\n", decade, summary.DecadeCounts[decade])
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "DATASET READY FOR ANALYSIS")
	fmt.Fprintln(&b, rule)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func sortedDecades(counts map[int]int) []int {
	decades := make([]int, 0, len(counts))
	for d := range counts {
		decades = append(decades, d)
	}
	sort.Ints(decades)
	return decades
}
