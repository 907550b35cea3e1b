package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// WriteReport writes the descriptive analysis as a plain-text artifact
func WriteReport(path string, report *Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "DESCRIPTIVE ANALYSIS REPORT - USGS EARTHQUAKE CATALOG")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Events analyzed: %d\n\n", report.TotalEvents)

	writeDescriptive(&b, thin, "MAGNITUDE", report.Magnitude, "")
	writeDescriptive(&b, thin, "DEPTH", report.Depth, " km")

	fmt.Fprintln(&b, "TEMPORAL DISTRIBUTION:")
	fmt.Fprintln(&b, thin)
	t := report.Temporal
	fmt.Fprintf(&b, "Years analyzed:          %d - %d\n", t.MinYear, t.MaxYear)
	fmt.Fprintf(&b, "Mean events/year:        %.0f\n", t.MeanPerYear)
	fmt.Fprintf(&b, "Median events/year:      %.0f\n", t.MedianPerYear)
	fmt.Fprintf(&b, "Busiest year:            %d (%d events)\n", t.BusiestYear.Year, t.BusiestYear.Count)
	fmt.Fprintf(&b, "Quietest year:           %d (%d events)\n\n", t.QuietestYear.Year, t.QuietestYear.Count)

	fmt.Fprintln(&b, "Distribution by decade:")
	for _, dc := range t.ByDecade {
		fmt.Fprintf(&b, "  %ds:  %12d events (%5.2f%%)\n", dc.Decade, dc.Count, dc.Percent)
	}
	if t.TrendFactor > 0 {
		fmt.Fprintf(&b, "Trend: %.1fx change comparing first vs last 3 decades\n", t.TrendFactor)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "Distribution by month:")
	for i, count := range t.ByMonth {
		fmt.Fprintf(&b, "  %s:  %12d events\n", monthNames[i], count)
	}
	fmt.Fprintln(&b)

	g := report.Geographic
	fmt.Fprintf(&b, "TOP %d REGIONS:\n", len(g.TopRegions))
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "%-4s %-35s %12s %10s\n", "#", "Region", "Events", "Percent")
	for i, rc := range g.TopRegions {
		fmt.Fprintf(&b, "%-4d %-35s %12d %9.2f%%\n", i+1, rc.Region, rc.Count, rc.Percent)
	}
	fmt.Fprintf(&b, "Top regions cover %.2f%% of all events (%d distinct regions)\n\n",
		g.TopCoverage, g.DistinctRegions)

	c := report.Correlation
	fmt.Fprintln(&b, "CORRELATION: MAGNITUDE vs DEPTH")
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Pearson coefficient:     %8.4f\n", c.Pearson)
	fmt.Fprintf(&b, "Pearson p-value:         %.2e\n", c.PearsonPValue)
	fmt.Fprintf(&b, "Spearman coefficient:    %8.4f\n", c.Spearman)
	fmt.Fprintf(&b, "Interpretation:          %s %s correlation", c.Strength, c.Direction)
	if c.Significant {
		fmt.Fprintf(&b, ", statistically significant (p<0.05)\n\n")
	} else {
		fmt.Fprintf(&b, ", not statistically significant (p>=0.05)\n\n")
	}

	e := report.Extremes
	fmt.Fprintf(&b, "TOP %d HIGHEST-MAGNITUDE EVENTS:\n", len(e.TopEvents))
	fmt.Fprintln(&b, thin)
	for _, ev := range e.TopEvents {
		fmt.Fprintf(&b, "#%d\n", ev.Rank)
		fmt.Fprintf(&b, "  Magnitude:   %.2f\n", ev.Mag)
		fmt.Fprintf(&b, "  Location:    %s\n", ev.Place)
		fmt.Fprintf(&b, "  Date:        %s\n", ev.Time.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "  Depth:       %.2f km\n", ev.Depth)
		fmt.Fprintf(&b, "  Coordinates: %.4f, %.4f\n", ev.Latitude, ev.Longitude)
	}
	fmt.Fprintf(&b, "\nEvents with magnitude >= %.1f: %d (%.3f%%)\n",
		e.Threshold, e.HighMagCount, e.HighMagPercent)

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeDescriptive(b *strings.Builder, thin, title string, s DescriptiveStats, unit string) {
	fmt.Fprintf(b, "%s:\n", title)
	fmt.Fprintln(b, thin)
	fmt.Fprintf(b, "Count:                   %d\n", s.Count)
	fmt.Fprintf(b, "Mean:                    %.3f%s\n", s.Mean, unit)
	fmt.Fprintf(b, "Median (Q2):             %.3f%s\n", s.Median, unit)
	fmt.Fprintf(b, "Standard deviation:      %.3f%s\n", s.StdDev, unit)
	fmt.Fprintf(b, "Minimum:                 %.3f%s\n", s.Min, unit)
	fmt.Fprintf(b, "Quartile 1 (Q1):         %.3f%s\n", s.Q1, unit)
	fmt.Fprintf(b, "Quartile 3 (Q3):         %.3f%s\n", s.Q3, unit)
	fmt.Fprintf(b, "Maximum:                 %.3f%s\n", s.Max, unit)
	fmt.Fprintf(b, "Interquartile range:     %.3f%s\n", s.IQR, unit)
	fmt.Fprintf(b, "Coef. of variation:      %.2f%%\n\n", s.CV)
}
