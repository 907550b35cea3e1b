package charts

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/stat"

	"quakecli/internal/analysis"
	"quakecli/internal/dataset"
)

const (
	magBinWidth   = 0.5
	depthBinWidth = 50
	scatterSample = 1000
	topRegions    = 15
)

// Builder renders the visualization workbook: one sheet of data plus an
// embedded chart per figure of the analysis.
type Builder struct {
	logger *slog.Logger
	seed   int64
}

// NewBuilder creates a chart workbook builder
func NewBuilder(logger *slog.Logger, seed int64) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger, seed: seed}
}

// Build writes the chart workbook for the cleaned dataset to path
func (b *Builder) Build(ctx context.Context, events []dataset.Event, path string) error {
	if len(events) == 0 {
		return fmt.Errorf("no events to chart")
	}

	b.logger.InfoContext(ctx, "building chart workbook",
		"events", len(events),
		"path", path,
	)

	f := excelize.NewFile()
	defer f.Close()

	if err := b.magnitudeHistogram(f, events); err != nil {
		return fmt.Errorf("magnitude histogram: %w", err)
	}
	if err := b.depthHistogram(f, events); err != nil {
		return fmt.Errorf("depth histogram: %w", err)
	}
	if err := b.yearlySheets(f, events); err != nil {
		return fmt.Errorf("yearly charts: %w", err)
	}
	if err := b.decadeSheet(f, events); err != nil {
		return fmt.Errorf("decade chart: %w", err)
	}
	if err := b.scatterSheet(f, events); err != nil {
		return fmt.Errorf("depth-magnitude scatter: %w", err)
	}
	if err := b.correlationSheet(f, events); err != nil {
		return fmt.Errorf("correlation matrix: %w", err)
	}
	if err := b.regionSheet(f, events); err != nil {
		return fmt.Errorf("region chart: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create workbook directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// magnitudeHistogram bins magnitudes in half-unit steps
func (b *Builder) magnitudeHistogram(f *excelize.File, events []dataset.Event) error {
	const sheet = "MagnitudeHist"
	bins := make(map[int]int)
	maxBin := 0
	for _, e := range events {
		bin := int(e.Mag / magBinWidth)
		bins[bin]++
		if bin > maxBin {
			maxBin = bin
		}
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Magnitude bin")
	f.SetCellValue(sheet, "B1", "Events")
	for bin := 0; bin <= maxBin; bin++ {
		row := bin + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row),
			fmt.Sprintf("%.1f-%.1f", float64(bin)*magBinWidth, float64(bin+1)*magBinWidth))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), bins[bin])
	}

	return addChart(f, sheet, "D2", excelize.Col, "Magnitude distribution", maxBin+2)
}

// depthHistogram bins depths in 50 km steps
func (b *Builder) depthHistogram(f *excelize.File, events []dataset.Event) error {
	const sheet = "DepthHist"
	bins := make(map[int]int)
	maxBin := 0
	for _, e := range events {
		bin := int(e.Depth / depthBinWidth)
		bins[bin]++
		if bin > maxBin {
			maxBin = bin
		}
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Depth bin (km)")
	f.SetCellValue(sheet, "B1", "Events")
	for bin := 0; bin <= maxBin; bin++ {
		row := bin + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row),
			fmt.Sprintf("%d-%d", bin*depthBinWidth, (bin+1)*depthBinWidth))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), bins[bin])
	}

	return addChart(f, sheet, "D2", excelize.Col, "Depth distribution", maxBin+2)
}

// yearlySheets renders events per year and average magnitude per year
func (b *Builder) yearlySheets(f *excelize.File, events []dataset.Event) error {
	counts := make(map[int]int)
	magSums := make(map[int]float64)
	for _, e := range events {
		if !e.HasTime() {
			continue
		}
		counts[e.Year]++
		magSums[e.Year] += e.Mag
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	const countSheet = "EventsPerYear"
	if _, err := f.NewSheet(countSheet); err != nil {
		return err
	}
	f.SetCellValue(countSheet, "A1", "Year")
	f.SetCellValue(countSheet, "B1", "Events")
	for i, y := range years {
		f.SetCellValue(countSheet, fmt.Sprintf("A%d", i+2), y)
		f.SetCellValue(countSheet, fmt.Sprintf("B%d", i+2), counts[y])
	}
	if err := addChart(f, countSheet, "D2", excelize.Line, "Events per year", len(years)+1); err != nil {
		return err
	}

	const magSheet = "AvgMagPerYear"
	if _, err := f.NewSheet(magSheet); err != nil {
		return err
	}
	f.SetCellValue(magSheet, "A1", "Year")
	f.SetCellValue(magSheet, "B1", "Mean magnitude")
	for i, y := range years {
		f.SetCellValue(magSheet, fmt.Sprintf("A%d", i+2), y)
		f.SetCellValue(magSheet, fmt.Sprintf("B%d", i+2), magSums[y]/float64(counts[y]))
	}
	return addChart(f, magSheet, "D2", excelize.Line, "Average magnitude per year", len(years)+1)
}

// decadeSheet renders mean magnitude per decade
func (b *Builder) decadeSheet(f *excelize.File, events []dataset.Event) error {
	const sheet = "MagByDecade"
	counts := make(map[int]int)
	sums := make(map[int]float64)
	for _, e := range events {
		if !e.HasTime() {
			continue
		}
		counts[e.Decade]++
		sums[e.Decade] += e.Mag
	}

	decades := make([]int, 0, len(counts))
	for d := range counts {
		decades = append(decades, d)
	}
	sort.Ints(decades)

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Decade")
	f.SetCellValue(sheet, "B1", "Mean magnitude")
	for i, d := range decades {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), fmt.Sprintf("%ds", d))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), sums[d]/float64(counts[d]))
	}
	return addChart(f, sheet, "D2", excelize.Col, "Mean magnitude by decade", len(decades)+1)
}

// scatterSheet renders a deterministic sample of depth vs magnitude
func (b *Builder) scatterSheet(f *excelize.File, events []dataset.Event) error {
	const sheet = "DepthVsMag"

	sample := events
	if len(events) > scatterSample {
		rng := rand.New(rand.NewSource(b.seed))
		idx := rng.Perm(len(events))[:scatterSample]
		sort.Ints(idx)
		sample = make([]dataset.Event, scatterSample)
		for i, j := range idx {
			sample[i] = events[j]
		}
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Depth (km)")
	f.SetCellValue(sheet, "B1", "Magnitude")
	for i, e := range sample {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), e.Depth)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), e.Mag)
	}
	return addChart(f, sheet, "D2", excelize.Scatter, "Depth vs magnitude", len(sample)+1)
}

// correlationSheet renders the pairwise Pearson matrix of the four numeric
// fields, shaded from blue (-1) through white (0) to red (+1).
func (b *Builder) correlationSheet(f *excelize.File, events []dataset.Event) error {
	const sheet = "CorrelationMatrix"

	fields := []string{"Magnitude", "Depth", "Latitude", "Longitude"}
	cols := make([][]float64, len(fields))
	for _, e := range events {
		if !e.HasMag() || !e.HasDepth() || !e.HasCoordinates() {
			continue
		}
		cols[0] = append(cols[0], e.Mag)
		cols[1] = append(cols[1], e.Depth)
		cols[2] = append(cols[2], e.Latitude)
		cols[3] = append(cols[3], e.Longitude)
	}

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, name := range fields {
		col, err := excelize.ColumnNumberToName(i + 2)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, col+"1", name)
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), name)
	}
	for i := range fields {
		for j := range fields {
			r := 1.0
			if i != j {
				if len(cols[i]) < 3 {
					// Too few complete rows for a meaningful coefficient
					r = 0
				} else {
					r = stat.Correlation(cols[i], cols[j], nil)
				}
			}
			col, err := excelize.ColumnNumberToName(j + 2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, i+2), r)
		}
	}

	return f.SetConditionalFormat(sheet, "B2:E5", []excelize.ConditionalFormatOptions{
		{
			Type:     "3_color_scale",
			Criteria: "=",
			MinType:  "num",
			MinValue: "-1",
			MinColor: "#5B8AC6",
			MidType:  "num",
			MidValue: "0",
			MidColor: "#FFFFFF",
			MaxType:  "num",
			MaxValue: "1",
			MaxColor: "#C0504D",
		},
	})
}

// regionSheet renders the most active regions
func (b *Builder) regionSheet(f *excelize.File, events []dataset.Event) error {
	const sheet = "TopRegions"
	gs := analysis.AnalyzeGeographic(events, topRegions)

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	f.SetCellValue(sheet, "A1", "Region")
	f.SetCellValue(sheet, "B1", "Events")
	for i, rc := range gs.TopRegions {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), rc.Region)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), rc.Count)
	}
	return addChart(f, sheet, "D2", excelize.Bar, "Most active regions", len(gs.TopRegions)+1)
}

// addChart embeds a chart referencing column A (categories) and column B
// (values) of the given sheet, through lastRow.
func addChart(f *excelize.File, sheet, cell string, chartType excelize.ChartType, title string, lastRow int) error {
	return f.AddChart(sheet, cell, &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{
			{
				Name:       fmt.Sprintf("%s!$B$1", sheet),
				Categories: fmt.Sprintf("%s!$A$2:$A$%d", sheet, lastRow),
				Values:     fmt.Sprintf("%s!$B$2:$B$%d", sheet, lastRow),
			},
		},
		Title: []excelize.RichTextRun{{Text: title}},
		Legend: excelize.ChartLegend{
			Position: "bottom",
		},
	})
}
