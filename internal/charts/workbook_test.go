package charts

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"quakecli/internal/dataset"
)

func chartCatalog(n int) []dataset.Event {
	events := make([]dataset.Event, n)
	for i := range events {
		year := 2000 + i%20
		events[i] = dataset.Event{
			Time:      time.Date(year, time.Month(i%12+1), 1, 0, 0, 0, 0, time.UTC),
			Year:      year,
			Decade:    year - year%10,
			Month:     i%12 + 1,
			Latitude:  float64(i%80 - 40),
			Longitude: float64(i%160 - 80),
			Depth:     float64(i % 650),
			Mag:       float64(i%90) / 10,
			Place:     "somewhere, Region" + string(rune('A'+i%4)),
		}
	}
	return events
}

func TestBuilderBuild(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.xlsx")

	b := NewBuilder(nil, 42)
	require.NoError(t, b.Build(context.Background(), chartCatalog(200), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	wantSheets := []string{
		"MagnitudeHist", "DepthHist", "EventsPerYear",
		"AvgMagPerYear", "MagByDecade", "DepthVsMag", "TopRegions",
	}
	got := f.GetSheetList()
	for _, sheet := range wantSheets {
		assert.Contains(t, got, sheet)
	}
	assert.Contains(t, got, "CorrelationMatrix")
	assert.NotContains(t, got, "Sheet1", "default sheet removed")

	// Data sheets carry headers and at least one data row
	for _, sheet := range wantSheets {
		a1, err := f.GetCellValue(sheet, "A1")
		require.NoError(t, err)
		assert.NotEmpty(t, a1, "%s header", sheet)

		b2, err := f.GetCellValue(sheet, "B2")
		require.NoError(t, err)
		assert.NotEmpty(t, b2, "%s first data row", sheet)
	}
}

func TestBuilderCorrelationMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.xlsx")

	b := NewBuilder(nil, 42)
	require.NoError(t, b.Build(context.Background(), chartCatalog(200), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "CorrelationMatrix"
	fields := []string{"Magnitude", "Depth", "Latitude", "Longitude"}
	for i, name := range fields {
		header, err := f.GetCellValue(sheet, fmt.Sprintf("%c1", 'B'+i))
		require.NoError(t, err)
		assert.Equal(t, name, header)

		label, err := f.GetCellValue(sheet, fmt.Sprintf("A%d", i+2))
		require.NoError(t, err)
		assert.Equal(t, name, label)
	}

	for i := range fields {
		for j := range fields {
			cell := fmt.Sprintf("%c%d", 'B'+j, i+2)
			raw, err := f.GetCellValue(sheet, cell)
			require.NoError(t, err)
			r, err := strconv.ParseFloat(raw, 64)
			require.NoError(t, err, "cell %s", cell)

			if i == j {
				assert.Equal(t, 1.0, r, "diagonal cell %s", cell)
			} else {
				assert.GreaterOrEqual(t, r, -1.0, "cell %s", cell)
				assert.LessOrEqual(t, r, 1.0, "cell %s", cell)
			}
		}
	}

	// Matrix is symmetric: r(mag, depth) == r(depth, mag)
	bc, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	cb, err := f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, bc, cb)
}

func TestBuilderBuildEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.xlsx")

	b := NewBuilder(nil, 42)
	require.Error(t, b.Build(context.Background(), nil, path))
}

func TestBuilderScatterSampleDeterministic(t *testing.T) {
	dir := t.TempDir()
	events := chartCatalog(scatterSample + 500)

	pathA := filepath.Join(dir, "a.xlsx")
	pathB := filepath.Join(dir, "b.xlsx")
	require.NoError(t, NewBuilder(nil, 7).Build(context.Background(), events, pathA))
	require.NoError(t, NewBuilder(nil, 7).Build(context.Background(), events, pathB))

	a, err := excelize.OpenFile(pathA)
	require.NoError(t, err)
	defer a.Close()
	b, err := excelize.OpenFile(pathB)
	require.NoError(t, err)
	defer b.Close()

	rowsA, err := a.GetRows("DepthVsMag")
	require.NoError(t, err)
	rowsB, err := b.GetRows("DepthVsMag")
	require.NoError(t, err)

	assert.Equal(t, scatterSample+1, len(rowsA), "header plus capped sample")
	assert.Equal(t, rowsA, rowsB, "same seed, same sample")
}
