package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
)

func TestAnalyzeExtremes(t *testing.T) {
	ts := time.Date(2011, 3, 11, 5, 46, 0, 0, time.UTC)
	events := []dataset.Event{
		{Mag: 6.5, Place: "a"},
		{Mag: 9.1, Place: "Tohoku, Japan", Time: ts, Depth: 29, Latitude: 38.3, Longitude: 142.4},
		{Mag: 7.2, Place: "b"},
		{Mag: 5.0, Place: "c"},
	}

	es := AnalyzeExtremes(events, 2, 7.0)

	require.Len(t, es.TopEvents, 2)
	assert.Equal(t, 1, es.TopEvents[0].Rank)
	assert.Equal(t, 9.1, es.TopEvents[0].Mag)
	assert.Equal(t, "Tohoku, Japan", es.TopEvents[0].Place)
	assert.Equal(t, ts, es.TopEvents[0].Time)
	assert.Equal(t, 2, es.TopEvents[1].Rank)
	assert.Equal(t, 7.2, es.TopEvents[1].Mag)

	assert.Equal(t, 2, es.HighMagCount, "threshold is inclusive")
	assert.InDelta(t, 50.0, es.HighMagPercent, 1e-9)
	assert.Equal(t, 7.0, es.Threshold)
}

func TestAnalyzeExtremesThresholdInclusive(t *testing.T) {
	es := AnalyzeExtremes([]dataset.Event{{Mag: 7.0}}, 1, 7.0)
	assert.Equal(t, 1, es.HighMagCount)
}

func TestAnalyzeExtremesStableOnTies(t *testing.T) {
	events := []dataset.Event{
		{Mag: 6.0, Place: "first"},
		{Mag: 6.0, Place: "second"},
	}

	es := AnalyzeExtremes(events, 2, 7.0)

	require.Len(t, es.TopEvents, 2)
	assert.Equal(t, "first", es.TopEvents[0].Place, "ties keep catalog order")
}

func TestAnalyzeExtremesEmpty(t *testing.T) {
	es := AnalyzeExtremes(nil, 10, 7.0)

	assert.Empty(t, es.TopEvents)
	assert.Equal(t, 0, es.HighMagCount)
}

func TestAnalyzerAnalyze(t *testing.T) {
	ts := time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC)
	events := []dataset.Event{
		{ID: "a", Time: ts, Year: 2020, Decade: 2020, Month: 1,
			Latitude: 35, Longitude: -118, Depth: 10, Mag: 4.5, Place: "x, California"},
		{ID: "b", Time: ts.AddDate(0, 1, 0), Year: 2020, Decade: 2020, Month: 2,
			Latitude: 36, Longitude: -119, Depth: 20, Mag: 5.5, Place: "y, California"},
		{ID: "c", Time: ts.AddDate(1, 0, 0), Year: 2021, Decade: 2020, Month: 1,
			Latitude: 61, Longitude: -150, Depth: 50, Mag: 7.5, Place: "z, Alaska"},
	}

	analyzer := NewAnalyzer(config.AnalysisConfig{
		TopRegions:       5,
		TopEvents:        2,
		HighMagThreshold: 7.0,
	}, nil)

	report, err := analyzer.Analyze(context.Background(), events)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalEvents)
	assert.Equal(t, 3, report.Magnitude.Count)
	assert.InDelta(t, 4.5, report.Magnitude.Min, 1e-9)
	assert.InDelta(t, 7.5, report.Magnitude.Max, 1e-9)
	assert.Equal(t, 2020, report.Temporal.MinYear)
	assert.Equal(t, "California", report.Geographic.TopRegions[0].Region)
	assert.Len(t, report.Extremes.TopEvents, 2)
	assert.Equal(t, 1, report.Extremes.HighMagCount)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestAnalyzerAnalyzeEmpty(t *testing.T) {
	analyzer := NewAnalyzer(config.AnalysisConfig{}, nil)

	_, err := analyzer.Analyze(context.Background(), nil)
	require.Error(t, err)
}
