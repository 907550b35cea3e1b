package cleaning

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quakecli/internal/dataset"
)

func TestDecadeOf(t *testing.T) {
	tests := []struct {
		name string
		year int
		want int
	}{
		{name: "mid decade", year: 1994, want: 1990},
		{name: "decade boundary", year: 2000, want: 2000},
		{name: "last year of decade", year: 2019, want: 2010},
		{name: "first year of decade", year: 2020, want: 2020},
		{name: "year zero", year: 0, want: 0},
		{name: "negative year floors down", year: -5, want: -10},
		{name: "negative decade boundary", year: -10, want: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecadeOf(tt.year))
		})
	}
}

func TestNormalizeTimestamps(t *testing.T) {
	events := []dataset.Event{
		{ID: "a", Time: time.Date(2020, 1, 15, 10, 30, 0, 0, time.UTC), Mag: 5.0},
		{ID: "b", Mag: 4.0}, // unparseable timestamp, zero time
		{ID: "c", Time: time.Date(1994, 6, 1, 0, 0, 0, 0, time.UTC), Mag: 3.2},
	}

	normalized, summary := NormalizeTimestamps(events)

	assert.Len(t, normalized, 3, "normalization never drops rows")

	assert.Equal(t, 2020, normalized[0].Year)
	assert.Equal(t, 2020, normalized[0].Decade)
	assert.Equal(t, 1, normalized[0].Month)

	assert.Equal(t, 0, normalized[1].Year, "timeless rows keep zero derived fields")

	assert.Equal(t, 1994, normalized[2].Year)
	assert.Equal(t, 1990, normalized[2].Decade)
	assert.Equal(t, 6, normalized[2].Month)

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.WithTime)
	assert.InDelta(t, 2.0/3.0, summary.Fraction, 1e-9)
	assert.Equal(t, 1994, summary.MinYear)
	assert.Equal(t, 2020, summary.MaxYear)
}

func TestNormalizeTimestampsEmpty(t *testing.T) {
	normalized, summary := NormalizeTimestamps(nil)

	assert.Empty(t, normalized)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.Fraction)
}

func TestNormalizeTimestampsAllMissing(t *testing.T) {
	events := []dataset.Event{
		{ID: "a", Mag: math.NaN()},
		{ID: "b"},
	}

	normalized, summary := NormalizeTimestamps(events)

	assert.Len(t, normalized, 2)
	assert.Equal(t, 0, summary.WithTime)
	assert.Equal(t, 0.0, summary.Fraction)
}
