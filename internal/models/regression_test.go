package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakecli/internal/dataset"
)

func TestSimpleRegressionExactLinear(t *testing.T) {
	// mag = 2 + 0.01 * depth, no noise
	var events []dataset.Event
	for d := 0.0; d <= 100; d += 10 {
		events = append(events, dataset.Event{Depth: d, Mag: 2 + 0.01*d, Latitude: 0, Longitude: 0})
	}

	r, err := SimpleRegression(events)
	require.NoError(t, err)

	assert.Equal(t, []string{"depth"}, r.Predictors)
	assert.InDelta(t, 0.01, r.Coefficients[0], 1e-9)
	assert.InDelta(t, 2.0, r.Intercept, 1e-9)
	assert.InDelta(t, 1.0, r.R2, 1e-9)
	assert.InDelta(t, 0.0, r.RMSE, 1e-9)
	assert.InDelta(t, 0.0, r.MAE, 1e-9)
	assert.Equal(t, 11, r.N)
}

func TestSimpleRegressionNoisy(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var events []dataset.Event
	for i := 0; i < 500; i++ {
		d := rng.Float64() * 700
		events = append(events, dataset.Event{
			Depth: d,
			Mag:   3 + 0.002*d + rng.NormFloat64()*0.1,
		})
	}

	r, err := SimpleRegression(events)
	require.NoError(t, err)

	assert.InDelta(t, 0.002, r.Coefficients[0], 5e-4)
	assert.InDelta(t, 3.0, r.Intercept, 0.1)
	assert.Greater(t, r.R2, 0.9)
}

func TestSimpleRegressionTooFewObservations(t *testing.T) {
	_, err := SimpleRegression([]dataset.Event{{Depth: 1, Mag: 2}})
	require.Error(t, err)
}

func TestMultipleRegressionExactLinear(t *testing.T) {
	// mag = 1 + 0.005*depth + 0.02*lat - 0.01*lon
	rng := rand.New(rand.NewSource(5))
	var events []dataset.Event
	for i := 0; i < 100; i++ {
		d := rng.Float64() * 700
		lat := rng.Float64()*180 - 90
		lon := rng.Float64()*360 - 180
		events = append(events, dataset.Event{
			Depth:     d,
			Latitude:  lat,
			Longitude: lon,
			Mag:       1 + 0.005*d + 0.02*lat - 0.01*lon,
		})
	}

	r, err := MultipleRegression(events)
	require.NoError(t, err)

	assert.Equal(t, []string{"depth", "latitude", "longitude"}, r.Predictors)
	assert.InDelta(t, 0.005, r.Coefficients[0], 1e-6)
	assert.InDelta(t, 0.02, r.Coefficients[1], 1e-6)
	assert.InDelta(t, -0.01, r.Coefficients[2], 1e-6)
	assert.InDelta(t, 1.0, r.Intercept, 1e-6)
	assert.InDelta(t, 1.0, r.R2, 1e-9)
}

func TestMultipleRegressionTooFewObservations(t *testing.T) {
	events := []dataset.Event{
		{Depth: 1, Mag: 2, Latitude: 0, Longitude: 0},
		{Depth: 2, Mag: 3, Latitude: 1, Longitude: 1},
	}
	_, err := MultipleRegression(events)
	require.Error(t, err)
}

func TestRegressionResultEquation(t *testing.T) {
	r := RegressionResult{
		Predictors:   []string{"depth"},
		Coefficients: []float64{0.01},
		Intercept:    2,
	}
	assert.Contains(t, r.Equation(), "mag =")
	assert.Contains(t, r.Equation(), "depth")
}
