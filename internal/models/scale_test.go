package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestFitScalerAndTransform(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{
		1, 100,
		2, 200,
		3, 300,
		4, 400,
	})

	scaler := FitScaler(m)

	assert.InDelta(t, 2.5, scaler.Means[0], 1e-9)
	assert.InDelta(t, 250, scaler.Means[1], 1e-9)

	scaled := scaler.Transform(m)

	for j := 0; j < 2; j++ {
		col := mat.Col(nil, j, scaled)
		assert.InDelta(t, 0, stat.Mean(col, nil), 1e-9, "column %d centered", j)
		assert.InDelta(t, 1, stat.StdDev(col, nil), 1e-9, "column %d unit variance", j)
	}
}

func TestFitScalerConstantColumn(t *testing.T) {
	m := mat.NewDense(3, 1, []float64{5, 5, 5})

	scaler := FitScaler(m)
	assert.Equal(t, 1.0, scaler.Stds[0], "zero deviation replaced to avoid division by zero")

	scaled := scaler.Transform(m)
	for i := 0; i < 3; i++ {
		assert.Equal(t, 0.0, scaled.At(i, 0))
	}
}

func TestScalerInverseRoundTrip(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})

	scaler := FitScaler(m)
	scaled := scaler.Transform(m)

	back := scaler.Inverse(scaled.RawRowView(1))
	assert.InDelta(t, 2, back[0], 1e-9)
	assert.InDelta(t, 20, back[1], 1e-9)
}
