package models

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// StandardScaler centers each feature column to zero mean and unit
// variance. Required before k-means and PCA so coordinate columns do not
// dominate the distance metric.
type StandardScaler struct {
	Means []float64
	Stds  []float64
}

// FitScaler computes per-column means and standard deviations
func FitScaler(m *mat.Dense) *StandardScaler {
	_, cols := m.Dims()
	s := &StandardScaler{
		Means: make([]float64, cols),
		Stds:  make([]float64, cols),
	}
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, m)
		s.Means[j] = stat.Mean(col, nil)
		s.Stds[j] = stat.StdDev(col, nil)
		if s.Stds[j] == 0 {
			s.Stds[j] = 1
		}
	}
	return s
}

// Transform returns a scaled copy of the matrix
func (s *StandardScaler) Transform(m *mat.Dense) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (m.At(i, j)-s.Means[j])/s.Stds[j])
		}
	}
	return out
}

// Inverse maps one scaled row back to original units
func (s *StandardScaler) Inverse(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = v*s.Stds[j] + s.Means[j]
	}
	return out
}
