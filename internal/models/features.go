package models

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/mat"

	"quakecli/internal/dataset"
)

// FeatureNames lists the model features in column order
var FeatureNames = []string{"mag", "depth", "latitude", "longitude"}

// FeatureMatrix builds the n x 4 model feature matrix (magnitude, depth,
// latitude, longitude) from events with all four fields present.
func FeatureMatrix(events []dataset.Event) *mat.Dense {
	rows := make([]float64, 0, len(events)*len(FeatureNames))
	n := 0
	for _, e := range events {
		if !e.HasMag() || !e.HasDepth() || !e.HasCoordinates() {
			continue
		}
		rows = append(rows, e.Mag, e.Depth, e.Latitude, e.Longitude)
		n++
	}
	if n == 0 {
		return nil
	}
	return mat.NewDense(n, len(FeatureNames), rows)
}

// Sample returns a deterministic random subset of at most maxRows rows.
// Row order is preserved so repeated runs with the same seed see the same
// matrix. The input is returned unchanged when it already fits.
func Sample(m *mat.Dense, maxRows int, rng *rand.Rand) *mat.Dense {
	n, c := m.Dims()
	if maxRows <= 0 || n <= maxRows {
		return m
	}

	idx := rng.Perm(n)[:maxRows]
	sort.Ints(idx)

	out := mat.NewDense(maxRows, c, nil)
	for i, row := range idx {
		out.SetRow(i, m.RawRowView(row))
	}
	return out
}
