package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPCAVarianceOrdering(t *testing.T) {
	// First axis carries most of the variance
	rng := rand.New(rand.NewSource(42))
	n := 200
	data := make([]float64, 0, n*3)
	for i := 0; i < n; i++ {
		data = append(data,
			rng.NormFloat64()*10,
			rng.NormFloat64()*2,
			rng.NormFloat64()*0.5,
		)
	}
	m := mat.NewDense(n, 3, data)

	result, err := PCA(m, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Components)
	require.Len(t, result.ExplainedVariance, 3)

	for i := 1; i < 3; i++ {
		assert.GreaterOrEqual(t, result.ExplainedVariance[i-1], result.ExplainedVariance[i],
			"components ordered by explained variance")
	}
	assert.Greater(t, result.ExplainedVariance[0], 0.9)

	assert.InDelta(t, 1.0, result.Cumulative[2], 1e-9, "all components explain everything")
	for i := 1; i < 3; i++ {
		assert.Greater(t, result.Cumulative[i], result.Cumulative[i-1])
	}
}

func TestPCATruncatesToColumnCount(t *testing.T) {
	m := mat.NewDense(4, 2, []float64{1, 2, 3, 4, 5, 6, 7, 9})

	result, err := PCA(m, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Components)
	assert.Len(t, result.ExplainedVariance, 2)
}

func TestPCATooFewRows(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 2})
	_, err := PCA(m, 2)
	require.Error(t, err)
}
