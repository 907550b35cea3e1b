package models

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// blobs builds three well-separated clusters of points in two dimensions
func blobs(perCluster int, rng *rand.Rand) *mat.Dense {
	centers := [][2]float64{{0, 0}, {10, 10}, {-10, 10}}
	data := make([]float64, 0, perCluster*len(centers)*2)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			data = append(data,
				c[0]+rng.NormFloat64()*0.5,
				c[1]+rng.NormFloat64()*0.5,
			)
		}
	}
	return mat.NewDense(perCluster*len(centers), 2, data)
}

func TestKMeansSeparatedBlobs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := blobs(50, rng)

	result, err := KMeans(m, 3, 5, 100, rng)
	require.NoError(t, err)

	assert.Equal(t, 3, result.K)
	assert.Len(t, result.Labels, 150)
	assert.Len(t, result.Centroids, 3)

	// Well-separated blobs recover the 50/50/50 split
	require.Len(t, result.Sizes, 3)
	for _, size := range result.Sizes {
		assert.Equal(t, 50, size)
	}

	// Each blob maps to exactly one label
	for c := 0; c < 3; c++ {
		first := result.Labels[c*50]
		for i := 1; i < 50; i++ {
			assert.Equal(t, first, result.Labels[c*50+i])
		}
	}

	assert.Greater(t, result.Silhouette, 0.8, "tight separated blobs score high")
	assert.Less(t, result.DaviesBouldin, 0.5)
	assert.Greater(t, result.Inertia, 0.0)
}

func TestKMeansSingleCluster(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := blobs(10, rng)

	result, err := KMeans(m, 1, 1, 50, rng)
	require.NoError(t, err)

	assert.Equal(t, []int{30}, result.Sizes)
	assert.Equal(t, 0.0, result.Silhouette, "undefined for k=1")
	assert.Equal(t, 0.0, result.DaviesBouldin)
}

func TestKMeansInvalidK(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	_, err := KMeans(m, 0, 1, 10, rng)
	require.Error(t, err)

	_, err = KMeans(m, 5, 1, 10, rng)
	require.Error(t, err, "more clusters than points")
}

func TestKMeansDeterministicWithSeed(t *testing.T) {
	a, err := KMeans(blobs(20, rand.New(rand.NewSource(9))), 3, 3, 100, rand.New(rand.NewSource(11)))
	require.NoError(t, err)
	b, err := KMeans(blobs(20, rand.New(rand.NewSource(9))), 3, 3, 100, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	assert.Equal(t, a.Labels, b.Labels)
	assert.Equal(t, a.Inertia, b.Inertia)
}

func TestElbowInertiaDecreases(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := blobs(30, rng)

	points := Elbow(m, 5, 3, 100, rng)
	require.Len(t, points, 5)

	for i := 1; i < len(points); i++ {
		assert.Equal(t, i+1, points[i].K)
		assert.LessOrEqual(t, points[i].Inertia, points[i-1].Inertia,
			"inertia is non-increasing in k")
	}

	// The drop from k=2 to k=3 captures the true cluster count; beyond
	// it the curve flattens.
	drop23 := points[1].Inertia - points[2].Inertia
	drop34 := points[2].Inertia - points[3].Inertia
	assert.Greater(t, drop23, drop34)
}

func TestElbowCapsAtPointCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := mat.NewDense(3, 2, []float64{1, 1, 2, 2, 3, 3})

	points := Elbow(m, 10, 1, 10, rng)
	assert.Len(t, points, 3)
}
