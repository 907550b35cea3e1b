package models

import (
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
)

func testModelConfig() config.ModelsConfig {
	return config.ModelsConfig{
		Clusters:      3,
		MaxElbowK:     4,
		PCAComponents: 3,
		SampleSize:    200,
		Seed:          42,
	}
}

// syntheticCatalog builds events spread over three geographic clusters
// with depth-correlated magnitudes.
func syntheticCatalog(n int, seed int64) []dataset.Event {
	rng := rand.New(rand.NewSource(seed))
	centers := [][2]float64{{35, -118}, {61, -150}, {-20, -70}}

	events := make([]dataset.Event, n)
	for i := range events {
		c := centers[i%len(centers)]
		depth := rng.Float64() * 300
		events[i] = dataset.Event{
			Latitude:  c[0] + rng.NormFloat64(),
			Longitude: c[1] + rng.NormFloat64(),
			Depth:     depth,
			Mag:       3 + 0.005*depth + rng.NormFloat64()*0.3,
		}
	}
	return events
}

func TestRunnerRun(t *testing.T) {
	runner := NewRunner(testModelConfig(), nil)

	report, err := runner.Run(context.Background(), syntheticCatalog(300, 1))
	require.NoError(t, err)

	assert.Equal(t, 300, report.TotalRows)
	assert.Equal(t, 200, report.SampledRows, "sample capped at configured size")

	assert.Equal(t, 300, report.Simple.N, "regressions use the full dataset")
	assert.Greater(t, report.Simple.R2, 0.5)

	assert.Equal(t, 3, report.Clustering.K)
	require.Len(t, report.Clustering.ClusterMeans, 3)
	for _, means := range report.Clustering.ClusterMeans {
		assert.Len(t, means, len(FeatureNames))
	}

	assert.Len(t, report.Elbow, 4)
	assert.Equal(t, 3, report.PCA.Components)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestRunnerRunDeterministic(t *testing.T) {
	events := syntheticCatalog(300, 1)

	a, err := NewRunner(testModelConfig(), nil).Run(context.Background(), events)
	require.NoError(t, err)
	b, err := NewRunner(testModelConfig(), nil).Run(context.Background(), events)
	require.NoError(t, err)

	assert.Equal(t, a.Clustering.Labels, b.Clustering.Labels)
	assert.Equal(t, a.Clustering.Inertia, b.Clustering.Inertia)
	assert.Equal(t, a.PCA.ExplainedVariance, b.PCA.ExplainedVariance)
}

func TestRunnerRunEmptyCatalog(t *testing.T) {
	runner := NewRunner(testModelConfig(), nil)

	_, err := runner.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestWriteModelReport(t *testing.T) {
	runner := NewRunner(testModelConfig(), nil)
	report, err := runner.Run(context.Background(), syntheticCatalog(200, 2))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "models.txt")
	require.NoError(t, WriteReport(path, report))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "ANALYTICAL MODELS REPORT")
	assert.Contains(t, text, "depth")
	assert.Contains(t, text, "Silhouette")
}
