package models

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"quakecli/internal/config"
	"quakecli/internal/dataset"
)

// ModelReport bundles every analytical model result for one dataset
type ModelReport struct {
	Simple      RegressionResult `json:"simple_regression"`
	Multiple    RegressionResult `json:"multiple_regression"`
	Clustering  KMeansResult     `json:"clustering"`
	Elbow       []ElbowPoint     `json:"elbow"`
	PCA         PCAResult        `json:"pca"`
	SampledRows int              `json:"sampled_rows"`
	TotalRows   int              `json:"total_rows"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Runner orchestrates the analytical model stage
type Runner struct {
	cfg    config.ModelsConfig
	logger *slog.Logger
}

// NewRunner creates a model runner with the given configuration
func NewRunner(cfg config.ModelsConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Run fits every model against the cleaned dataset. Regressions use the
// full dataset; clustering and PCA work on a seeded sample of scaled
// features so repeated runs are reproducible.
func (r *Runner) Run(ctx context.Context, events []dataset.Event) (*ModelReport, error) {
	report := &ModelReport{GeneratedAt: time.Now()}

	r.logger.InfoContext(ctx, "starting analytical models",
		"events", len(events),
		"clusters", r.cfg.Clusters,
		"seed", r.cfg.Seed,
	)

	var err error
	if report.Simple, err = SimpleRegression(events); err != nil {
		return nil, fmt.Errorf("simple regression: %w", err)
	}
	r.logger.InfoContext(ctx, "simple regression fitted",
		"r2", report.Simple.R2,
		"rmse", report.Simple.RMSE,
	)

	if report.Multiple, err = MultipleRegression(events); err != nil {
		return nil, fmt.Errorf("multiple regression: %w", err)
	}
	r.logger.InfoContext(ctx, "multiple regression fitted",
		"r2", report.Multiple.R2,
		"rmse", report.Multiple.RMSE,
	)

	features := FeatureMatrix(events)
	if features == nil {
		return nil, fmt.Errorf("no complete feature rows for clustering")
	}
	total, _ := features.Dims()
	report.TotalRows = total

	rng := rand.New(rand.NewSource(int64(r.cfg.Seed)))
	sample := Sample(features, r.cfg.SampleSize, rng)
	sampled, _ := sample.Dims()
	report.SampledRows = sampled

	scaler := FitScaler(sample)
	scaled := scaler.Transform(sample)

	if report.Clustering, err = KMeans(scaled, r.cfg.Clusters, 10, 300, rng); err != nil {
		return nil, fmt.Errorf("kmeans clustering: %w", err)
	}
	report.Clustering.ClusterMeans = clusterMeans(sample, report.Clustering.Labels, r.cfg.Clusters)
	r.logger.InfoContext(ctx, "kmeans fitted",
		"k", report.Clustering.K,
		"silhouette", report.Clustering.Silhouette,
		"davies_bouldin", report.Clustering.DaviesBouldin,
	)

	report.Elbow = Elbow(scaled, r.cfg.MaxElbowK, 3, 100, rng)

	if report.PCA, err = PCA(scaled, r.cfg.PCAComponents); err != nil {
		return nil, fmt.Errorf("pca: %w", err)
	}
	r.logger.InfoContext(ctx, "pca fitted",
		"components", report.PCA.Components,
	)

	return report, nil
}

// clusterMeans computes per-cluster feature means in original units
func clusterMeans(sample *mat.Dense, labels []int, k int) [][]float64 {
	rows, cols := sample.Dims()
	sums := make([][]float64, k)
	counts := make([]int, k)
	for c := range sums {
		sums[c] = make([]float64, cols)
	}
	for i := 0; i < rows; i++ {
		c := labels[i]
		counts[c]++
		for j := 0; j < cols; j++ {
			sums[c][j] += sample.At(i, j)
		}
	}
	for c := 0; c < k; c++ {
		if counts[c] == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			sums[c][j] /= float64(counts[c])
		}
	}
	return sums
}
