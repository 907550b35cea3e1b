package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteReport writes the analytical model results as plain text
func WriteReport(path string, report *ModelReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)
	thin := strings.Repeat("-", 80)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "ANALYTICAL MODELS REPORT - USGS EARTHQUAKE CATALOG")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Feature rows: %d (sampled: %d)\n\n", report.TotalRows, report.SampledRows)

	fmt.Fprintln(&b, "1. SIMPLE LINEAR REGRESSION (mag ~ depth)")
	fmt.Fprintln(&b, thin)
	writeRegression(&b, report.Simple)

	fmt.Fprintln(&b, "2. MULTIPLE LINEAR REGRESSION (mag ~ depth + latitude + longitude)")
	fmt.Fprintln(&b, thin)
	writeRegression(&b, report.Multiple)

	c := report.Clustering
	fmt.Fprintf(&b, "3. KMEANS CLUSTERING (k=%d)\n", c.K)
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "Silhouette score:        %.4f (higher is better)\n", c.Silhouette)
	fmt.Fprintf(&b, "Davies-Bouldin index:    %.4f (lower is better)\n", c.DaviesBouldin)
	fmt.Fprintf(&b, "Inertia:                 %.2f\n\n", c.Inertia)
	for i, means := range c.ClusterMeans {
		fmt.Fprintf(&b, "Cluster %d (n=%d):\n", i, c.Sizes[i])
		for j, name := range FeatureNames {
			fmt.Fprintf(&b, "  mean %-10s %10.2f\n", name+":", means[j])
		}
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "4. ELBOW SWEEP")
	fmt.Fprintln(&b, thin)
	for _, p := range report.Elbow {
		fmt.Fprintf(&b, "  k=%-3d inertia=%.2f\n", p.K, p.Inertia)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "5. PRINCIPAL COMPONENT ANALYSIS")
	fmt.Fprintln(&b, thin)
	for i, ratio := range report.PCA.ExplainedVariance {
		fmt.Fprintf(&b, "  PC%d: %6.2f%% (cumulative %6.2f%%)\n",
			i+1, ratio*100, report.PCA.Cumulative[i]*100)
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeRegression(b *strings.Builder, r RegressionResult) {
	fmt.Fprintln(b, "Coefficients:")
	for i, p := range r.Predictors {
		fmt.Fprintf(b, "  %-12s %12.6f\n", p+":", r.Coefficients[i])
	}
	fmt.Fprintf(b, "Intercept:               %.4f\n", r.Intercept)
	fmt.Fprintf(b, "R²:                      %.4f\n", r.R2)
	fmt.Fprintf(b, "RMSE:                    %.4f\n", r.RMSE)
	fmt.Fprintf(b, "MAE:                     %.4f\n", r.MAE)
	fmt.Fprintf(b, "Observations:            %d\n", r.N)
	fmt.Fprintf(b, "Equation: %s\n\n", r.Equation())
}
