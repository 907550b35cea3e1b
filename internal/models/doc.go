// Package models fits simple analytical models to the cleaned earthquake
// dataset: linear regression of magnitude on depth and coordinates, k-means
// clustering over scaled features with silhouette and Davies-Bouldin
// quality metrics, an inertia elbow sweep, and principal component
// analysis. All randomized steps are driven by a configured seed so runs
// are reproducible.
package models
