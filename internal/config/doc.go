// Package config provides centralized configuration and path management for
// the earthquake dataset pipeline.
//
// Configuration is loaded from environment variables (QUAKE_ prefix) with an
// optional config.yaml overlay; environment values take precedence. The Paths
// type is the single source of truth for every file the pipeline reads or
// writes: raw input CSV, cleaned output CSV, report artifacts, and the chart
// workbook.
package config
