// Package analysis computes descriptive statistics over the cleaned
// earthquake dataset: central tendency and dispersion for magnitude and
// depth, temporal and geographic distributions, the magnitude-depth
// correlation, and a ranking of extreme events. Results are bundled into a
// Report and rendered as a plain-text artifact for human consumption.
package analysis
