package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Describe computes descriptive statistics for one numeric variable.
// The input may be unsorted; NaN filtering is the caller's responsibility
// (the cleaned dataset carries no absent values).
func Describe(values []float64) DescriptiveStats {
	if len(values) == 0 {
		return DescriptiveStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean := stat.Mean(sorted, nil)
	std := stat.StdDev(sorted, nil)
	q1 := stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	q3 := stat.Quantile(0.75, stat.LinInterp, sorted, nil)

	s := DescriptiveStats{
		Count:  len(sorted),
		Mean:   mean,
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		StdDev: std,
		Min:    sorted[0],
		Q1:     q1,
		Q3:     q3,
		Max:    sorted[len(sorted)-1],
		IQR:    q3 - q1,
	}
	if mean != 0 {
		s.CV = std / mean * 100
	}
	return s
}
