package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"quakecli/internal/dataset"
)

// AnalyzeCorrelation computes the Pearson and Spearman correlations between
// magnitude and depth, with a two-sided t-test p-value for the Pearson
// coefficient.
func AnalyzeCorrelation(events []dataset.Event) CorrelationStats {
	mags := make([]float64, 0, len(events))
	depths := make([]float64, 0, len(events))
	for _, e := range events {
		if e.HasMag() && e.HasDepth() {
			mags = append(mags, e.Mag)
			depths = append(depths, e.Depth)
		}
	}

	cs := CorrelationStats{SampleSize: len(mags)}
	if len(mags) < 3 {
		return cs
	}

	cs.Pearson = stat.Correlation(mags, depths, nil)
	cs.PearsonPValue = correlationPValue(cs.Pearson, len(mags))
	cs.Spearman = stat.Correlation(ranks(mags), ranks(depths), nil)

	switch abs := math.Abs(cs.Pearson); {
	case abs < 0.3:
		cs.Strength = "weak"
	case abs < 0.7:
		cs.Strength = "moderate"
	default:
		cs.Strength = "strong"
	}
	if cs.Pearson >= 0 {
		cs.Direction = "positive"
	} else {
		cs.Direction = "negative"
	}
	cs.Significant = cs.PearsonPValue < 0.05

	return cs
}

// correlationPValue computes the two-sided p-value for a Pearson
// correlation coefficient via the t statistic with n-2 degrees of freedom.
func correlationPValue(r float64, n int) float64 {
	if n < 3 {
		return 1
	}
	denom := 1 - r*r
	if denom <= 0 {
		return 0
	}
	t := r * math.Sqrt(float64(n-2)/denom)
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	return 2 * dist.CDF(-math.Abs(t))
}

// ranks converts values to their fractional ranks, averaging ties, for the
// Spearman rank correlation.
func ranks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// Average rank for the tie group spanning positions i..j
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avg
		}
		i = j + 1
	}
	return out
}
