package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"quakecli/internal/dataset"
)

// AnalyzeTemporal computes the per-year, per-decade and per-month event
// distributions. Events without a timestamp are ignored; on the cleaned
// dataset there are none.
func AnalyzeTemporal(events []dataset.Event) TemporalStats {
	yearCounts := make(map[int]int)
	decadeCounts := make(map[int]int)
	var byMonth [12]int
	total := 0

	for _, e := range events {
		if !e.HasTime() {
			continue
		}
		yearCounts[e.Year]++
		decadeCounts[e.Decade]++
		if e.Month >= 1 && e.Month <= 12 {
			byMonth[e.Month-1]++
		}
		total++
	}

	ts := TemporalStats{ByMonth: byMonth}
	if total == 0 {
		return ts
	}

	years := make([]int, 0, len(yearCounts))
	for y := range yearCounts {
		years = append(years, y)
	}
	sort.Ints(years)
	ts.MinYear = years[0]
	ts.MaxYear = years[len(years)-1]

	perYear := make([]float64, 0, len(years))
	for _, y := range years {
		count := yearCounts[y]
		ts.ByYear = append(ts.ByYear, YearCount{Year: y, Count: count})
		perYear = append(perYear, float64(count))

		if ts.BusiestYear.Count == 0 || count > ts.BusiestYear.Count {
			ts.BusiestYear = YearCount{Year: y, Count: count}
		}
		if ts.QuietestYear.Count == 0 || count < ts.QuietestYear.Count {
			ts.QuietestYear = YearCount{Year: y, Count: count}
		}
	}

	sortedPerYear := make([]float64, len(perYear))
	copy(sortedPerYear, perYear)
	sort.Float64s(sortedPerYear)
	ts.MeanPerYear = stat.Mean(sortedPerYear, nil)
	ts.MedianPerYear = stat.Quantile(0.5, stat.LinInterp, sortedPerYear, nil)

	decades := make([]int, 0, len(decadeCounts))
	for d := range decadeCounts {
		decades = append(decades, d)
	}
	sort.Ints(decades)
	for _, d := range decades {
		ts.ByDecade = append(ts.ByDecade, DecadeCount{
			Decade:  d,
			Count:   decadeCounts[d],
			Percent: float64(decadeCounts[d]) / float64(total) * 100,
		})
	}

	ts.TrendFactor = trendFactor(ts.ByDecade)
	return ts
}

// trendFactor compares the mean event count of the newest three decades
// with that of the oldest three. Values above 1 indicate growth in
// recorded events, typically the expansion of the seismographic network.
func trendFactor(decades []DecadeCount) float64 {
	if len(decades) < 2 {
		return 0
	}

	n := 3
	if len(decades) < n {
		n = len(decades)
	}

	var oldSum, recentSum float64
	for i := 0; i < n; i++ {
		oldSum += float64(decades[i].Count)
		recentSum += float64(decades[len(decades)-n+i].Count)
	}
	if oldSum == 0 {
		return 0
	}
	return recentSum / oldSum
}
