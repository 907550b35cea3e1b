package analysis

import (
	"sort"
	"strings"

	"quakecli/internal/dataset"
)

// ExtractRegion derives a coarse region name from the free-text place
// description. Typical catalog entries read "13km ESE of Volcano, Hawaii":
// the text after the final comma is the region. Entries without a comma
// fall back to the last word, and empty descriptions map to "Unknown".
func ExtractRegion(place string) string {
	place = strings.TrimSpace(place)
	if place == "" {
		return "Unknown"
	}

	if idx := strings.LastIndex(place, ","); idx >= 0 {
		if region := strings.TrimSpace(place[idx+1:]); region != "" {
			return region
		}
		return "Unknown"
	}

	words := strings.Fields(place)
	return words[len(words)-1]
}

// AnalyzeGeographic counts events per extracted region and ranks the topN
// most active ones.
func AnalyzeGeographic(events []dataset.Event, topN int) GeographicStats {
	counts := make(map[string]int)
	for _, e := range events {
		counts[ExtractRegion(e.Place)]++
	}

	regions := make([]RegionCount, 0, len(counts))
	for region, count := range counts {
		regions = append(regions, RegionCount{Region: region, Count: count})
	}
	// Rank by count descending, name ascending for a stable order
	sort.Slice(regions, func(i, j int) bool {
		if regions[i].Count != regions[j].Count {
			return regions[i].Count > regions[j].Count
		}
		return regions[i].Region < regions[j].Region
	})

	gs := GeographicStats{DistinctRegions: len(regions)}
	if topN > len(regions) {
		topN = len(regions)
	}

	total := len(events)
	topTotal := 0
	for i := 0; i < topN; i++ {
		rc := regions[i]
		if total > 0 {
			rc.Percent = float64(rc.Count) / float64(total) * 100
		}
		gs.TopRegions = append(gs.TopRegions, rc)
		topTotal += rc.Count
	}
	if total > 0 {
		gs.TopCoverage = float64(topTotal) / float64(total) * 100
	}

	return gs
}
