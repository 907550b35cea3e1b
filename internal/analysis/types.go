package analysis

import (
	"time"
)

// DescriptiveStats holds the central-tendency and dispersion measures for
// one numeric variable.
type DescriptiveStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	IQR    float64 `json:"iqr"`
	CV     float64 `json:"cv"` // coefficient of variation, percent
}

// YearCount is the number of events observed in one calendar year
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// DecadeCount is the number of events observed in one decade
type DecadeCount struct {
	Decade  int     `json:"decade"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// TemporalStats describes the distribution of events over time
type TemporalStats struct {
	MinYear       int           `json:"min_year"`
	MaxYear       int           `json:"max_year"`
	MeanPerYear   float64       `json:"mean_per_year"`
	MedianPerYear float64       `json:"median_per_year"`
	BusiestYear   YearCount     `json:"busiest_year"`
	QuietestYear  YearCount     `json:"quietest_year"`
	ByYear        []YearCount   `json:"by_year"`
	ByDecade      []DecadeCount `json:"by_decade"`
	ByMonth       [12]int       `json:"by_month"`
	// TrendFactor compares the mean count of the last three decades with
	// the first three; zero when fewer than two decades are covered.
	TrendFactor float64 `json:"trend_factor"`
}

// RegionCount is the number of events attributed to one extracted region
type RegionCount struct {
	Region  string  `json:"region"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// GeographicStats describes the distribution of events by region
type GeographicStats struct {
	TopRegions      []RegionCount `json:"top_regions"`
	TopCoverage     float64       `json:"top_coverage"` // percent of all events in TopRegions
	DistinctRegions int           `json:"distinct_regions"`
}

// CorrelationStats holds the magnitude-depth correlation results
type CorrelationStats struct {
	Pearson         float64 `json:"pearson"`
	PearsonPValue   float64 `json:"pearson_p_value"`
	Spearman        float64 `json:"spearman"`
	Strength        string  `json:"strength"`  // weak, moderate, strong
	Direction       string  `json:"direction"` // positive, negative
	Significant     bool    `json:"significant"`
	SampleSize      int     `json:"sample_size"`
}

// ExtremeEvent is one entry of the highest-magnitude ranking
type ExtremeEvent struct {
	Rank      int       `json:"rank"`
	Mag       float64   `json:"mag"`
	Depth     float64   `json:"depth"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Place     string    `json:"place"`
	Time      time.Time `json:"time"`
}

// ExtremeStats holds the extreme-event ranking and high-magnitude counts
type ExtremeStats struct {
	TopEvents      []ExtremeEvent `json:"top_events"`
	HighMagCount   int            `json:"high_mag_count"`
	HighMagPercent float64        `json:"high_mag_percent"`
	Threshold      float64        `json:"threshold"`
}

// Report bundles every analysis result for one dataset
type Report struct {
	TotalEvents int               `json:"total_events"`
	Magnitude   DescriptiveStats  `json:"magnitude"`
	Depth       DescriptiveStats  `json:"depth"`
	Temporal    TemporalStats     `json:"temporal"`
	Geographic  GeographicStats   `json:"geographic"`
	Correlation CorrelationStats  `json:"correlation"`
	Extremes    ExtremeStats      `json:"extremes"`
	GeneratedAt time.Time         `json:"generated_at"`
}
