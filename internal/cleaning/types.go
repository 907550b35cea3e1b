package cleaning

import (
	"time"
)

// State identifies the pipeline driver's position in the strictly linear
// cleaning sequence.
type State int

const (
	// StateLoaded is the initial state after the raw catalog is in memory
	StateLoaded State = iota
	// StateTimestampsNormalized follows timestamp coercion and derivation
	StateTimestampsNormalized
	// StateDeduplicated follows duplicate removal
	StateDeduplicated
	// StateCompletenessFiltered follows the critical-field filter
	StateCompletenessFiltered
	// StateRangeValidated follows range validation
	StateRangeValidated
	// StateExported is the terminal state after the clean CSV is written
	StateExported
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateTimestampsNormalized:
		return "timestamps_normalized"
	case StateDeduplicated:
		return "deduplicated"
	case StateCompletenessFiltered:
		return "completeness_filtered"
	case StateRangeValidated:
		return "range_validated"
	case StateExported:
		return "exported"
	default:
		return "unknown"
	}
}

// TimestampSummary reports the outcome of timestamp normalization
type TimestampSummary struct {
	Total     int     `json:"total"`
	WithTime  int     `json:"with_time"`
	Fraction  float64 `json:"fraction"`
	MinYear   int     `json:"min_year"`
	MaxYear   int     `json:"max_year"`
}

// DedupSummary reports the outcome of duplicate removal
type DedupSummary struct {
	Before             int `json:"before"`
	After              int `json:"after"`
	RemovedByID        int `json:"removed_by_id"`
	RemovedByComposite int `json:"removed_by_composite"`
}

// Removed returns the total number of rows dropped by deduplication
func (d DedupSummary) Removed() int {
	return d.RemovedByID + d.RemovedByComposite
}

// FieldMissing reports missing-value counts for one critical field,
// observed immediately before the completeness drop.
type FieldMissing struct {
	Field   string  `json:"field"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// CompletenessSummary reports the outcome of the critical-field filter
type CompletenessSummary struct {
	Before  int            `json:"before"`
	After   int            `json:"after"`
	Missing []FieldMissing `json:"missing"`
}

// Removed returns the number of rows dropped by the completeness filter
func (c CompletenessSummary) Removed() int {
	return c.Before - c.After
}

// RangeSummary reports the outcome of range validation. A row failing more
// than one predicate is counted only once, in the first category it failed
// in application order (magnitude, then depth, then coordinates).
type RangeSummary struct {
	Before        int `json:"before"`
	After         int `json:"after"`
	RemovedMag    int `json:"removed_mag"`
	RemovedDepth  int `json:"removed_depth"`
	RemovedCoords int `json:"removed_coords"`
}

// Removed returns the total number of rows dropped by range validation
func (r RangeSummary) Removed() int {
	return r.RemovedMag + r.RemovedDepth + r.RemovedCoords
}

// Summary is the structured result of a full cleaning run. Every filtering
// decision is surfaced here instead of being printed mid-computation, so
// callers and tests can audit how much data was discarded and why.
type Summary struct {
	OriginalCount int `json:"original_count"`
	FinalCount    int `json:"final_count"`

	Timestamps   TimestampSummary    `json:"timestamps"`
	Dedup        DedupSummary        `json:"dedup"`
	Completeness CompletenessSummary `json:"completeness"`
	Ranges       RangeSummary        `json:"ranges"`

	// Final dataset shape, for the report artifact
	MinYear      int         `json:"min_year"`
	MaxYear      int         `json:"max_year"`
	DecadeCounts map[int]int `json:"decade_counts"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// RetentionPercent returns the percentage of original rows that survived
func (s *Summary) RetentionPercent() float64 {
	if s.OriginalCount == 0 {
		return 0
	}
	return float64(s.FinalCount) / float64(s.OriginalCount) * 100
}
