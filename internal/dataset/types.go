package dataset

import (
	"math"
	"time"
)

// Event represents a single seismic event record from the USGS catalog.
// Missing numeric fields are NaN; a missing or unparseable timestamp is the
// zero time.Time. Derived temporal fields are only meaningful when HasTime
// reports true.
type Event struct {
	ID        string
	Time      time.Time
	Latitude  float64
	Longitude float64
	Depth     float64
	Mag       float64
	MagType   string
	Net       string
	Type      string
	Place     string

	// Derived from Time by the cleaning pipeline
	Year   int
	Decade int
	Month  int
}

// HasTime reports whether the event carries a valid timestamp
func (e Event) HasTime() bool {
	return !e.Time.IsZero()
}

// HasMag reports whether the magnitude field is present
func (e Event) HasMag() bool {
	return !math.IsNaN(e.Mag)
}

// HasDepth reports whether the depth field is present
func (e Event) HasDepth() bool {
	return !math.IsNaN(e.Depth)
}

// HasLatitude reports whether the latitude field is present
func (e Event) HasLatitude() bool {
	return !math.IsNaN(e.Latitude)
}

// HasLongitude reports whether the longitude field is present
func (e Event) HasLongitude() bool {
	return !math.IsNaN(e.Longitude)
}

// HasCoordinates reports whether both coordinate fields are present
func (e Event) HasCoordinates() bool {
	return e.HasLatitude() && e.HasLongitude()
}

// Complete reports whether all critical fields are present:
// magnitude, depth, latitude, longitude and time.
func (e Event) Complete() bool {
	return e.HasMag() && e.HasDepth() && e.HasCoordinates() && e.HasTime()
}

// Headers returns the CSV column headers for exported events, the original
// input columns plus the derived temporal columns.
func Headers() []string {
	return []string{
		"id", "time", "latitude", "longitude", "depth", "mag",
		"magType", "net", "type", "place",
		"year", "decade", "month",
	}
}
