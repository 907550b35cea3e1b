package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// timeLayouts lists the timestamp formats accepted in the raw catalog.
// The USGS export mixes ISO-8601 variants with and without sub-second
// precision and zone designators.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// requiredColumns are the input columns that must appear in the header row
var requiredColumns = []string{
	"id", "time", "latitude", "longitude", "depth", "mag",
	"magType", "net", "type", "place",
}

// LoadCSV reads the raw earthquake catalog from a headered CSV file.
// Field-level problems never fail the load: unparseable timestamps become
// the zero time and unparseable numerics become NaN, so downstream cleaning
// stages can account for them. A missing file or malformed header is fatal.
func LoadCSV(ctx context.Context, path string) ([]Event, error) {
	logger := slog.Default()

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var events []Event
	line := 1
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during load: %w", ctx.Err())
		default:
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed CSV row",
				"line", line,
				"error", err,
			)
			continue
		}

		events = append(events, parseEvent(record, cols))
	}

	logger.InfoContext(ctx, "raw catalog loaded",
		"path", path,
		"records", len(events),
	)

	return events, nil
}

// columnIndex maps column names to their position in the header row
type columnIndex map[string]int

func indexColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("CSV header missing required columns: %s", strings.Join(missing, ", "))
	}

	return cols, nil
}

// parseEvent converts a raw CSV row into an Event with coerce-to-absent
// semantics for every field. The derived temporal columns are optional;
// cleaned catalogs carry them, raw catalogs do not.
func parseEvent(record []string, cols columnIndex) Event {
	e := Event{
		ID:        field(record, cols, "id"),
		Time:      ParseTimestamp(field(record, cols, "time")),
		Latitude:  parseFloat(field(record, cols, "latitude")),
		Longitude: parseFloat(field(record, cols, "longitude")),
		Depth:     parseFloat(field(record, cols, "depth")),
		Mag:       parseFloat(field(record, cols, "mag")),
		MagType:   field(record, cols, "magType"),
		Net:       field(record, cols, "net"),
		Type:      field(record, cols, "type"),
		Place:     field(record, cols, "place"),
	}

	if v, err := strconv.Atoi(field(record, cols, "year")); err == nil {
		e.Year = v
	}
	if v, err := strconv.Atoi(field(record, cols, "decade")); err == nil {
		e.Decade = v
	}
	if v, err := strconv.Atoi(field(record, cols, "month")); err == nil {
		e.Month = v
	}

	return e
}

func field(record []string, cols columnIndex, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// ParseTimestamp parses a raw timestamp string against the accepted layouts.
// Returns the zero time when no layout matches.
func ParseTimestamp(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseFloat(raw string) float64 {
	if raw == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
