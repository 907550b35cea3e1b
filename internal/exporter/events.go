package exporter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"quakecli/internal/dataset"
)

// eventTimeLayout is the timestamp format used in exported CSVs
const eventTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// WriteEvents exports the cleaned dataset to a CSV file with a header row,
// streaming one record at a time to keep memory flat on large catalogs.
func (w *CSVWriter) WriteEvents(path string, events []dataset.Event) error {
	stream, err := w.CreateStreamWriter(path, dataset.Headers())
	if err != nil {
		return fmt.Errorf("create event stream writer: %w", err)
	}

	for i, e := range events {
		if err := stream.WriteRecord(eventRecord(e)); err != nil {
			stream.Close()
			return fmt.Errorf("write event %d: %w", i, err)
		}
	}

	if err := stream.Close(); err != nil {
		return fmt.Errorf("close event stream writer: %w", err)
	}
	return nil
}

// eventRecord converts an Event to its CSV row representation.
// Absent values render as empty cells.
func eventRecord(e dataset.Event) []string {
	return []string{
		e.ID,
		formatTime(e.Time),
		formatFloat(e.Latitude),
		formatFloat(e.Longitude),
		formatFloat(e.Depth),
		formatFloat(e.Mag),
		e.MagType,
		e.Net,
		e.Type,
		e.Place,
		formatDerived(e, e.Year),
		formatDerived(e, e.Decade),
		formatDerived(e, e.Month),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(eventTimeLayout)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatDerived(e dataset.Event, v int) string {
	if !e.HasTime() {
		return ""
	}
	return strconv.Itoa(v)
}
