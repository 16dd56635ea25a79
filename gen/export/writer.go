// Package export serializes generated schedules and function catalogs
// for external consumers: CSV for load drivers, JSON for the workload
// registry.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/traceforge/traceforge/gen"
	"github.com/traceforge/traceforge/gen/trace"
)

// scheduleRow is the JSON shape of one arrival event.
type scheduleRow struct {
	TimestampS float64 `json:"timestamp_s"`
	Function   string  `json:"function"`
}

// WriteScheduleCSV writes a schedule as CSV, one event per row with a
// header, timestamps ascending as produced by the generators.
func WriteScheduleCSV(w io.Writer, schedule gen.Schedule) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp_s", "function"}); err != nil {
		return fmt.Errorf("writing schedule header: %w", err)
	}
	for _, ev := range schedule {
		row := []string{
			strconv.FormatFloat(ev.Timestamp, 'f', 6, 64),
			ev.FunctionID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing schedule row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteScheduleJSON writes a schedule as a JSON array of event objects,
// the format expected by the workload-registry consumer.
func WriteScheduleJSON(w io.Writer, schedule gen.Schedule) error {
	rows := make([]scheduleRow, len(schedule))
	for i, ev := range schedule {
		rows[i] = scheduleRow{TimestampS: ev.Timestamp, Function: ev.FunctionID}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	return nil
}

// WriteCatalogJSON writes the function catalog as a JSON array for
// registry ingestion, preserving first-seen order.
func WriteCatalogJSON(w io.Writer, entries []trace.CatalogEntry) error {
	if entries == nil {
		entries = []trace.CatalogEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding catalog: %w", err)
	}
	return nil
}
