// Package trace holds the immutable in-memory representation of a
// serverless invocation trace: per-minute invocation counts keyed by
// function identifier. This package has no dependencies on gen/ — it
// stores pure data types and answers read-only queries against them.
package trace

// Record is a single trace observation: how many times a function was
// invoked during one minute of the recorded span. Minutes are zero-based
// offsets from the start of the trace. A function with no Record for a
// minute had zero invocations that minute.
type Record struct {
	FunctionID string
	Minute     int
	Count      int
}

// MinuteCount pairs a function with its invocation count inside some
// minute or minute range. Slices of MinuteCount returned by Index queries
// are always in first-seen trace order, so iteration order is stable
// across runs.
type MinuteCount struct {
	FunctionID string
	Count      int
}

// CatalogEntry describes one distinct function for registry consumption.
// AvgDurationMs is zero when the trace carried no duration metadata for
// the function.
type CatalogEntry struct {
	FunctionID       string  `json:"function"`
	TotalInvocations int     `json:"total_invocations"`
	AvgDurationMs    float64 `json:"avg_duration_ms,omitempty"`
}
