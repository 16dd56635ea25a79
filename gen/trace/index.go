package trace

// Index is the queryable form of a loaded trace. It is built once from a
// record slice and never mutated afterwards; every downstream stage takes
// it as an explicit read-only argument, so concurrent pipeline runs over
// the same Index are safe.
type Index struct {
	span      int
	order     []string
	counts    map[string]map[int]int
	totals    map[int]int
	funcTotal map[string]int
	durations map[string]float64
}

// NewIndex builds an Index from records. Duplicate (function, minute)
// records are summed. Records with non-positive counts contribute nothing
// but still register the function in first-seen order.
func NewIndex(records []Record) *Index {
	idx := &Index{
		counts:    make(map[string]map[int]int),
		totals:    make(map[int]int),
		funcTotal: make(map[string]int),
	}
	for _, rec := range records {
		if _, seen := idx.counts[rec.FunctionID]; !seen {
			idx.counts[rec.FunctionID] = make(map[int]int)
			idx.order = append(idx.order, rec.FunctionID)
		}
		if rec.Minute+1 > idx.span {
			idx.span = rec.Minute + 1
		}
		if rec.Count <= 0 {
			continue
		}
		idx.counts[rec.FunctionID][rec.Minute] += rec.Count
		idx.totals[rec.Minute] += rec.Count
		idx.funcTotal[rec.FunctionID] += rec.Count
	}
	return idx
}

// SetDurations attaches per-function average duration metadata (ms),
// surfaced through Catalog. Must be called before the Index is shared;
// the Index is read-only once the pipeline starts.
func (x *Index) SetDurations(durations map[string]float64) {
	x.durations = durations
}

// Span returns the recorded trace length in minutes: one past the highest
// minute offset seen in any record.
func (x *Index) Span() int {
	return x.span
}

// Functions returns the distinct function identifiers in first-seen order.
// The returned slice is a copy.
func (x *Index) Functions() []string {
	out := make([]string, len(x.order))
	copy(out, x.order)
	return out
}

// Count returns the invocation count for a function at a minute offset.
// Minutes outside the recorded span, or with no record, count as zero.
func (x *Index) Count(functionID string, minute int) int {
	return x.counts[functionID][minute]
}

// MinuteTotal returns the total invocations across all functions at one
// minute offset.
func (x *Index) MinuteTotal(minute int) int {
	return x.totals[minute]
}

// MinuteCounts returns the non-zero per-function counts at one minute
// offset, in first-seen order.
func (x *Index) MinuteCounts(minute int) []MinuteCount {
	var out []MinuteCount
	for _, fn := range x.order {
		if c := x.counts[fn][minute]; c > 0 {
			out = append(out, MinuteCount{FunctionID: fn, Count: c})
		}
	}
	return out
}

// RangeCounts aggregates per-function counts over the half-open minute
// range [start, start+length), in first-seen order. Functions with zero
// invocations in the range are omitted.
func (x *Index) RangeCounts(start, length int) []MinuteCount {
	var out []MinuteCount
	for _, fn := range x.order {
		total := 0
		perMinute := x.counts[fn]
		for m := start; m < start+length; m++ {
			total += perMinute[m]
		}
		if total > 0 {
			out = append(out, MinuteCount{FunctionID: fn, Count: total})
		}
	}
	return out
}

// TotalInvocations returns a function's invocation count summed over the
// whole trace.
func (x *Index) TotalInvocations(functionID string) int {
	return x.funcTotal[functionID]
}

// Catalog projects the Index into one CatalogEntry per distinct function,
// in first-seen order. The projection is derived on demand and never
// cached or mutated.
func (x *Index) Catalog() []CatalogEntry {
	entries := make([]CatalogEntry, 0, len(x.order))
	for _, fn := range x.order {
		entries = append(entries, CatalogEntry{
			FunctionID:       fn,
			TotalInvocations: x.funcTotal[fn],
			AvgDurationMs:    x.durations[fn],
		})
	}
	return entries
}
