package gen

// ArrivalEvent is one request arrival in the generated schedule:
// a timestamp in seconds from experiment start and the function to
// invoke at that instant.
type ArrivalEvent struct {
	Timestamp  float64
	FunctionID string
}

// Schedule is the externally visible artifact of the pipeline: an
// immutable event sequence sorted by ascending timestamp, ties in stable
// generation order. Persisting it is the writer's job (gen/export).
type Schedule []ArrivalEvent

// Sorted reports whether the schedule's timestamps are non-decreasing.
// Both generators guarantee this; the check exists for consumers that
// splice schedules together.
func (s Schedule) Sorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Timestamp < s[i-1].Timestamp {
			return false
		}
	}
	return true
}
