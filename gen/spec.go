package gen

import "math"

// roundThreshold is the carry rounding split: fractional parts below it
// round down, everything else rounds up.
const roundThreshold = 0.35

// biasedRound rounds with the roundThreshold split instead of 0.5.
func biasedRound(x float64) int {
	floor := math.Floor(x)
	if x-floor < roundThreshold {
		return int(floor)
	}
	return int(math.Ceil(x))
}

// GenerateSpec deterministically converts a normalized intensity curve
// into an ordered arrival schedule. Each bucket emits a whole number of
// events derived from its (possibly fractional) count with the rounding
// remainder carried into the next bucket, so the emitted total stays
// within one event of the curve's fractional total. Timestamps are
// spaced uniformly across each bucket's span; function ids are
// apportioned against the bucket's mix by largest remainder, ties broken
// by first-seen trace order. Repeated calls on the same curve produce
// byte-identical schedules.
func GenerateSpec(curve Curve) (Schedule, error) {
	var schedule Schedule
	carry := 0.0
	for _, bucket := range curve.Buckets {
		want := bucket.Count + carry
		n := biasedRound(want)
		if n < 0 {
			n = 0
		}
		carry = want - float64(n)
		if n == 0 {
			continue
		}

		mix := bucket.Mix
		if len(mix) == 0 {
			mix = curve.WindowMix
		}
		if len(mix) == 0 {
			// Nothing to invoke: an all-zero window normalized in flat
			// mode stays empty rather than inventing functions.
			continue
		}

		functions := apportion(mix, n)
		step := bucket.Span / float64(n)
		for j := 0; j < n; j++ {
			schedule = append(schedule, ArrivalEvent{
				Timestamp:  bucket.Start + float64(j)*step,
				FunctionID: functions[j],
			})
		}
	}
	return schedule, nil
}

// apportion assigns n event slots across a weighted function mix using a
// deterministic weighted round-robin: each slot goes to the function with
// the highest accumulated credit, ties to the earlier mix entry. The
// resulting per-function totals match largest-remainder apportionment
// and the assignment interleaves functions within the bucket.
func apportion(mix []FunctionShare, n int) []string {
	total := 0.0
	for _, s := range mix {
		total += s.Weight
	}
	credits := make([]float64, len(mix))
	out := make([]string, n)
	for j := 0; j < n; j++ {
		best := 0
		for i := range mix {
			credits[i] += mix[i].Weight / total
			if credits[i] > credits[best] {
				best = i
			}
		}
		credits[best] -= 1
		out[j] = mix[best].FunctionID
	}
	return out
}
