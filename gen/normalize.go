package gen

import "gonum.org/v1/gonum/floats"

// RateMode selects how the intensity curve is rescaled to the target
// request rate.
type RateMode string

const (
	// RateCapped uniformly scales all buckets so the busiest bucket's
	// rate lands exactly on the target, preserving relative shape.
	RateCapped RateMode = "capped"

	// RateFlat discards shape: every bucket is set to the count that
	// realizes the target rate exactly.
	RateFlat RateMode = "flat"
)

// Normalize rescales a curve so the realized request rate satisfies
// targetRate (requests per second). Counts may become fractional; the
// arrival generators own the conversion back to whole events. An
// all-zero curve is returned unchanged — a window with no recorded
// activity legitimately produces an empty schedule.
func Normalize(curve Curve, mode RateMode, targetRate float64) (Curve, error) {
	if targetRate <= 0 {
		return Curve{}, configErrorf("target_rate", "must be positive, got %g", targetRate)
	}

	out := curve.clone()
	switch mode {
	case RateCapped:
		maxRate := out.MaxRate()
		if maxRate == 0 {
			return out, nil
		}
		factor := targetRate / maxRate
		for i := range out.Buckets {
			out.Buckets[i].Count *= factor
		}
	case RateFlat:
		if out.Total() == 0 {
			return out, nil
		}
		for i := range out.Buckets {
			out.Buckets[i].Count = targetRate * out.Buckets[i].Span
		}
	default:
		return Curve{}, configErrorf("rate_mode", "unknown mode %q", mode)
	}
	return out, nil
}

// bucketCounts extracts the count column of a curve. Shared by the
// generators and the empirical distribution construction.
func bucketCounts(curve Curve) []float64 {
	counts := make([]float64, len(curve.Buckets))
	for i, b := range curve.Buckets {
		counts[i] = b.Count
	}
	return counts
}

// totalMass sums a weight vector.
func totalMass(weights []float64) float64 {
	return floats.Sum(weights)
}
