package gen

import "gonum.org/v1/gonum/floats"

// FunctionShare is one function's contribution to a bucket's invocation
// mix. Weights are relative; generators divide by the bucket's total.
type FunctionShare struct {
	FunctionID string
	Weight     float64
}

// Bucket is one time slot of an intensity curve: an expected event count
// over [Start, Start+Span) seconds of the experiment, plus the function
// mix the count was derived from. Mix order is first-seen trace order.
type Bucket struct {
	Start float64
	Span  float64
	Count float64
	Mix   []FunctionShare
}

// Curve is a contiguous, chronologically ordered sequence of buckets
// covering exactly the target experiment duration, together with the
// window-wide function mix. The same type carries both raw (scaled) and
// normalized intensities; Normalize returns a fresh value.
type Curve struct {
	Buckets []Bucket

	// WindowMix aggregates the function mix over the whole source
	// window. Generators fall back to it when a bucket's own mix is
	// empty (a zero-activity source minute inflated by flat-rate
	// normalization).
	WindowMix []FunctionShare
}

// Duration returns the curve's total span in seconds.
func (c Curve) Duration() float64 {
	var total float64
	for _, b := range c.Buckets {
		total += b.Span
	}
	return total
}

// Total returns the sum of bucket counts.
func (c Curve) Total() float64 {
	counts := make([]float64, len(c.Buckets))
	for i, b := range c.Buckets {
		counts[i] = b.Count
	}
	return floats.Sum(counts)
}

// MaxRate returns the highest per-bucket rate in events per second.
// Zero for an all-zero curve.
func (c Curve) MaxRate() float64 {
	var max float64
	for _, b := range c.Buckets {
		if b.Span <= 0 {
			continue
		}
		if r := b.Count / b.Span; r > max {
			max = r
		}
	}
	return max
}

// clone deep-copies the curve so normalization never aliases its input.
func (c Curve) clone() Curve {
	out := Curve{
		Buckets:   make([]Bucket, len(c.Buckets)),
		WindowMix: cloneMix(c.WindowMix),
	}
	for i, b := range c.Buckets {
		out.Buckets[i] = Bucket{Start: b.Start, Span: b.Span, Count: b.Count, Mix: cloneMix(b.Mix)}
	}
	return out
}

func cloneMix(mix []FunctionShare) []FunctionShare {
	if mix == nil {
		return nil
	}
	out := make([]FunctionShare, len(mix))
	copy(out, mix)
	return out
}
