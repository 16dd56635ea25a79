package gen

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/traceforge/traceforge/gen/trace"
)

// ScalingMode selects how a source trace window is mapped onto the
// target experiment duration.
type ScalingMode string

const (
	// ScalingThumbnails compresses a representative window (chosen by a
	// WindowPolicy) onto the target duration, conserving total counts.
	ScalingThumbnails ScalingMode = "thumbnails"

	// ScalingMinuteRange takes an exact contiguous slice of trace
	// minutes starting at a caller-supplied minute, no resampling.
	ScalingMinuteRange ScalingMode = "minute_range"
)

// secondsPerBucket is the curve granularity: one bucket per target
// minute, matching the source trace's native resolution.
const secondsPerBucket = 60.0

// ScaleOptions parameterizes Scale.
type ScaleOptions struct {
	Mode            ScalingMode
	DurationMinutes int

	// StartMinute is the window's first source minute. Only consulted in
	// minute_range mode, where it is required.
	StartMinute int

	// Policy picks the representative window in thumbnails mode.
	// Nil means FullSpanPolicy.
	Policy WindowPolicy
}

// Scale maps a window of the trace onto the target duration, producing
// an intensity curve of contiguous one-minute buckets spanning exactly
// DurationMinutes*60 seconds. The curve's total equals the total
// invocations of the selected source window. An all-zero window is valid
// and yields an all-zero curve.
func Scale(idx *trace.Index, opts ScaleOptions) (Curve, error) {
	if opts.DurationMinutes <= 0 {
		return Curve{}, configErrorf("duration_minutes", "must be positive, got %d", opts.DurationMinutes)
	}

	switch opts.Mode {
	case ScalingMinuteRange:
		return scaleMinuteRange(idx, opts)
	case ScalingThumbnails:
		return scaleThumbnails(idx, opts)
	default:
		return Curve{}, configErrorf("time_scaling_mode", "unknown mode %q", opts.Mode)
	}
}

func scaleMinuteRange(idx *trace.Index, opts ScaleOptions) (Curve, error) {
	if opts.StartMinute < 0 {
		return Curve{}, configErrorf("start_minute", "must be non-negative, got %d", opts.StartMinute)
	}
	if opts.StartMinute+opts.DurationMinutes > idx.Span() {
		return Curve{}, configErrorf("start_minute",
			"window [%d, %d) exceeds trace span of %d minutes",
			opts.StartMinute, opts.StartMinute+opts.DurationMinutes, idx.Span())
	}

	buckets := make([]Bucket, opts.DurationMinutes)
	for i := range buckets {
		minute := opts.StartMinute + i
		counts := idx.MinuteCounts(minute)
		mix := make([]FunctionShare, 0, len(counts))
		for _, mc := range counts {
			mix = append(mix, FunctionShare{FunctionID: mc.FunctionID, Weight: float64(mc.Count)})
		}
		buckets[i] = Bucket{
			Start: float64(i) * secondsPerBucket,
			Span:  secondsPerBucket,
			Count: float64(idx.MinuteTotal(minute)),
			Mix:   mix,
		}
	}
	return Curve{
		Buckets:   buckets,
		WindowMix: rangeMix(idx, opts.StartMinute, opts.DurationMinutes),
	}, nil
}

func scaleThumbnails(idx *trace.Index, opts ScaleOptions) (Curve, error) {
	policy := opts.Policy
	if policy == nil {
		policy = FullSpanPolicy{}
	}
	wStart, wLength := policy.SelectWindow(idx, opts.DurationMinutes)
	if wLength <= 0 {
		return Curve{}, configErrorf("time_scaling_mode", "window policy selected an empty window (trace span %d minutes)", idx.Span())
	}
	if wStart < 0 || wStart+wLength > idx.Span() {
		return Curve{}, configErrorf("time_scaling_mode",
			"window policy selected [%d, %d) outside trace span of %d minutes",
			wStart, wStart+wLength, idx.Span())
	}
	logrus.Debugf("thumbnails: window [%d, %d) over %d target minutes", wStart, wStart+wLength, opts.DurationMinutes)

	// Count-conserving resampling: target bucket i covers the source
	// interval [i*ratio, (i+1)*ratio) in minutes, and each overlapping
	// source minute contributes its count weighted by the overlap
	// fraction. When wLength is a multiple of the duration this reduces
	// to plain minute grouping.
	ratio := float64(wLength) / float64(opts.DurationMinutes)
	orderIdx := functionOrder(idx)

	buckets := make([]Bucket, opts.DurationMinutes)
	for i := range buckets {
		lo := float64(i) * ratio
		hi := float64(i+1) * ratio
		var total float64
		weights := make(map[string]float64)
		for m := int(math.Floor(lo)); m < wLength && float64(m) < hi; m++ {
			overlap := math.Min(hi, float64(m+1)) - math.Max(lo, float64(m))
			if overlap <= 0 {
				continue
			}
			for _, mc := range idx.MinuteCounts(wStart + m) {
				w := float64(mc.Count) * overlap
				weights[mc.FunctionID] += w
				total += w
			}
		}
		buckets[i] = Bucket{
			Start: float64(i) * secondsPerBucket,
			Span:  secondsPerBucket,
			Count: total,
			Mix:   orderedMix(weights, orderIdx),
		}
	}
	return Curve{
		Buckets:   buckets,
		WindowMix: rangeMix(idx, wStart, wLength),
	}, nil
}

func rangeMix(idx *trace.Index, start, length int) []FunctionShare {
	counts := idx.RangeCounts(start, length)
	mix := make([]FunctionShare, 0, len(counts))
	for _, mc := range counts {
		mix = append(mix, FunctionShare{FunctionID: mc.FunctionID, Weight: float64(mc.Count)})
	}
	return mix
}

// functionOrder maps each function id to its first-seen position, the
// tie-break order used everywhere downstream.
func functionOrder(idx *trace.Index) map[string]int {
	order := make(map[string]int)
	for i, fn := range idx.Functions() {
		order[fn] = i
	}
	return order
}

func orderedMix(weights map[string]float64, order map[string]int) []FunctionShare {
	mix := make([]FunctionShare, 0, len(weights))
	for fn, w := range weights {
		if w > 0 {
			mix = append(mix, FunctionShare{FunctionID: fn, Weight: w})
		}
	}
	sort.Slice(mix, func(i, j int) bool {
		return order[mix[i].FunctionID] < order[mix[j].FunctionID]
	})
	return mix
}
