package gen

import "github.com/traceforge/traceforge/gen/trace"

// WindowPolicy selects the representative source window that thumbnails
// scaling compresses onto the target duration. What makes a window
// "representative" is a policy decision, so it is an explicit interface
// rather than a hard-coded heuristic; callers may plug in their own.
type WindowPolicy interface {
	// SelectWindow returns the window's start minute and length for a
	// target duration. Length must be positive and the window must fit
	// inside the index's recorded span.
	SelectWindow(idx *trace.Index, durationMinutes int) (start, length int)
}

// FullSpanPolicy selects the entire recorded trace span. This is the
// default: the whole day's diurnal shape is compressed into the target
// duration, yielding a "thumbnail" of the full trace.
type FullSpanPolicy struct{}

func (FullSpanPolicy) SelectWindow(idx *trace.Index, _ int) (int, int) {
	return 0, idx.Span()
}

// PeakVolumePolicy selects the contiguous window of WindowMinutes with
// the highest total invocation volume, scanning by minute. Ties go to
// the earliest window. WindowMinutes values below the target duration
// are raised to it so the window is never stretched.
type PeakVolumePolicy struct {
	WindowMinutes int
}

func (p PeakVolumePolicy) SelectWindow(idx *trace.Index, durationMinutes int) (int, int) {
	length := p.WindowMinutes
	if length < durationMinutes {
		length = durationMinutes
	}
	span := idx.Span()
	if length >= span {
		return 0, span
	}

	// Sliding sum over minute totals.
	sum := 0
	for m := 0; m < length; m++ {
		sum += idx.MinuteTotal(m)
	}
	best, bestStart := sum, 0
	for start := 1; start+length <= span; start++ {
		sum += idx.MinuteTotal(start+length-1) - idx.MinuteTotal(start-1)
		if sum > best {
			best, bestStart = sum, start
		}
	}
	return bestStart, length
}
