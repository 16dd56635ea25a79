package gen

import (
	"github.com/sirupsen/logrus"

	"github.com/traceforge/traceforge/gen/trace"
)

// Generate runs the whole pipeline for one configuration: scale the
// trace window onto the target duration, normalize to the target rate,
// and emit the arrival schedule with the configured generator. The index
// is read-only throughout, so concurrent Generate calls over the same
// index (different seeds, say) are safe.
func Generate(idx *trace.Index, cfg Config) (Schedule, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	curve, err := Scale(idx, ScaleOptions{
		Mode:            cfg.TimeScaling,
		DurationMinutes: cfg.DurationMinutes,
		StartMinute:     cfg.StartMinute,
		Policy:          cfg.Policy,
	})
	if err != nil {
		return nil, err
	}
	logrus.Debugf("scaled curve: %d buckets, %.0f total events, %.3f peak rps",
		len(curve.Buckets), curve.Total(), curve.MaxRate())

	normalized, err := Normalize(curve, cfg.RateMode, cfg.TargetRate)
	if err != nil {
		return nil, err
	}

	var schedule Schedule
	switch cfg.GenerationMode {
	case GenerationSpec:
		schedule, err = GenerateSpec(normalized)
	case GenerationSmirnov:
		schedule, err = GenerateSmirnov(normalized, cfg.TotalRequests, *cfg.Seed)
	}
	if err != nil {
		return nil, err
	}

	logrus.Infof("generated %d arrival events over %.0fs (%s mode)",
		len(schedule), normalized.Duration(), cfg.GenerationMode)
	return schedule, nil
}
