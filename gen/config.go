package gen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GenerationMode selects the arrival generator variant.
type GenerationMode string

const (
	// GenerationSpec is deterministic proportional reshaping: one whole
	// event per rounded bucket count, reproducible byte-for-byte.
	GenerationSpec GenerationMode = "spec"

	// GenerationSmirnov is stochastic inverse-transform sampling from
	// the curve's empirical arrival-time distribution.
	GenerationSmirnov GenerationMode = "smirnov"
)

// Config is the full parameter surface of one pipeline run.
// Loadable from YAML via LoadConfig; zero-valued optional fields receive
// defaults in ApplyDefaults.
type Config struct {
	TimeScaling     ScalingMode    `yaml:"time_scaling"`
	StartMinute     int            `yaml:"start_minute"`
	DurationMinutes int            `yaml:"duration_minutes"`
	TargetRate      float64        `yaml:"target_rate"`
	RateMode        RateMode       `yaml:"rate_mode"`
	GenerationMode  GenerationMode `yaml:"generation_mode"`
	Seed            *int64         `yaml:"seed,omitempty"`
	TotalRequests   int            `yaml:"total_requests,omitempty"`

	// Policy overrides the thumbnails window selection. Not expressible
	// in YAML; set programmatically.
	Policy WindowPolicy `yaml:"-"`
}

// LoadConfig reads a Config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyDefaults fills optional fields: capped rate normalization, the
// default Smirnov seed, and a Smirnov request budget matching the target
// rate sustained over the whole experiment.
func (c *Config) ApplyDefaults() {
	if c.RateMode == "" {
		c.RateMode = RateCapped
	}
	if c.Seed == nil {
		seed := DefaultSeed
		c.Seed = &seed
	}
	if c.TotalRequests == 0 && c.GenerationMode == GenerationSmirnov {
		c.TotalRequests = int(c.TargetRate * secondsPerBucket * float64(c.DurationMinutes))
	}
}

// Validate checks the parameter surface before any sampling work begins.
// Window bounds are checked against the trace by Scale, which knows the
// span; everything checkable without a trace is checked here.
func (c *Config) Validate() error {
	switch c.TimeScaling {
	case ScalingThumbnails, ScalingMinuteRange:
	default:
		return configErrorf("time_scaling_mode", "unknown mode %q", c.TimeScaling)
	}
	if c.TimeScaling == ScalingMinuteRange && c.StartMinute < 0 {
		return configErrorf("start_minute", "must be non-negative, got %d", c.StartMinute)
	}
	if c.DurationMinutes <= 0 {
		return configErrorf("duration_minutes", "must be positive, got %d", c.DurationMinutes)
	}
	if c.TargetRate <= 0 {
		return configErrorf("target_rate", "must be positive, got %g", c.TargetRate)
	}
	switch c.RateMode {
	case RateCapped, RateFlat:
	default:
		return configErrorf("rate_mode", "unknown mode %q", c.RateMode)
	}
	switch c.GenerationMode {
	case GenerationSpec, GenerationSmirnov:
	default:
		return configErrorf("generation_mode", "unknown mode %q", c.GenerationMode)
	}
	if c.GenerationMode == GenerationSmirnov && c.TotalRequests <= 0 {
		return configErrorf("total_requests", "must be positive for smirnov generation, got %d", c.TotalRequests)
	}
	return nil
}
