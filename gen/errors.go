package gen

import "fmt"

// ConfigError reports an invalid or out-of-range generation parameter.
// It is always surfaced before any sampling work begins and is never
// retried: the same inputs deterministically produce the same failure.
type ConfigError struct {
	// Field names the offending parameter.
	Field string

	// Message is a human-readable description of the violation.
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DegenerateDistributionError reports an attempt to inverse-transform
// sample from an intensity curve with zero total mass. The caller may
// fall back to Spec mode or widen the source window; the generator never
// does either automatically.
type DegenerateDistributionError struct {
	// Buckets is the number of (all-zero) buckets in the rejected curve.
	Buckets int
}

// Error implements the error interface.
func (e *DegenerateDistributionError) Error() string {
	return fmt.Sprintf("degenerate distribution: all %d intensity buckets are zero", e.Buckets)
}
