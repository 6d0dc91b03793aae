// Package forecast implements the weekly projection engine: forecast
// generation, actuals reconciliation, aggregate totals, variance analysis,
// and scenario comparison. Every function is pure and deterministic over
// immutable inputs; failures come back as typed error values, never panics.
package forecast

import "fmt"

// ConfigError reports a plan that cannot produce a forecast at all
// (non-positive horizon, unknown growth model, malformed roster or cost
// items). It surfaces once, when the plan is saved, not on every read.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("plan config %s: %s", e.Field, e.Reason)
}

// ValidationError reports inputs that do not fit together, such as an
// actual record outside the forecast horizon or scenario series of
// different lengths.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}
