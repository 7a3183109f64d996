// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Options never change loop orders; they only tune acceptance thresholds.
package matrix

import "math"

// Numeric policy defaults (single source of truth).
const (
	// DefaultConditionLimit is the largest LU condition-number estimate that
	// Inverse accepts before reporting ErrIllConditioned. Beyond ~1e12 a
	// float64 inverse keeps fewer than four significant digits.
	DefaultConditionLimit = 1e12
)

const panicConditionLimitInvalid = "matrix: WithConditionLimit: limit must be finite and >= 1"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	conditionLimit float64 // >= 1; DefaultConditionLimit
}

// WithConditionLimit sets the condition-number ceiling used by Inverse.
// Panics if limit is NaN, ±Inf or < 1 (programmer error).
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 1 {
		panic(panicConditionLimitInvalid)
	}

	return func(o *Options) {
		o.conditionLimit = limit
	}
}

// gatherOptions resolves defaults and applies opts in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{conditionLimit: DefaultConditionLimit}
	for _, fn := range opts {
		if fn != nil { // tolerate nil entries from conditional option slices
			fn(&o)
		}
	}

	return o
}
