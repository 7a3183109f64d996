// SPDX-License-Identifier: MIT

// Package operator: functional configuration for Registry.

package operator

import (
	"math"

	"github.com/katalvlaran/polybasis/matrix"
)

// DefaultConditionLimit bounds the LU condition estimate of operators
// obtained by inversion (RegisterInverse).
const DefaultConditionLimit = matrix.DefaultConditionLimit

const panicConditionLimitInvalid = "operator: WithConditionLimit: limit must be finite and >= 1"

// Option configures a Registry.
type Option func(*options)

type options struct {
	condLimit float64 // >= 1
}

// WithConditionLimit sets the condition ceiling for inverted builders.
// Panics if limit is NaN, ±Inf or < 1.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 1 {
		panic(panicConditionLimitInvalid)
	}

	return func(o *options) { o.condLimit = limit }
}

func gatherOptions(opts ...Option) options {
	o := options{condLimit: DefaultConditionLimit}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
