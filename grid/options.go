// SPDX-License-Identifier: MIT

// Package grid: functional configuration for New.
// Exactly one value source is effective: the last of WithGenerator /
// WithGeneratingValues wins. Constructors panic on nil arguments
// (programmer error); data problems are reported by New.

package grid

// DefaultGenerator is used when no value source is configured.
var DefaultGenerator Generator = LejaChebyshevLobatto

const (
	panicNilGenerator = "grid: WithGenerator(nil)"
	panicNilValues    = "grid: WithGeneratingValues(nil)"
)

// Option configures New.
type Option func(*options)

type options struct {
	gen    Generator   // used when explicit == nil
	values [][]float64 // explicit per-dimension values (copied)
}

// WithGenerator applies the same generator to every dimension.
func WithGenerator(g Generator) Option {
	if g == nil {
		panic(panicNilGenerator)
	}

	return func(o *options) {
		o.gen = g
		o.values = nil
	}
}

// WithGeneratingValues sets explicit values, one list per dimension. Lists
// longer than needed are truncated to MaxExponent()+1.
func WithGeneratingValues(values [][]float64) Option {
	if values == nil {
		panic(panicNilValues)
	}
	cp := make([][]float64, len(values))
	for i, v := range values {
		cp[i] = append([]float64(nil), v...)
	}

	return func(o *options) {
		o.values = cp
		o.gen = nil
	}
}

func gatherOptions(opts ...Option) options {
	o := options{gen: DefaultGenerator}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
