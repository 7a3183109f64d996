// SPDX-License-Identifier: MIT

// Package operator - builder combinators.

package operator

import (
	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/matrix"
)

const (
	opComposeFunc = "Compose"
	opInvertFunc  = "Invert"
)

// Compose returns the builder of outer · inner: inner runs first. Both are
// built on the same grid.
func Compose(outer, inner BuildFunc) BuildFunc {
	return func(g *grid.Grid) (*matrix.Dense, error) {
		a, err := inner(g)
		if err != nil {
			return nil, operatorErrorf(opComposeFunc, err)
		}
		b, err := outer(g)
		if err != nil {
			return nil, operatorErrorf(opComposeFunc, err)
		}
		prod, err := matrix.Mul(b, a)
		if err != nil {
			return nil, operatorErrorf(opComposeFunc, err)
		}
		if err = matrix.ValidateFinite(prod); err != nil {
			return nil, operatorErrorf(opComposeFunc, singular(err))
		}

		return prod, nil
	}
}

// Invert returns the builder of fn's inverse, computed by pivoted LU.
// Estimates above condLimit are reported as ErrSingularOperator.
// Panics if condLimit is not finite or < 1 (see matrix.WithConditionLimit).
func Invert(fn BuildFunc, condLimit float64) BuildFunc {
	limit := matrix.WithConditionLimit(condLimit)

	return func(g *grid.Grid) (*matrix.Dense, error) {
		fwd, err := fn(g)
		if err != nil {
			return nil, operatorErrorf(opInvertFunc, err)
		}
		inv, err := matrix.Inverse(fwd, limit)
		if err != nil {
			return nil, operatorErrorf(opInvertFunc, singular(err))
		}

		return inv, nil
	}
}
