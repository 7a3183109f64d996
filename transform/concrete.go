// SPDX-License-Identifier: MIT

// Package transform - concrete transformations.
//
// Each constructor binds one primitive builder to its pair. A Catalog is the
// general entry point; these cover the common conversions without a
// registry.

package transform

import (
	"github.com/katalvlaran/polybasis/operator"
	"github.com/katalvlaran/polybasis/poly"
)

// NewCanonicalToNewton converts monomial coefficients to Newton coefficients.
func NewCanonicalToNewton(opts ...Option) *Transformation {
	return mustNew(poly.Canonical, poly.Newton, operator.CanonicalToNewton, opts)
}

// NewCanonicalToLagrange evaluates a monomial expansion at the grid nodes.
func NewCanonicalToLagrange(opts ...Option) *Transformation {
	return mustNew(poly.Canonical, poly.Lagrange, operator.CanonicalToLagrange, opts)
}

// NewNewtonToCanonical expands Newton coefficients into monomials.
func NewNewtonToCanonical(opts ...Option) *Transformation {
	return mustNew(poly.Newton, poly.Canonical, operator.NewtonToCanonical, opts)
}

// NewNewtonToLagrange evaluates a Newton expansion at the grid nodes.
func NewNewtonToLagrange(opts ...Option) *Transformation {
	return mustNew(poly.Newton, poly.Lagrange, operator.NewtonToLagrange, opts)
}

// NewLagrangeToNewton computes divided differences from node values.
func NewLagrangeToNewton(opts ...Option) *Transformation {
	return mustNew(poly.Lagrange, poly.Newton, operator.LagrangeToNewton, opts)
}

func mustNew(origin, target poly.Basis, fn operator.BuildFunc, opts []Option) *Transformation {
	t, err := New(origin, target, fn, opts...)
	if err != nil {
		panic(err)
	}

	return t
}
