// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/katalvlaran/polybasis/operator"
	"github.com/katalvlaran/polybasis/poly"
)

const opTransform = "Binding.Transform"

// Binding is a Transformation applied to one origin polynomial. The
// polynomial is borrowed, never modified.
type Binding struct {
	t      *Transformation
	origin *poly.Polynomial
}

// Origin returns the bound polynomial.
func (b *Binding) Origin() *poly.Polynomial { return b.origin }

// Transformation returns the owning transformation.
func (b *Binding) Transformation() *Transformation { return b.t }

// Operator returns the (cached) operator for the origin's grid.
func (b *Binding) Operator() (*operator.Operator, error) {
	return b.t.Operator(b.origin.Grid())
}

// Transform returns a new polynomial in the target basis on the same grid.
//
// Errors: ErrDimension when the operator size differs from the coefficient
// count, or any Operator error.
func (b *Binding) Transform() (*poly.Polynomial, error) {
	op, err := b.Operator()
	if err != nil {
		return nil, transformErrorf(opTransform, err)
	}
	if op.Dim() != b.origin.Len() {
		return nil, transformErrorf(opTransform, fmt.Errorf("operator %d, coefficients %d: %w", op.Dim(), b.origin.Len(), ErrDimension))
	}
	coeffs, err := op.Apply(b.origin.Coeffs())
	if err != nil {
		return nil, transformErrorf(opTransform, err)
	}
	out, err := poly.New(b.t.pair.Target, coeffs, b.origin.Grid())
	if err != nil {
		return nil, transformErrorf(opTransform, fmt.Errorf("%w: %w", operator.ErrSingularOperator, err))
	}

	return out, nil
}
