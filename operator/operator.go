// SPDX-License-Identifier: MIT

// Package operator - the Operator value.
//
// An Operator pairs a square matrix with the (origin, target) bases it
// converts between. It is immutable once returned; Matrix hands out a copy.

package operator

import (
	"fmt"

	"github.com/katalvlaran/polybasis/matrix"
	"github.com/katalvlaran/polybasis/poly"
)

// operation tags
const (
	opNew     = "operator.New"
	opApply   = "Operator.Apply"
	opCompose = "Operator.Compose"
	opInverse = "Operator.Inverse"
)

// Pair is an ordered (origin, target) basis pair.
type Pair struct {
	Origin poly.Basis
	Target poly.Basis
}

// String renders "canonical->newton".
func (p Pair) String() string {
	return p.Origin.String() + "->" + p.Target.String()
}

// Valid reports whether both bases are declared.
func (p Pair) Valid() bool { return p.Origin.Valid() && p.Target.Valid() }

// Reverse returns (Target, Origin).
func (p Pair) Reverse() Pair { return Pair{Origin: p.Target, Target: p.Origin} }

// Operator is an immutable square basis-change matrix.
type Operator struct {
	pair Pair
	m    *matrix.Dense // row = target basis index, column = origin basis index
}

// New wraps m as the operator of pair. The matrix is adopted, not copied;
// callers must not modify it afterwards.
//
// Errors: ErrInvalidBasis, matrix.ErrNilMatrix, matrix.ErrNonSquare.
func New(pair Pair, m *matrix.Dense) (*Operator, error) {
	if !pair.Valid() {
		return nil, operatorErrorf(opNew, fmt.Errorf("%v: %w", pair, ErrInvalidBasis))
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, operatorErrorf(opNew, err)
	}

	return &Operator{pair: pair, m: m}, nil
}

// Pair returns the (origin, target) pair.
func (o *Operator) Pair() Pair { return o.pair }

// Origin returns the basis of the input coefficients.
func (o *Operator) Origin() poly.Basis { return o.pair.Origin }

// Target returns the basis of the output coefficients.
func (o *Operator) Target() poly.Basis { return o.pair.Target }

// Dim returns the side length of the square matrix.
func (o *Operator) Dim() int { return o.m.Rows() }

// Matrix returns a copy of the operator matrix.
func (o *Operator) Matrix() *matrix.Dense { return o.m.Clone().(*matrix.Dense) }

// At returns entry [i][j].
func (o *Operator) At(i, j int) (float64, error) { return o.m.At(i, j) }

// Apply returns M · coeffs.
// Errors: matrix.ErrDimensionMismatch when len(coeffs) != Dim().
func (o *Operator) Apply(coeffs []float64) ([]float64, error) {
	y, err := matrix.MatVec(o.m, coeffs)
	if err != nil {
		return nil, operatorErrorf(opApply, err)
	}

	return y, nil
}

// Compose returns o ∘ inner, the operator applying inner first.
// inner.Target() must equal o.Origin() (ErrPairMismatch).
func (o *Operator) Compose(inner *Operator) (*Operator, error) {
	if inner == nil {
		return nil, operatorErrorf(opCompose, matrix.ErrNilMatrix)
	}
	if inner.pair.Target != o.pair.Origin {
		return nil, operatorErrorf(opCompose, fmt.Errorf("%v after %v: %w", o.pair, inner.pair, ErrPairMismatch))
	}
	prod, err := matrix.Mul(o.m, inner.m)
	if err != nil {
		return nil, operatorErrorf(opCompose, err)
	}

	return &Operator{pair: Pair{Origin: inner.pair.Origin, Target: o.pair.Target}, m: prod}, nil
}

// Inverse returns the reverse-pair operator via LU inversion.
// Singular or ill-conditioned matrices yield ErrSingularOperator.
func (o *Operator) Inverse(opts ...matrix.Option) (*Operator, error) {
	inv, err := matrix.Inverse(o.m, opts...)
	if err != nil {
		return nil, operatorErrorf(opInverse, singular(err))
	}

	return &Operator{pair: o.pair.Reverse(), m: inv}, nil
}

// String renders the pair followed by the matrix rows.
func (o *Operator) String() string {
	return fmt.Sprintf("%v (%dx%d)\n%v", o.pair, o.Dim(), o.Dim(), o.m)
}
