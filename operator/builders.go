// SPDX-License-Identifier: MIT

// Package operator - primitive builders.
//
// Each builder follows the same stages:
//   - Stage 1: validate the grid against the builder's preconditions.
//   - Stage 2: build one table per dimension (see tables.go).
//   - Stage 3: assemble the tensor product, or solve a triangular system
//     against the identity for the inverse direction.
//   - Stage 4: reject non-finite entries as ErrSingularOperator.

package operator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/matrix"
)

// BuildFunc constructs the operator matrix of one basis pair for a grid.
// The grid carries the multi-index set and the number of variables.
type BuildFunc func(g *grid.Grid) (*matrix.Dense, error)

// builder tags
const (
	opNewtonToCanonical    = "NewtonToCanonical"
	opCanonicalToNewton    = "CanonicalToNewton"
	opNewtonToLagrange     = "NewtonToLagrange"
	opLagrangeToNewton     = "LagrangeToNewton"
	opCanonicalToLagrange  = "CanonicalToLagrange"
	opChebyshevToCanonical = "ChebyshevToCanonical"
	opCanonicalToChebyshev = "CanonicalToChebyshev"
	opChebyshevToLagrange  = "ChebyshevToLagrange"
	opIdentity             = "Identity"
)

// requirements of a builder
type requirement uint8

const (
	needClosed requirement = 1 << iota
	needDistinct
)

// tableFunc produces the per-dimension table from the generating values.
type tableFunc func(values []float64) [][]float64

// checkGrid verifies the requirements of tag against g.
func checkGrid(tag string, g *grid.Grid, req requirement) error {
	if g == nil {
		return operatorErrorf(tag, ErrNilGrid)
	}
	if req&needClosed != 0 && !g.MultiIndex().IsDownwardClosed() {
		return operatorErrorf(tag, ErrNotDownwardClosed)
	}
	if req&needDistinct != 0 {
		if ok, dim := g.HasDistinctValues(); !ok {
			return operatorErrorf(tag, fmt.Errorf("repeated generating value in dim %d: %w", dim, ErrSingularOperator))
		}
	}

	return nil
}

// assemble runs Stage 2 and Stage 3 for tensor-product builders.
func assemble(tag string, g *grid.Grid, req requirement, table tableFunc) (*matrix.Dense, error) {
	if err := checkGrid(tag, g, req); err != nil {
		return nil, err
	}
	tabs := make([][][]float64, g.SpatialDimension())
	for d := range tabs {
		values, err := g.GeneratingValues(d)
		if err != nil {
			return nil, operatorErrorf(tag, err)
		}
		tabs[d] = table(values)
	}
	n := g.Len()
	out, err := matrix.NewDenseFrom(n, n, tensorProduct(g.MultiIndex().Exponents(), tabs))
	if err != nil {
		return nil, operatorErrorf(tag, singular(err))
	}

	return out, nil
}

// solveAgainstIdentity inverts a triangular operator by substitution.
func solveAgainstIdentity(tag string, fwd *matrix.Dense, upper bool) (*matrix.Dense, error) {
	id, err := matrix.NewIdentity(fwd.Rows())
	if err != nil {
		return nil, operatorErrorf(tag, err)
	}
	var inv *matrix.Dense
	if upper {
		inv, err = matrix.SolveUpper(fwd, id)
	} else {
		inv, err = matrix.SolveLower(fwd, id)
	}
	if err != nil {
		return nil, operatorErrorf(tag, singular(err))
	}
	if err = matrix.ValidateFinite(inv); err != nil {
		return nil, operatorErrorf(tag, singular(err))
	}

	return inv, nil
}

// singular attaches ErrSingularOperator to numeric failures from matrix.
func singular(err error) error {
	if errors.Is(err, matrix.ErrSingular) || errors.Is(err, matrix.ErrIllConditioned) || errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%w: %w", ErrSingularOperator, err)
	}

	return err
}

// NewtonToCanonical maps Newton coefficients to monomial coefficients:
// entry [β][α] = Π_d c_d[α_d][β_d] with c_d the 1-D Newton monomial table.
// Upper triangular with unit diagonal.
// Complexity: Time O(N^2·m), Space O(N^2).
func NewtonToCanonical(g *grid.Grid) (*matrix.Dense, error) {
	return assemble(opNewtonToCanonical, g, needClosed|needDistinct, newtonCoefficients)
}

// CanonicalToNewton inverts NewtonToCanonical by back substitution.
// Complexity: Time O(N^3), Space O(N^2).
func CanonicalToNewton(g *grid.Grid) (*matrix.Dense, error) {
	fwd, err := NewtonToCanonical(g)
	if err != nil {
		return nil, operatorErrorf(opCanonicalToNewton, err)
	}

	return solveAgainstIdentity(opCanonicalToNewton, fwd, true)
}

// NewtonToLagrange evaluates every Newton basis polynomial at every node:
// entry [i][j] = N_{α_j}(x_{α_i}). Lower triangular; valid on any set.
// Complexity: Time O(N^2·m), Space O(N^2).
func NewtonToLagrange(g *grid.Grid) (*matrix.Dense, error) {
	return assemble(opNewtonToLagrange, g, needDistinct, newtonValues)
}

// LagrangeToNewton computes multivariate divided differences by forward
// substitution on NewtonToLagrange.
// Complexity: Time O(N^3), Space O(N^2).
func LagrangeToNewton(g *grid.Grid) (*matrix.Dense, error) {
	fwd, err := NewtonToLagrange(g)
	if err != nil {
		return nil, operatorErrorf(opLagrangeToNewton, err)
	}

	return solveAgainstIdentity(opLagrangeToNewton, fwd, false)
}

// CanonicalToLagrange is the generalized Vandermonde matrix
// entry [i][j] = x_{α_i}^{α_j}.
// Complexity: Time O(N^2·m), Space O(N^2).
func CanonicalToLagrange(g *grid.Grid) (*matrix.Dense, error) {
	return assemble(opCanonicalToLagrange, g, needClosed|needDistinct, powerValues)
}

// ChebyshevToCanonical expands tensor Chebyshev polynomials into monomials:
// entry [β][α] = Π_d t[α_d][β_d]. Upper triangular.
// Complexity: Time O(N^2·m), Space O(N^2).
func ChebyshevToCanonical(g *grid.Grid) (*matrix.Dense, error) {
	return assemble(opChebyshevToCanonical, g, needClosed, func(values []float64) [][]float64 {
		return chebyshevCoefficients(len(values))
	})
}

// CanonicalToChebyshev inverts ChebyshevToCanonical by back substitution.
// Complexity: Time O(N^3), Space O(N^2).
func CanonicalToChebyshev(g *grid.Grid) (*matrix.Dense, error) {
	fwd, err := ChebyshevToCanonical(g)
	if err != nil {
		return nil, operatorErrorf(opCanonicalToChebyshev, err)
	}

	return solveAgainstIdentity(opCanonicalToChebyshev, fwd, true)
}

// ChebyshevToLagrange evaluates tensor Chebyshev polynomials at the nodes:
// entry [i][j] = T_{α_j}(x_{α_i}).
// The set must be downward closed, as for CanonicalToLagrange: on a set with
// gaps the matrix can be singular even for distinct values. With exponents
// {0, 2} on the values {1, 0, -1}, T_0 and T_2 both equal 1 at x = ±1.
// Complexity: Time O(N^2·m), Space O(N^2).
func ChebyshevToLagrange(g *grid.Grid) (*matrix.Dense, error) {
	return assemble(opChebyshevToLagrange, g, needClosed|needDistinct, chebyshevValues)
}

// Identity returns the N×N identity; it serves origin == target.
func Identity(g *grid.Grid) (*matrix.Dense, error) {
	if g == nil {
		return nil, operatorErrorf(opIdentity, ErrNilGrid)
	}

	return matrix.NewIdentity(g.Len())
}
