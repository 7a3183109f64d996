// SPDX-License-Identifier: MIT

// Package operator builds the square matrices that change the coefficient
// basis of a polynomial on a multi-index grid.
//
// Convention: for an operator from basis A to basis B, row i is the i-th
// basis function of B and column j the j-th basis function of A, both in the
// set's canonical order, so that
//
//	coeffs_B = M · coeffs_A.
//
// Primitive builders (BuildFunc):
//
//	NewtonToCanonical     upper triangular, 1-D Newton monomial tables
//	CanonicalToNewton     back substitution on NewtonToCanonical
//	NewtonToLagrange      lower triangular, N_α(x_β)
//	LagrangeToNewton      forward substitution (divided differences)
//	CanonicalToLagrange   generalized Vandermonde x_β^α
//	ChebyshevToCanonical  upper triangular, Chebyshev recurrence tables
//	CanonicalToChebyshev  back substitution on ChebyshevToCanonical
//	ChebyshevToLagrange   T_α(x_β)
//
// Every entry is a product of one-dimensional factors, one per coordinate,
// which is what makes the constructions valid for non-tensorial sets.
// Pairs without a primitive are obtained by Compose or Invert; a Registry
// keyed by (origin, target) holds the result and DefaultRegistry wires all
// twelve ordered pairs of the four bases.
//
// Builders touching canonical or Chebyshev coefficients require a downward
// closed set (ErrNotDownwardClosed). Builders touching Newton or Lagrange
// require pairwise distinct generating values per dimension
// (ErrSingularOperator). The empty set yields the 0×0 operator.
package operator
