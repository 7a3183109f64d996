// SPDX-License-Identifier: MIT
// Package poly: sentinel error set.

package poly

import "errors"

var (
	// ErrInvalidBasis indicates an undeclared Basis value or name.
	ErrInvalidBasis = errors.New("poly: invalid basis")

	// ErrNilGrid indicates a polynomial constructed without a grid.
	ErrNilGrid = errors.New("poly: nil grid")

	// ErrCoefficientCount indicates len(coeffs) != multi-index set size.
	ErrCoefficientCount = errors.New("poly: coefficient count does not match multi-index set")

	// ErrNaNInf indicates a non-finite coefficient.
	ErrNaNInf = errors.New("poly: NaN or Inf coefficient")

	// ErrOutOfRange indicates a coefficient index outside [0, Len()).
	ErrOutOfRange = errors.New("poly: index out of range")
)
