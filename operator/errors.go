// SPDX-License-Identifier: MIT
// Package operator: sentinel error set.

package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularOperator indicates an operator that does not exist or
	// cannot be computed reliably: repeated generating values, a zero
	// pivot, an ill-conditioned inversion or a non-finite entry.
	ErrSingularOperator = errors.New("operator: singular operator")

	// ErrNotDownwardClosed indicates a canonical or Chebyshev operator
	// requested on a set that is not downward closed.
	ErrNotDownwardClosed = errors.New("operator: multi-index set is not downward closed")

	// ErrUnsupportedPair indicates that no builder is registered for the pair.
	ErrUnsupportedPair = errors.New("operator: unsupported basis pair")

	// ErrDuplicatePair indicates a second registration of the same pair.
	ErrDuplicatePair = errors.New("operator: pair already registered")

	// ErrInvalidBasis indicates an undeclared basis in a pair.
	ErrInvalidBasis = errors.New("operator: invalid basis")

	// ErrPairMismatch indicates operators that cannot be chained because the
	// inner target differs from the outer origin.
	ErrPairMismatch = errors.New("operator: pair mismatch")

	// ErrNilGrid indicates a builder called without a grid.
	ErrNilGrid = errors.New("operator: nil grid")

	// ErrNilBuilder indicates a nil BuildFunc passed to Register.
	ErrNilBuilder = errors.New("operator: nil builder")
)

// operatorErrorf wraps err with an operation tag.
func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
