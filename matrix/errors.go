// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an operation
// tag via matrixErrorf) and tests check them with errors.Is. No kernel panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a vector of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a zero pivot is met in a triangular solve
	// or the LU factorization reports an exactly singular matrix.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrIllConditioned is returned when the estimated condition number exceeds
	// the configured limit (see WithConditionLimit).
	ErrIllConditioned = errors.New("matrix: matrix is ill-conditioned")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
