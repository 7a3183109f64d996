// SPDX-License-Identifier: MIT
// Package multiindex: sentinel error set.

package multiindex

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension indicates a spatial dimension below 1.
	ErrInvalidDimension = errors.New("multiindex: spatial dimension must be >= 1")

	// ErrNegativeExponent indicates an exponent entry below 0.
	ErrNegativeExponent = errors.New("multiindex: negative exponent")

	// ErrLengthMismatch indicates an exponent tuple whose length differs from
	// the spatial dimension.
	ErrLengthMismatch = errors.New("multiindex: exponent length mismatch")

	// ErrDuplicateExponent indicates the same tuple listed twice.
	ErrDuplicateExponent = errors.New("multiindex: duplicate exponent")

	// ErrInvalidDegree indicates a negative polynomial degree.
	ErrInvalidDegree = errors.New("multiindex: degree must be >= 0")

	// ErrInvalidLpDegree indicates an lp-degree that is NaN or below 1.
	ErrInvalidLpDegree = errors.New("multiindex: lp-degree must be >= 1 or +Inf")

	// ErrOutOfRange indicates a position outside [0, Len()).
	ErrOutOfRange = errors.New("multiindex: index out of range")
)

// setErrorf wraps err with an operation tag.
func setErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
