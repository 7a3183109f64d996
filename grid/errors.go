// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMultiIndex indicates that New received a nil set.
	ErrNilMultiIndex = errors.New("grid: nil multi-index set")

	// ErrTooFewValues indicates fewer generating values than MaxExponent()+1
	// for some dimension.
	ErrTooFewValues = errors.New("grid: too few generating values")

	// ErrDimensionMismatch indicates explicit values given for a number of
	// dimensions other than the set's.
	ErrDimensionMismatch = errors.New("grid: dimension mismatch")

	// ErrNaNInf indicates a non-finite generating value.
	ErrNaNInf = errors.New("grid: NaN or Inf generating value")

	// ErrInvalidInterval indicates an Equidistant interval with a >= b or
	// non-finite bounds.
	ErrInvalidInterval = errors.New("grid: invalid interval")

	// ErrOutOfRange indicates a node or dimension index outside bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)

// gridErrorf wraps err with an operation tag.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
