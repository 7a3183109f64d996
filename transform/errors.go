// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrNilPolynomial indicates Bind, Apply or Convert called with nil.
	ErrNilPolynomial = errors.New("transform: nil polynomial")

	// ErrTypeMismatch indicates a polynomial whose basis differs from the
	// transformation's origin basis.
	ErrTypeMismatch = errors.New("transform: polynomial basis does not match transformation origin")

	// ErrDimension indicates an operator whose size differs from the number
	// of coefficients.
	ErrDimension = errors.New("transform: operator dimension does not match coefficient count")
)

// transformErrorf wraps err with an operation tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
