// SPDX-License-Identifier: MIT

// Package poly defines the basis tag and the immutable polynomial value that
// basis transformations consume and produce.
//
// A Polynomial is a coefficient vector over a grid's multi-index set, tagged
// with the basis those coefficients refer to. Coefficient i belongs to the
// i-th multi-index in canonical order. Transformations never mutate their
// input; they return a new Polynomial that shares the grid.
package poly
