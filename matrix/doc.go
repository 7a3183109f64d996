// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives used to build
// and apply polynomial basis-change operators.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set. Unlike a
//     general-purpose library, 0×0 (and 0×k) shapes are legal: the operator
//     of an empty multi-index set is the empty matrix.
//   - MatVec and Mul kernels whose inner loops run on algo-vecmath blocks.
//   - SolveUpper / SolveLower for triangular systems (back and forward
//     substitution, exact zero-pivot detection).
//   - Inverse and Cond, backed by gonum's partially pivoted LU with a
//     configurable condition-number guard.
//   - AllClose / MaxAbsDiff for tolerance checks.
//
// All kernels validate inputs through the validators in validators.go and
// return package sentinels wrapped with an operation tag; match them with
// errors.Is.
package matrix
