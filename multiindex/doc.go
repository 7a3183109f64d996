// SPDX-License-Identifier: MIT

// Package multiindex provides ordered multi-index exponent sets, the index
// spaces every polynomial basis in this module is defined on.
//
// A Set holds m-dimensional tuples α = (α_1, …, α_m) of non-negative
// exponents. Members are kept in one canonical order: lexicographic with the
// LAST coordinate most significant, e.g. for m = 2
//
//	(0,0) (1,0) (2,0) (0,1) (1,1) (0,2)
//
// Every coefficient vector, node list and operator row/column in the module
// follows this order, so triangular structure of the basis-change operators
// is visible directly in the matrices.
//
// Sets are immutable after construction and safe for concurrent reads.
// Fingerprint returns a BLAKE3 digest of the content; it keys operator
// caches.
//
// Constructors:
//   - New: validate and sort an explicit exponent list.
//   - FromDegree: all α with ‖α‖_p ≤ n (downward closed by construction).
//   - Empty: the zero-length set of a given dimension.
package multiindex
