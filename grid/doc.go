// SPDX-License-Identifier: MIT

// Package grid binds a multi-index set to per-dimension generating values,
// producing the unisolvent interpolation nodes the Newton and Lagrange bases
// are defined on.
//
// For a set of dimension m with largest exponent n, a Grid stores m lists of
// n+1 generating values g_1, …, g_m. The node of the multi-index α is
//
//	x_α = (g_1[α_1], …, g_m[α_m])
//
// so node order follows the set's canonical order.
//
// Generating values come from a Generator (default: Leja-ordered
// Chebyshev–Lobatto points on [-1, 1]) or are given explicitly with
// WithGeneratingValues. A Grid is immutable; its Fingerprint digests the set
// and every generating value and keys operator caches.
package grid
