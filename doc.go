// SPDX-License-Identifier: MIT

// Package polybasis converts multivariate polynomials between bases without
// changing the function they evaluate to.
//
// 🚀 What is polybasis?
//
//	A small numeric library that brings together:
//		• Multi-index sets: total-degree, Euclidean and tensorial (lp-degree) sets
//		• Interpolation grids: Leja-ordered Chebyshev–Lobatto or custom points
//		• Bases: canonical (monomial), Newton, Lagrange, Chebyshev
//		• Operators: exact triangular constructions for non-tensorial sets
//		• Transformations: bind, cache per grid, apply
//
// ✨ Why polybasis?
//
//   - One contract for every (origin, target) pair
//   - Operators built once per grid and shared safely across goroutines
//   - Triangular structure kept explicit: substitution instead of inversion
//   - Hooks (OnBuild, OnCacheHit) for observability
//
// Packages:
//
//	multiindex/     ordered exponent sets, downward closure, fingerprints
//	grid/           generating values and unisolvent nodes
//	poly/           Basis tag and immutable Polynomial
//	matrix/         dense kernels, triangular solves, LU inverse
//	operator/       builders, composition, Registry of basis pairs
//	transform/      Transformation, Binding, Catalog
//	cmd/polybasis/  command-line front end
//
// Quick example (1 + x² on the nodes 0, 1, 2):
//
//	canonical [1 0 1]  ──C→N──▶  newton [1 1 1]  ──N→L──▶  lagrange [1 2 5]
//
//	go get github.com/katalvlaran/polybasis
package polybasis
