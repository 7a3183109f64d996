// SPDX-License-Identifier: MIT

// Package transform converts polynomials between bases through one uniform
// contract.
//
// A Transformation is created once per (origin, target) pair and owns:
//   - the pair's operator.BuildFunc,
//   - a cache of built operators keyed by grid fingerprint.
//
// Using it takes three steps:
//
//	b, err := t.Bind(p)        // p must be in the origin basis (ErrTypeMismatch)
//	op, err := b.Operator()    // cached per grid, built at most once
//	q, err := b.Transform()    // new polynomial in the target basis, same grid
//
// Apply chains the three. A Catalog holds one Transformation per pair of an
// operator.Registry and adds Convert(p, target).
//
// Concurrency: a Transformation is safe for concurrent use. Cache reads take
// a read lock; a miss re-checks and builds under the write lock, and a
// published operator is never mutated.
//
// Observability: WithOnBuild and WithOnCacheHit hooks receive an Event for
// every build and every cache hit.
package transform
