// SPDX-License-Identifier: MIT

// Package grid - Grid construction and node queries.
//
// Complexity quicksheet (N = set size, m = dimension, n = MaxExponent()+1):
//   - New: O(m·n) values + O(m·n) hashing; Node: O(m); Nodes: O(N·m).

package grid

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/zeebo/blake3"

	"github.com/katalvlaran/polybasis/multiindex"
)

// operation tags
const (
	opNew              = "grid.New"
	opNode             = "Grid.Node"
	opGeneratingValues = "Grid.GeneratingValues"
)

// Grid is an immutable multi-index set with its generating values.
type Grid struct {
	mi     *multiindex.Set
	values [][]float64 // m lists of length MaxExponent()+1
	digest multiindex.Fingerprint
}

// New builds the grid of mi.
//
// Implementation:
//   - Stage 1: resolve the value source (generator or explicit lists).
//   - Stage 2: per dimension obtain MaxExponent()+1 finite values.
//   - Stage 3: hash set fingerprint + values into the grid fingerprint.
//
// Errors: ErrNilMultiIndex, ErrDimensionMismatch, ErrTooFewValues,
// ErrNaNInf, or a generator error.
func New(mi *multiindex.Set, opts ...Option) (*Grid, error) {
	if mi == nil {
		return nil, gridErrorf(opNew, ErrNilMultiIndex)
	}
	o := gatherOptions(opts...)
	m, n := mi.SpatialDimension(), mi.MaxExponent()+1

	if o.values != nil && len(o.values) != m {
		return nil, gridErrorf(opNew, fmt.Errorf("values for %d dims, set has %d: %w", len(o.values), m, ErrDimensionMismatch))
	}

	values := make([][]float64, m)
	for d := 0; d < m; d++ {
		var (
			v   []float64
			err error
		)
		if o.values != nil {
			v, err = Values(o.values[d]...)(n)
		} else {
			v, err = o.gen(n)
		}
		if err != nil {
			return nil, gridErrorf(opNew, fmt.Errorf("dim %d: %w", d, err))
		}
		if len(v) != n {
			return nil, gridErrorf(opNew, fmt.Errorf("dim %d: generator returned %d values, want %d: %w", d, len(v), n, ErrTooFewValues))
		}
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, gridErrorf(opNew, fmt.Errorf("dim %d: %w", d, ErrNaNInf))
			}
		}
		values[d] = v
	}

	return &Grid{mi: mi, values: values, digest: fingerprintOf(mi, values)}, nil
}

// fingerprintOf digests the set fingerprint followed by every generating
// value as IEEE-754 bits.
func fingerprintOf(mi *multiindex.Set, values [][]float64) multiindex.Fingerprint {
	hasher := blake3.New()
	setFP := mi.Fingerprint()
	_, _ = hasher.Write(setFP[:])

	var word [8]byte
	for _, v := range values {
		binary.BigEndian.PutUint64(word[:], uint64(len(v)))
		_, _ = hasher.Write(word[:])
		for _, x := range v {
			binary.BigEndian.PutUint64(word[:], math.Float64bits(x))
			_, _ = hasher.Write(word[:])
		}
	}

	var f multiindex.Fingerprint
	copy(f[:], hasher.Sum(nil))

	return f
}

// MultiIndex returns the underlying set (immutable, shared).
func (g *Grid) MultiIndex() *multiindex.Set { return g.mi }

// SpatialDimension returns m.
func (g *Grid) SpatialDimension() int { return g.mi.SpatialDimension() }

// Len returns the number of nodes, equal to the set size.
func (g *Grid) Len() int { return g.mi.Len() }

// Fingerprint returns the content digest of set and values.
func (g *Grid) Fingerprint() multiindex.Fingerprint { return g.digest }

// GeneratingValues returns a copy of the values of dimension dim.
func (g *Grid) GeneratingValues(dim int) ([]float64, error) {
	if dim < 0 || dim >= len(g.values) {
		return nil, gridErrorf(opGeneratingValues, fmt.Errorf("dim %d not in [0,%d): %w", dim, len(g.values), ErrOutOfRange))
	}

	return append([]float64(nil), g.values[dim]...), nil
}

// Node returns the unisolvent node of the i-th multi-index.
func (g *Grid) Node(i int) ([]float64, error) {
	alpha, err := g.mi.Exponent(i)
	if err != nil {
		return nil, gridErrorf(opNode, fmt.Errorf("%v: %w", err, ErrOutOfRange))
	}

	return g.nodeOf(alpha), nil
}

// Nodes returns all nodes in canonical order (N rows of length m).
func (g *Grid) Nodes() [][]float64 {
	exps := g.mi.Exponents()
	out := make([][]float64, len(exps))
	for k, alpha := range exps {
		out[k] = g.nodeOf(alpha)
	}

	return out
}

func (g *Grid) nodeOf(alpha []int) []float64 {
	x := make([]float64, len(alpha))
	for d, a := range alpha {
		x[d] = g.values[d][a]
	}

	return x
}

// HasDistinctValues reports whether the generating values of every
// dimension are pairwise distinct; Newton and Lagrange operators need it.
// It returns the first offending dimension when false.
func (g *Grid) HasDistinctValues() (bool, int) {
	for d, v := range g.values {
		seen := make(map[float64]struct{}, len(v))
		for _, x := range v {
			if _, dup := seen[x]; dup {
				return false, d
			}
			seen[x] = struct{}{}
		}
	}

	return true, -1
}
