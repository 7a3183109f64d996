// SPDX-License-Identifier: MIT

// Package multiindex - Set storage, ordering and queries.
//
// Complexity quicksheet (N = Len(), m = SpatialDimension()):
//   - New: O(m·N log N) sort + O(m·N log N) closure check.
//   - Index: O(m log N) binary search; Exponent: O(m) copy.

package multiindex

import (
	"fmt"
	"slices"
	"strings"
)

// operation tags
const (
	opNew      = "New"
	opExponent = "Set.Exponent"
)

// Set is an ordered, duplicate-free, immutable collection of multi-indices.
type Set struct {
	m      int         // spatial dimension, >= 1
	exps   [][]int     // canonical order, never exposed without copying
	maxExp int         // largest single entry; -1 when empty
	closed bool        // cached IsDownwardClosed
	digest Fingerprint // content hash, see fingerprint.go
}

// Compare orders two tuples of equal length: the last coordinate is the most
// significant. It returns -1, 0 or +1.
func Compare(a, b []int) int {
	for i := len(a) - 1; i >= 0; i-- {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}

	return 0
}

// New validates the exponent tuples, copies them and sorts them into the
// canonical order.
//
// Implementation:
//   - Stage 1: m >= 1; every tuple has length m and no negative entry.
//   - Stage 2: deep copy + sort by Compare; adjacent equal tuples are
//     reported as ErrDuplicateExponent.
//   - Stage 3: cache max exponent, downward closure and fingerprint.
func New(m int, exponents [][]int) (*Set, error) {
	if m < 1 {
		return nil, setErrorf(opNew, fmt.Errorf("m=%d: %w", m, ErrInvalidDimension))
	}
	exps := make([][]int, len(exponents))
	for k, alpha := range exponents {
		if len(alpha) != m {
			return nil, setErrorf(opNew, fmt.Errorf("tuple %d has length %d, want %d: %w", k, len(alpha), m, ErrLengthMismatch))
		}
		for _, v := range alpha {
			if v < 0 {
				return nil, setErrorf(opNew, fmt.Errorf("tuple %d %v: %w", k, alpha, ErrNegativeExponent))
			}
		}
		exps[k] = slices.Clone(alpha)
	}
	slices.SortFunc(exps, Compare)
	for k := 1; k < len(exps); k++ {
		if Compare(exps[k-1], exps[k]) == 0 {
			return nil, setErrorf(opNew, fmt.Errorf("%v: %w", exps[k], ErrDuplicateExponent))
		}
	}

	return newSorted(m, exps), nil
}

// Empty returns the set of dimension m with no members.
func Empty(m int) (*Set, error) {
	return New(m, nil)
}

// newSorted finalizes a Set from tuples already validated and in canonical
// order. The slice is adopted, not copied.
func newSorted(m int, exps [][]int) *Set {
	s := &Set{m: m, exps: exps, maxExp: -1}
	for _, alpha := range exps {
		for _, v := range alpha {
			s.maxExp = max(s.maxExp, v)
		}
	}
	s.closed = s.downwardClosed()
	s.digest = fingerprintOf(m, exps)

	return s
}

// Len returns the number of multi-indices.
func (s *Set) Len() int { return len(s.exps) }

// SpatialDimension returns m, the length of every tuple.
func (s *Set) SpatialDimension() int { return s.m }

// MaxExponent returns the largest entry over all tuples and coordinates,
// or -1 for the empty set.
func (s *Set) MaxExponent() int { return s.maxExp }

// Exponent returns a copy of the i-th tuple in canonical order.
func (s *Set) Exponent(i int) ([]int, error) {
	if i < 0 || i >= len(s.exps) {
		return nil, setErrorf(opExponent, fmt.Errorf("%d not in [0,%d): %w", i, len(s.exps), ErrOutOfRange))
	}

	return slices.Clone(s.exps[i]), nil
}

// Exponents returns a deep copy of all tuples in canonical order.
func (s *Set) Exponents() [][]int {
	out := make([][]int, len(s.exps))
	for k, alpha := range s.exps {
		out[k] = slices.Clone(alpha)
	}

	return out
}

// Index returns the canonical position of alpha and whether it is a member.
func (s *Set) Index(alpha []int) (int, bool) {
	if len(alpha) != s.m {
		return -1, false
	}
	i, found := slices.BinarySearchFunc(s.exps, alpha, Compare)
	if !found {
		return -1, false
	}

	return i, true
}

// Contains reports membership of alpha.
func (s *Set) Contains(alpha []int) bool {
	_, ok := s.Index(alpha)

	return ok
}

// IsDownwardClosed reports whether every α in the set has all its lower
// neighbours α - e_i (α_i > 0) in the set as well. The empty set is closed.
func (s *Set) IsDownwardClosed() bool { return s.closed }

// downwardClosed evaluates the closure property once, at construction.
// Checking the immediate lower neighbours suffices by induction.
func (s *Set) downwardClosed() bool {
	lower := make([]int, s.m)
	for _, alpha := range s.exps {
		copy(lower, alpha)
		for i := range lower {
			if lower[i] == 0 {
				continue
			}
			lower[i]--
			if _, ok := s.Index(lower); !ok {
				return false
			}
			lower[i]++
		}
	}

	return true
}

// Fingerprint returns the BLAKE3 digest of the dimension and the ordered
// tuples. Equal sets have equal fingerprints.
func (s *Set) Fingerprint() Fingerprint { return s.digest }

// String renders the set as "{(0,0) (1,0) …}".
func (s *Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, alpha := range s.exps {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		for i, v := range alpha {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d", v)
		}
		sb.WriteByte(')')
	}
	sb.WriteByte('}')

	return sb.String()
}
