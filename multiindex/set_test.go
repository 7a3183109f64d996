// SPDX-License-Identifier: MIT

package multiindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polybasis/multiindex"
)

func TestNew_SortsIntoCanonicalOrder(t *testing.T) {
	s, err := multiindex.New(2, [][]int{{0, 1}, {2, 0}, {0, 0}, {1, 1}, {1, 0}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, 6, s.Len())
	require.Equal(t, 2, s.SpatialDimension())
	require.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}, s.Exponents()) // last coordinate most significant
	require.Equal(t, 2, s.MaxExponent())
	require.True(t, s.IsDownwardClosed())
	require.Equal(t, "{(0,0) (1,0) (2,0) (0,1) (1,1) (0,2)}", s.String())
}

func TestNew_Validation(t *testing.T) {
	_, err := multiindex.New(0, nil)
	require.ErrorIs(t, err, multiindex.ErrInvalidDimension)

	_, err = multiindex.New(2, [][]int{{0, 0}, {1}})
	require.ErrorIs(t, err, multiindex.ErrLengthMismatch)

	_, err = multiindex.New(1, [][]int{{0}, {-1}})
	require.ErrorIs(t, err, multiindex.ErrNegativeExponent)

	_, err = multiindex.New(2, [][]int{{1, 0}, {0, 0}, {1, 0}})
	require.ErrorIs(t, err, multiindex.ErrDuplicateExponent)
}

func TestNew_CopiesInput(t *testing.T) {
	in := [][]int{{0}, {1}}
	s, err := multiindex.New(1, in)
	require.NoError(t, err)

	in[1][0] = 7 // mutate caller slice
	alpha, err := s.Exponent(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, alpha)

	alpha[0] = 9 // mutate returned copy
	again, _ := s.Exponent(1)
	require.Equal(t, []int{1}, again)

	_, err = s.Exponent(2)
	require.ErrorIs(t, err, multiindex.ErrOutOfRange)
}

func TestIndexAndContains(t *testing.T) {
	s, err := multiindex.FromDegree(3, 2, 1)
	require.NoError(t, err)
	for i, alpha := range s.Exponents() {
		got, ok := s.Index(alpha)
		require.True(t, ok)
		require.Equal(t, i, got)
	}
	require.False(t, s.Contains([]int{2, 1, 0}))
	require.False(t, s.Contains([]int{0, 0})) // wrong length
}

func TestIsDownwardClosed(t *testing.T) {
	open, err := multiindex.New(2, [][]int{{0, 0}, {2, 0}}) // (1,0) missing
	require.NoError(t, err)
	require.False(t, open.IsDownwardClosed())

	empty, err := multiindex.Empty(3)
	require.NoError(t, err)
	require.True(t, empty.IsDownwardClosed())
	require.Equal(t, 0, empty.Len())
	require.Equal(t, -1, empty.MaxExponent())
}

func TestCompare(t *testing.T) {
	require.Equal(t, -1, multiindex.Compare([]int{5, 0}, []int{0, 1}))
	require.Equal(t, 1, multiindex.Compare([]int{1, 1}, []int{2, 0}))
	require.Equal(t, 0, multiindex.Compare([]int{1, 2}, []int{1, 2}))
}

func TestFingerprint(t *testing.T) {
	a, _ := multiindex.New(2, [][]int{{1, 0}, {0, 0}})
	b, _ := multiindex.New(2, [][]int{{0, 0}, {1, 0}})
	c, _ := multiindex.New(2, [][]int{{0, 0}, {0, 1}})
	d, _ := multiindex.New(1, nil)
	e, _ := multiindex.New(2, nil)

	require.Equal(t, a.Fingerprint(), b.Fingerprint()) // input order does not matter
	require.NotEqual(t, a.Fingerprint(), c.Fingerprint())
	require.NotEqual(t, d.Fingerprint(), e.Fingerprint()) // dimension is hashed
	require.Len(t, a.Fingerprint().String(), 64)
	require.Len(t, a.Fingerprint().Short(), 8)
}
