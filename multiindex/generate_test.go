// SPDX-License-Identifier: MIT

package multiindex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polybasis/multiindex"
)

func TestFromDegree_TotalDegree(t *testing.T) {
	s, err := multiindex.FromDegree(2, 2, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}, s.Exponents())
	require.True(t, s.IsDownwardClosed())
}

func TestFromDegree_Sizes(t *testing.T) {
	cases := []struct {
		name    string
		m, n    int
		p       float64
		wantLen int
	}{
		{"1d", 1, 4, 1, 5},
		{"total 3d", 3, 3, 1, 20},               // C(6,3)
		{"tensorial 2d", 2, 3, math.Inf(1), 16}, // 4^2
		{"euclidean 2d", 2, 2, 2, 6},            // (2,1) and (1,2) fall outside
		{"degree 0", 4, 0, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := multiindex.FromDegree(tc.m, tc.n, tc.p)
			require.NoError(t, err)
			require.Equal(t, tc.wantLen, s.Len())
			require.True(t, s.IsDownwardClosed())
		})
	}
}

func TestFromDegree_EuclideanBoundaryIncluded(t *testing.T) {
	s, err := multiindex.FromDegree(2, 5, 2)
	require.NoError(t, err)
	require.True(t, s.Contains([]int{3, 4})) // ‖(3,4)‖₂ = 5 exactly
	require.False(t, s.Contains([]int{4, 4}))
}

func TestFromDegree_Validation(t *testing.T) {
	_, err := multiindex.FromDegree(0, 2, 1)
	require.ErrorIs(t, err, multiindex.ErrInvalidDimension)
	_, err = multiindex.FromDegree(2, -1, 1)
	require.ErrorIs(t, err, multiindex.ErrInvalidDegree)
	_, err = multiindex.FromDegree(2, 2, 0.5)
	require.ErrorIs(t, err, multiindex.ErrInvalidLpDegree)
	_, err = multiindex.FromDegree(2, 2, math.NaN())
	require.ErrorIs(t, err, multiindex.ErrInvalidLpDegree)
}
