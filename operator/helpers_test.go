// SPDX-License-Identifier: MIT

package operator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/matrix"
	"github.com/katalvlaran/polybasis/multiindex"
)

// mustGrid builds the lp-degree set (m, n, p) and its grid.
func mustGrid(tb testing.TB, m, n int, p float64, opts ...grid.Option) *grid.Grid {
	tb.Helper()
	s, err := multiindex.FromDegree(m, n, p)
	require.NoError(tb, err)
	g, err := grid.New(s, opts...)
	require.NoError(tb, err)

	return g
}

// quadratic1D is the grid of {0,1,2} on the values 0, 1, 2.
func quadratic1D(tb testing.TB) *grid.Grid {
	tb.Helper()

	return mustGrid(tb, 1, 2, 1, grid.WithGenerator(grid.Values(0, 1, 2)))
}

// rows flattens a Dense into [][]float64 for readable assertions.
func rows(tb testing.TB, d *matrix.Dense) [][]float64 {
	tb.Helper()
	out := make([][]float64, d.Rows())
	for i := range out {
		r, err := d.Row(i)
		require.NoError(tb, err)
		out[i] = r
	}

	return out
}

// equidistant01 configures equidistant values on [0, 1].
func equidistant01() []grid.Option {
	return []grid.Option{grid.WithGenerator(grid.Equidistant(0, 1))}
}
