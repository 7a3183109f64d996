// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/multiindex"
	"github.com/katalvlaran/polybasis/poly"
)

// approx compares float slices with relative and absolute slack 1e-9.
var approx = cmpopts.EquateApprox(1e-9, 1e-9)

// requireApprox fails with a go-cmp diff when want and got differ.
func requireApprox(tb testing.TB, want, got []float64, msgAndArgs ...interface{}) {
	tb.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		require.FailNow(tb, "coefficients differ (-want +got):\n"+diff, msgAndArgs...)
	}
}

func mustGrid(tb testing.TB, m, n int, p float64, opts ...grid.Option) *grid.Grid {
	tb.Helper()
	s, err := multiindex.FromDegree(m, n, p)
	require.NoError(tb, err)
	g, err := grid.New(s, opts...)
	require.NoError(tb, err)

	return g
}

func mustPoly(tb testing.TB, b poly.Basis, coeffs []float64, g *grid.Grid) *poly.Polynomial {
	tb.Helper()
	p, err := poly.New(b, coeffs, g)
	require.NoError(tb, err)

	return p
}

// randomCoeffs returns n values in [-1, 1) from a fixed seed.
func randomCoeffs(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = 2*rng.Float64() - 1
	}

	return out
}

// testGrids are the grids every pair is exercised on.
func testGrids(tb testing.TB) map[string]*grid.Grid {
	return map[string]*grid.Grid{
		"1d degree 5":       mustGrid(tb, 1, 5, 1),
		"2d total degree 4": mustGrid(tb, 2, 4, 1),
		"3d euclidean 3":    mustGrid(tb, 3, 3, 2),
	}
}

// The evaluators below exist for checking only: each sums coefficient times
// basis function at x, straight from the basis definition.

func evalCanonical(p *poly.Polynomial, x []float64) float64 {
	var sum float64
	for i, alpha := range p.MultiIndex().Exponents() {
		term, _ := p.Coeff(i)
		for d, a := range alpha {
			term *= math.Pow(x[d], float64(a))
		}
		sum += term
	}

	return sum
}

func evalNewton(p *poly.Polynomial, x []float64) float64 {
	g := p.Grid()
	var sum float64
	for i, alpha := range p.MultiIndex().Exponents() {
		term, _ := p.Coeff(i)
		for d, a := range alpha {
			values, _ := g.GeneratingValues(d)
			for j := 0; j < a; j++ {
				term *= x[d] - values[j]
			}
		}
		sum += term
	}

	return sum
}

func evalChebyshev(p *poly.Polynomial, x []float64) float64 {
	var sum float64
	for i, alpha := range p.MultiIndex().Exponents() {
		term, _ := p.Coeff(i)
		for d, a := range alpha {
			term *= math.Cos(float64(a) * math.Acos(x[d])) // x in [-1, 1]
		}
		sum += term
	}

	return sum
}
