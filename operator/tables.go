// SPDX-License-Identifier: MIT

// Package operator - one-dimensional tables.
//
// Every operator entry factorizes over coordinates, so all builders reduce to
// (n+1)×(n+1) tables per dimension, n = MaxExponent():
//
//	coefficient tables  tab[k][j] = coefficient of t^j in the k-th basis polynomial
//	evaluation tables   tab[k][b] = k-th basis polynomial at the b-th generating value
//
// and tensorProduct multiplies the matching factors.

package operator

// newtonCoefficients returns c[k][j], the coefficient of t^j in
// Π_{l<k} (t - g[l]), from c[k+1][j] = c[k][j-1] - g[k]·c[k][j].
func newtonCoefficients(g []float64) [][]float64 {
	n := len(g)
	c := square(n)
	if n == 0 {
		return c
	}
	c[0][0] = 1
	for k := 0; k+1 < n; k++ {
		for j := 0; j <= k+1; j++ {
			v := -g[k] * c[k][j]
			if j > 0 {
				v += c[k][j-1]
			}
			c[k+1][j] = v
		}
	}

	return c
}

// chebyshevCoefficients returns t[k][j], the coefficient of t^j in the
// first-kind Chebyshev polynomial T_k, from T_{k+1} = 2tT_k - T_{k-1}.
func chebyshevCoefficients(n int) [][]float64 {
	t := square(n)
	if n == 0 {
		return t
	}
	t[0][0] = 1
	if n > 1 {
		t[1][1] = 1
	}
	for k := 1; k+1 < n; k++ {
		for j := 0; j <= k+1; j++ {
			v := -t[k-1][j]
			if j > 0 {
				v += 2 * t[k][j-1]
			}
			t[k+1][j] = v
		}
	}

	return t
}

// newtonValues returns e[k][b] = Π_{l<k} (g[b] - g[l]). Entries with b < k
// vanish, which makes Newton→Lagrange lower triangular.
func newtonValues(g []float64) [][]float64 {
	n := len(g)
	e := square(n)
	for b := 0; b < n; b++ {
		e[0][b] = 1
		for k := 0; k+1 < n; k++ {
			e[k+1][b] = e[k][b] * (g[b] - g[k])
		}
	}

	return e
}

// powerValues returns p[k][b] = g[b]^k.
func powerValues(g []float64) [][]float64 {
	n := len(g)
	p := square(n)
	for b := 0; b < n; b++ {
		p[0][b] = 1
		for k := 0; k+1 < n; k++ {
			p[k+1][b] = p[k][b] * g[b]
		}
	}

	return p
}

// chebyshevValues returns t[k][b] = T_k(g[b]).
func chebyshevValues(g []float64) [][]float64 {
	n := len(g)
	t := square(n)
	for b := 0; b < n; b++ {
		t[0][b] = 1
		if n > 1 {
			t[1][b] = g[b]
		}
		for k := 1; k+1 < n; k++ {
			t[k+1][b] = 2*g[b]*t[k][b] - t[k-1][b]
		}
	}

	return t
}

// square allocates an n×n zero table backed by one buffer.
func square(n int) [][]float64 {
	buf := make([]float64, n*n)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = buf[i*n : (i+1)*n]
	}

	return rows
}

// tensorProduct fills the N×N row-major buffer
//
//	out[row][col] = Π_d tabs[d][exps[col][d]][exps[row][d]]
//
// The column multi-index selects the basis polynomial, the row multi-index
// selects the monomial degree (coefficient tables) or the node (evaluation
// tables). A zero factor short-circuits the product.
// Complexity: Time O(N^2·m), Space O(N^2).
func tensorProduct(exps [][]int, tabs [][][]float64) []float64 {
	n := len(exps)
	out := make([]float64, n*n)
	var (
		row, col, d int
		v           float64
	)
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			v = 1
			for d = range tabs {
				v *= tabs[d][exps[col][d]][exps[row][d]]
				if v == 0 {
					break
				}
			}
			out[row*n+col] = v
		}
	}

	return out
}
