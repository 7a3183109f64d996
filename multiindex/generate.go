// SPDX-License-Identifier: MIT

// Package multiindex - lp-degree set generation.
//
// FromDegree enumerates the box [0, n]^m with an odometer whose first digit
// turns fastest. That walk visits tuples exactly in canonical order, so no
// sort is needed and the result is adopted as is.

package multiindex

import (
	"fmt"
	"math"
)

const opFromDegree = "FromDegree"

// lpTolerance absorbs rounding in Σ α_i^p when the norm equals n exactly
// (e.g. p = 2, α = (3,4), n = 5).
const lpTolerance = 1e-9

// FromDegree returns every α ∈ ℕ^m with ‖α‖_p ≤ n.
//
//   - p = 1 gives the total-degree set, p = +Inf the tensorial (box) set,
//     p = 2 the Euclidean set.
//   - The result is downward closed for every valid p.
//
// Errors: ErrInvalidDimension (m < 1), ErrInvalidDegree (n < 0),
// ErrInvalidLpDegree (p NaN or < 1).
// Complexity: Time O(m·(n+1)^m), Space O(m·N).
func FromDegree(m, n int, p float64) (*Set, error) {
	if m < 1 {
		return nil, setErrorf(opFromDegree, fmt.Errorf("m=%d: %w", m, ErrInvalidDimension))
	}
	if n < 0 {
		return nil, setErrorf(opFromDegree, fmt.Errorf("n=%d: %w", n, ErrInvalidDegree))
	}
	if math.IsNaN(p) || p < 1 {
		return nil, setErrorf(opFromDegree, fmt.Errorf("p=%v: %w", p, ErrInvalidLpDegree))
	}

	var exps [][]int
	alpha := make([]int, m)
	for {
		if withinDegree(alpha, n, p) {
			exps = append(exps, append([]int(nil), alpha...))
		}
		// odometer step, first coordinate fastest
		i := 0
		for ; i < m; i++ {
			alpha[i]++
			if alpha[i] <= n {
				break
			}
			alpha[i] = 0
		}
		if i == m {
			break
		}
	}

	return newSorted(m, exps), nil
}

// withinDegree reports ‖alpha‖_p ≤ n.
func withinDegree(alpha []int, n int, p float64) bool {
	if math.IsInf(p, 1) {
		for _, v := range alpha {
			if v > n {
				return false
			}
		}

		return true
	}
	var sum float64
	for _, v := range alpha {
		sum += math.Pow(float64(v), p)
	}

	return math.Pow(sum, 1/p) <= float64(n)+lpTolerance
}
