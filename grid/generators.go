// SPDX-License-Identifier: MIT

// Package grid - generating value generators.
//
// A Generator returns exactly n values for one dimension. Built-ins:
//   - LejaChebyshevLobatto: extrema of T_{n-1} on [-1, 1] in Leja order.
//   - Equidistant(a, b): n evenly spaced values from a to b inclusive.
//   - Values(v...): a fixed list, truncated to n.

package grid

import (
	"fmt"
	"math"
)

// Generator produces n generating values for a single dimension.
type Generator func(n int) ([]float64, error)

// LejaChebyshevLobatto returns the n Chebyshev–Lobatto points
// cos(kπ/(n-1)), k = 0..n-1, reordered as a Leja sequence: the first value
// has the largest magnitude, each next one maximizes the product of
// distances to all values already chosen. Ties keep the lower original
// index. For n == 1 the single point is 0.
//
// Leja ordering makes every prefix a well-spread point set, so nested
// multi-index sets reuse their lower-degree nodes.
// Complexity: Time O(n^2), Space O(n).
func LejaChebyshevLobatto(n int) ([]float64, error) {
	switch {
	case n < 0:
		return nil, fmt.Errorf("LejaChebyshevLobatto: n=%d: %w", n, ErrOutOfRange)
	case n == 0:
		return []float64{}, nil
	case n == 1:
		return []float64{0}, nil
	}

	points := make([]float64, n)
	for k := range points {
		points[k] = math.Cos(float64(k) * math.Pi / float64(n-1))
	}

	return lejaOrder(points), nil
}

// lejaOrder returns a Leja-ordered copy of points.
func lejaOrder(points []float64) []float64 {
	n := len(points)
	out := make([]float64, 0, n)
	used := make([]bool, n)
	prod := make([]float64, n) // running Π |p_k - chosen|

	first := 0
	for k := 1; k < n; k++ {
		if math.Abs(points[k]) > math.Abs(points[first]) {
			first = k
		}
	}
	used[first] = true
	out = append(out, points[first])
	for k := range prod {
		prod[k] = math.Abs(points[k] - points[first])
	}

	for len(out) < n {
		next := -1
		for k := 0; k < n; k++ {
			if used[k] {
				continue
			}
			if next < 0 || prod[k] > prod[next] {
				next = k
			}
		}
		used[next] = true
		out = append(out, points[next])
		for k := range prod {
			prod[k] *= math.Abs(points[k] - points[next])
		}
	}

	return out
}

// Equidistant returns a Generator for n evenly spaced values from a to b,
// both included. n == 1 yields {a}.
func Equidistant(a, b float64) Generator {
	return func(n int) ([]float64, error) {
		if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) || a >= b {
			return nil, fmt.Errorf("Equidistant(%v,%v): %w", a, b, ErrInvalidInterval)
		}
		if n < 0 {
			return nil, fmt.Errorf("Equidistant: n=%d: %w", n, ErrOutOfRange)
		}
		out := make([]float64, n)
		if n == 1 {
			out[0] = a

			return out, nil
		}
		step := (b - a) / float64(n-1)
		for k := range out {
			out[k] = a + float64(k)*step
		}
		if n > 1 {
			out[n-1] = b // avoid drift on the right end
		}

		return out, nil
	}
}

// Values returns a Generator that serves a copy of the first n entries of v,
// or ErrTooFewValues when v is shorter than n.
func Values(v ...float64) Generator {
	vals := append([]float64(nil), v...)

	return func(n int) ([]float64, error) {
		if n < 0 {
			return nil, fmt.Errorf("Values: n=%d: %w", n, ErrOutOfRange)
		}
		if len(vals) < n {
			return nil, fmt.Errorf("Values: have %d, need %d: %w", len(vals), n, ErrTooFewValues)
		}

		return append([]float64(nil), vals[:n]...), nil
	}
}
