// SPDX-License-Identifier: MIT

package transform_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/polybasis/poly"
	"github.com/katalvlaran/polybasis/transform"
)

// sink to defeat dead-code elimination
var sinkPoly *poly.Polynomial

// BenchmarkApply_Cached measures the steady state: operator served from the
// cache, one MatVec per call.
func BenchmarkApply_Cached(b *testing.B) {
	for _, n := range []int{4, 8, 12} {
		b.Run(fmt.Sprintf("m=2/n=%d", n), func(b *testing.B) {
			g := mustGrid(b, 2, n, 1)
			p := mustPoly(b, poly.Canonical, randomCoeffs(1, g.Len()), g)
			tr := transform.NewCanonicalToNewton()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, err := tr.Apply(p)
				if err != nil {
					b.Fatal(err)
				}
				sinkPoly = q
			}
		})
	}
}

// BenchmarkApply_Uncached includes the operator build in every call.
func BenchmarkApply_Uncached(b *testing.B) {
	for _, n := range []int{4, 8} {
		b.Run(fmt.Sprintf("m=2/n=%d", n), func(b *testing.B) {
			g := mustGrid(b, 2, n, 1)
			p := mustPoly(b, poly.Lagrange, randomCoeffs(1, g.Len()), g)
			tr := transform.NewLagrangeToNewton(transform.WithoutCache())
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, err := tr.Apply(p)
				if err != nil {
					b.Fatal(err)
				}
				sinkPoly = q
			}
		})
	}
}
