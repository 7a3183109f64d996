// SPDX-License-Identifier: MIT

package operator_test

import (
	"fmt"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/multiindex"
	"github.com/katalvlaran/polybasis/operator"
	"github.com/katalvlaran/polybasis/poly"
)

// ExampleRegistry_Build converts 1 + x² from monomial to Newton coefficients
// on the nodes 0, 1, 2 and back.
func ExampleRegistry_Build() {
	set, _ := multiindex.FromDegree(1, 2, 1)
	g, _ := grid.New(set, grid.WithGenerator(grid.Values(0, 1, 2)))
	r := operator.DefaultRegistry()

	toNewton, err := r.Build(poly.Canonical, poly.Newton, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	newton, _ := toNewton.Apply([]float64{1, 0, 1})
	fmt.Println(toNewton.Pair(), newton)

	toCanonical, _ := r.Build(poly.Newton, poly.Canonical, g)
	canonical, _ := toCanonical.Apply(newton)
	fmt.Println(toCanonical.Pair(), canonical)
	// Output:
	// canonical->newton [1 1 1]
	// newton->canonical [1 0 1]
}
