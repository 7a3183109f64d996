// SPDX-License-Identifier: MIT

// Command polybasis converts polynomial coefficient vectors between the
// canonical, Newton, Lagrange and Chebyshev bases on a multi-index grid.
//
// Usage:
//
//	polybasis <command> [flags] [coefficients ...]
//
// Commands:
//
//	pairs      list supported (origin, target) pairs
//	operator   print the basis-change matrix of a pair
//	transform  convert a coefficient vector
//	roundtrip  report |B·A - I| statistics for a pair and its reverse
//
// Examples:
//
//	polybasis pairs
//	polybasis operator -m 1 -n 2 -points equidistant -from canonical -to newton
//	polybasis transform -m 1 -n 2 -values 0,1,2 -from canonical -to newton 1 0 1
//	polybasis roundtrip -m 3 -n 4 -p 2 -from canonical -to lagrange
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("polybasis: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
