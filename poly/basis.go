// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"strings"
)

// Basis identifies a polynomial basis. The zero value is invalid.
type Basis uint8

const (
	BasisUnknown Basis = iota
	Canonical          // monomials x^α
	Newton             // Π_i Π_{j<α_i} (x_i - g_i[j])
	Lagrange           // cardinal functions of the grid nodes
	Chebyshev          // Π_i T_{α_i}(x_i), first kind
)

var basisNames = [...]string{
	BasisUnknown: "unknown",
	Canonical:    "canonical",
	Newton:       "newton",
	Lagrange:     "lagrange",
	Chebyshev:    "chebyshev",
}

// Bases lists every valid basis in declaration order.
func Bases() []Basis {
	return []Basis{Canonical, Newton, Lagrange, Chebyshev}
}

// Valid reports whether b is one of the declared bases.
func (b Basis) Valid() bool {
	return b >= Canonical && b <= Chebyshev
}

// String returns the lowercase basis name.
func (b Basis) String() string {
	if int(b) < len(basisNames) {
		return basisNames[b]
	}

	return fmt.Sprintf("Basis(%d)", uint8(b))
}

// ParseBasis maps a case-insensitive name to a Basis. "monomial" is accepted
// for Canonical.
func ParseBasis(s string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "canonical", "monomial":
		return Canonical, nil
	case "newton":
		return Newton, nil
	case "lagrange":
		return Lagrange, nil
	case "chebyshev":
		return Chebyshev, nil
	}

	return BasisUnknown, fmt.Errorf("ParseBasis(%q): %w", s, ErrInvalidBasis)
}
