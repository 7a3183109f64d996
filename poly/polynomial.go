// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/multiindex"
)

// Polynomial is an immutable coefficient vector in a given basis over a grid.
type Polynomial struct {
	basis  Basis
	coeffs []float64  // owned copy, len == grid.Len()
	grid   *grid.Grid // shared, read-only
}

// New validates and copies coeffs.
//
// Errors: ErrInvalidBasis, ErrNilGrid, ErrCoefficientCount, ErrNaNInf.
func New(basis Basis, coeffs []float64, g *grid.Grid) (*Polynomial, error) {
	if !basis.Valid() {
		return nil, fmt.Errorf("poly.New: %v: %w", basis, ErrInvalidBasis)
	}
	if g == nil {
		return nil, fmt.Errorf("poly.New: %w", ErrNilGrid)
	}
	if len(coeffs) != g.Len() {
		return nil, fmt.Errorf("poly.New: %d coefficients for %d multi-indices: %w", len(coeffs), g.Len(), ErrCoefficientCount)
	}
	for i, c := range coeffs {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("poly.New: coefficient %d: %w", i, ErrNaNInf)
		}
	}

	return &Polynomial{basis: basis, coeffs: append([]float64{}, coeffs...), grid: g}, nil
}

// Basis returns the basis tag.
func (p *Polynomial) Basis() Basis { return p.basis }

// Coeffs returns a copy of the coefficient vector.
func (p *Polynomial) Coeffs() []float64 { return append([]float64{}, p.coeffs...) }

// Coeff returns coefficient i.
func (p *Polynomial) Coeff(i int) (float64, error) {
	if i < 0 || i >= len(p.coeffs) {
		return 0, fmt.Errorf("Polynomial.Coeff(%d): %w", i, ErrOutOfRange)
	}

	return p.coeffs[i], nil
}

// Len returns the number of coefficients.
func (p *Polynomial) Len() int { return len(p.coeffs) }

// Grid returns the shared grid.
func (p *Polynomial) Grid() *grid.Grid { return p.grid }

// MultiIndex returns the grid's multi-index set.
func (p *Polynomial) MultiIndex() *multiindex.Set { return p.grid.MultiIndex() }

// SpatialDimension returns the number of variables.
func (p *Polynomial) SpatialDimension() int { return p.grid.SpatialDimension() }

// String renders the basis and coefficients, e.g. "newton[1 1 1]".
func (p *Polynomial) String() string {
	return fmt.Sprintf("%s%v", p.basis, p.coeffs)
}
