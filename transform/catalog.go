// SPDX-License-Identifier: MIT

// Package transform - Catalog: one Transformation per registered pair.

package transform

import (
	"fmt"

	"github.com/katalvlaran/polybasis/operator"
	"github.com/katalvlaran/polybasis/poly"
)

const (
	opCatalogGet     = "Catalog.Get"
	opCatalogConvert = "Catalog.Convert"
)

// Catalog maps basis pairs to ready Transformations. It is built once and
// read-only afterwards, so concurrent Get/Convert need no locking.
type Catalog struct {
	reg   *operator.Registry
	items map[operator.Pair]*Transformation
}

// NewCatalog snapshots reg (DefaultRegistry when nil) into one
// Transformation per registered pair plus the identity of every basis.
// Pairs registered on reg afterwards are not picked up.
func NewCatalog(reg *operator.Registry, opts ...Option) *Catalog {
	if reg == nil {
		reg = operator.DefaultRegistry()
	}
	c := &Catalog{reg: reg, items: make(map[operator.Pair]*Transformation)}
	for _, b := range poly.Bases() {
		c.add(operator.Pair{Origin: b, Target: b}, operator.Identity, opts)
	}
	for _, p := range reg.Pairs() {
		fn, err := reg.Lookup(p.Origin, p.Target)
		if err != nil {
			continue // listed pairs always resolve
		}
		c.add(p, fn, opts)
	}

	return c
}

func (c *Catalog) add(p operator.Pair, fn operator.BuildFunc, opts []Option) {
	t, err := New(p.Origin, p.Target, fn, opts...)
	if err != nil {
		panic(err) // pairs come from a registry and are valid
	}
	c.items[p] = t
}

// Registry returns the registry the catalog was built from.
func (c *Catalog) Registry() *operator.Registry { return c.reg }

// Get returns the transformation of (origin, target).
// Errors: operator.ErrUnsupportedPair.
func (c *Catalog) Get(origin, target poly.Basis) (*Transformation, error) {
	pair := operator.Pair{Origin: origin, Target: target}
	t, ok := c.items[pair]
	if !ok {
		return nil, transformErrorf(opCatalogGet, fmt.Errorf("%v: %w", pair, operator.ErrUnsupportedPair))
	}

	return t, nil
}

// Convert returns p expressed in the target basis.
func (c *Catalog) Convert(p *poly.Polynomial, target poly.Basis) (*poly.Polynomial, error) {
	if p == nil {
		return nil, transformErrorf(opCatalogConvert, ErrNilPolynomial)
	}
	t, err := c.Get(p.Basis(), target)
	if err != nil {
		return nil, transformErrorf(opCatalogConvert, err)
	}

	return t.Apply(p)
}

// Pairs returns the non-identity pairs in registry order.
func (c *Catalog) Pairs() []operator.Pair {
	out := make([]operator.Pair, 0, len(c.items))
	for _, p := range c.reg.Pairs() {
		if _, ok := c.items[p]; ok {
			out = append(out, p)
		}
	}

	return out
}
