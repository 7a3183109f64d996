// SPDX-License-Identifier: MIT

// Package operator - Registry keyed by basis pair.
//
// A Registry maps (origin, target) to a BuildFunc. Primitives are registered
// directly; other pairs are derived with RegisterComposed (chain through an
// intermediate basis) or RegisterInverse (LU inverse of the reverse pair).
// origin == target always resolves to Identity and is never stored.
//
// Concurrency: registration and lookup are guarded by a RWMutex, so a shared
// Registry may keep serving Lookup/Build while late registrations happen.

package operator

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/poly"
)

// registry tags
const (
	opRegister         = "Registry.Register"
	opRegisterComposed = "Registry.RegisterComposed"
	opRegisterInverse  = "Registry.RegisterInverse"
	opLookup           = "Registry.Lookup"
	opBuild            = "Registry.Build"
)

// Registry is a concurrency-safe table of basis-pair builders.
type Registry struct {
	mu       sync.RWMutex
	builders map[Pair]BuildFunc
	opts     options
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	return &Registry{
		builders: make(map[Pair]BuildFunc),
		opts:     gatherOptions(opts...),
	}
}

// ConditionLimit returns the ceiling applied by RegisterInverse.
func (r *Registry) ConditionLimit() float64 { return r.opts.condLimit }

// Register stores fn for (origin, target).
//
// Errors: ErrInvalidBasis, ErrNilBuilder, ErrDuplicatePair (also for
// origin == target, which is served by Identity).
func (r *Registry) Register(origin, target poly.Basis, fn BuildFunc) error {
	pair := Pair{Origin: origin, Target: target}
	if !pair.Valid() {
		return operatorErrorf(opRegister, fmt.Errorf("%v: %w", pair, ErrInvalidBasis))
	}
	if fn == nil {
		return operatorErrorf(opRegister, fmt.Errorf("%v: %w", pair, ErrNilBuilder))
	}
	if origin == target {
		return operatorErrorf(opRegister, fmt.Errorf("%v is the identity: %w", pair, ErrDuplicatePair))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.builders[pair]; exists {
		return operatorErrorf(opRegister, fmt.Errorf("%v: %w", pair, ErrDuplicatePair))
	}
	r.builders[pair] = fn

	return nil
}

// RegisterComposed registers origin→target as (via→target)·(origin→via).
// Both legs must already resolve (ErrUnsupportedPair otherwise).
func (r *Registry) RegisterComposed(origin, via, target poly.Basis) error {
	inner, err := r.Lookup(origin, via)
	if err != nil {
		return operatorErrorf(opRegisterComposed, err)
	}
	outer, err := r.Lookup(via, target)
	if err != nil {
		return operatorErrorf(opRegisterComposed, err)
	}
	if err = r.Register(origin, target, Compose(outer, inner)); err != nil {
		return operatorErrorf(opRegisterComposed, err)
	}

	return nil
}

// RegisterInverse registers origin→target as the LU inverse of the already
// registered target→origin builder, guarded by ConditionLimit().
func (r *Registry) RegisterInverse(origin, target poly.Basis) error {
	fwd, err := r.Lookup(target, origin)
	if err != nil {
		return operatorErrorf(opRegisterInverse, err)
	}
	if err = r.Register(origin, target, Invert(fwd, r.opts.condLimit)); err != nil {
		return operatorErrorf(opRegisterInverse, err)
	}

	return nil
}

// Lookup returns the builder for (origin, target); Identity when equal.
// Errors: ErrInvalidBasis, ErrUnsupportedPair.
func (r *Registry) Lookup(origin, target poly.Basis) (BuildFunc, error) {
	pair := Pair{Origin: origin, Target: target}
	if !pair.Valid() {
		return nil, operatorErrorf(opLookup, fmt.Errorf("%v: %w", pair, ErrInvalidBasis))
	}
	if origin == target {
		return Identity, nil
	}

	r.mu.RLock()
	fn, ok := r.builders[pair]
	r.mu.RUnlock()
	if !ok {
		return nil, operatorErrorf(opLookup, fmt.Errorf("%v: %w", pair, ErrUnsupportedPair))
	}

	return fn, nil
}

// Build resolves the pair and builds its Operator on g.
func (r *Registry) Build(origin, target poly.Basis, g *grid.Grid) (*Operator, error) {
	fn, err := r.Lookup(origin, target)
	if err != nil {
		return nil, operatorErrorf(opBuild, err)
	}
	if g == nil {
		return nil, operatorErrorf(opBuild, ErrNilGrid)
	}
	m, err := fn(g)
	if err != nil {
		return nil, operatorErrorf(opBuild, err)
	}

	return New(Pair{Origin: origin, Target: target}, m)
}

// Supports reports whether (origin, target) resolves.
func (r *Registry) Supports(origin, target poly.Basis) bool {
	_, err := r.Lookup(origin, target)

	return err == nil
}

// Pairs returns the registered pairs ordered by origin, then target.
// Identity pairs are implicit and not listed.
func (r *Registry) Pairs() []Pair {
	r.mu.RLock()
	pairs := maps.Keys(r.builders)
	r.mu.RUnlock()

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Origin != pairs[j].Origin {
			return pairs[i].Origin < pairs[j].Origin
		}

		return pairs[i].Target < pairs[j].Target
	})

	return pairs
}

// DefaultRegistry returns a registry with all twelve ordered pairs of
// Canonical, Newton, Lagrange and Chebyshev:
//
//	primitives  N→C C→N N→L L→N C→L T→C C→T T→L
//	composed    L→C = (N→C)(L→N)   N→T = (C→T)(N→C)   T→N = (C→N)(T→C)
//	inverted    L→T = (T→L)^-1
func DefaultRegistry(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	for _, p := range []struct {
		origin, target poly.Basis
		fn             BuildFunc
	}{
		{poly.Newton, poly.Canonical, NewtonToCanonical},
		{poly.Canonical, poly.Newton, CanonicalToNewton},
		{poly.Newton, poly.Lagrange, NewtonToLagrange},
		{poly.Lagrange, poly.Newton, LagrangeToNewton},
		{poly.Canonical, poly.Lagrange, CanonicalToLagrange},
		{poly.Chebyshev, poly.Canonical, ChebyshevToCanonical},
		{poly.Canonical, poly.Chebyshev, CanonicalToChebyshev},
		{poly.Chebyshev, poly.Lagrange, ChebyshevToLagrange},
	} {
		must(r.Register(p.origin, p.target, p.fn))
	}
	must(r.RegisterComposed(poly.Lagrange, poly.Newton, poly.Canonical))
	must(r.RegisterComposed(poly.Newton, poly.Canonical, poly.Chebyshev))
	must(r.RegisterComposed(poly.Chebyshev, poly.Canonical, poly.Newton))
	must(r.RegisterInverse(poly.Lagrange, poly.Chebyshev))

	return r
}

// must panics on registration errors of the fixed default table.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
