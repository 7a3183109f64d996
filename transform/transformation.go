// SPDX-License-Identifier: MIT

// Package transform - Transformation: pair, builder and operator cache.

package transform

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/polybasis/grid"
	"github.com/katalvlaran/polybasis/multiindex"
	"github.com/katalvlaran/polybasis/operator"
	"github.com/katalvlaran/polybasis/poly"
)

// operation tags
const (
	opNew      = "transform.New"
	opBind     = "Transformation.Bind"
	opOperator = "Transformation.Operator"
	opApply    = "Transformation.Apply"
)

// Transformation converts polynomials of one basis into another.
type Transformation struct {
	pair  operator.Pair
	build operator.BuildFunc
	opts  options

	mu    sync.RWMutex
	cache map[multiindex.Fingerprint]*operator.Operator
}

// New returns the transformation of (origin, target) driven by build.
// Errors: operator.ErrInvalidBasis, operator.ErrNilBuilder.
func New(origin, target poly.Basis, build operator.BuildFunc, opts ...Option) (*Transformation, error) {
	pair := operator.Pair{Origin: origin, Target: target}
	if !pair.Valid() {
		return nil, transformErrorf(opNew, fmt.Errorf("%v: %w", pair, operator.ErrInvalidBasis))
	}
	if build == nil {
		return nil, transformErrorf(opNew, fmt.Errorf("%v: %w", pair, operator.ErrNilBuilder))
	}

	return &Transformation{
		pair:  pair,
		build: build,
		opts:  gatherOptions(opts...),
		cache: make(map[multiindex.Fingerprint]*operator.Operator),
	}, nil
}

// Origin returns the basis accepted by Bind.
func (t *Transformation) Origin() poly.Basis { return t.pair.Origin }

// Target returns the basis of produced polynomials.
func (t *Transformation) Target() poly.Basis { return t.pair.Target }

// Pair returns (Origin, Target).
func (t *Transformation) Pair() operator.Pair { return t.pair }

// Bind checks that p is in the origin basis and returns a Binding for it.
// No operator is built here.
//
// Errors: ErrNilPolynomial, ErrTypeMismatch.
func (t *Transformation) Bind(p *poly.Polynomial) (*Binding, error) {
	if p == nil {
		return nil, transformErrorf(opBind, ErrNilPolynomial)
	}
	if p.Basis() != t.pair.Origin {
		return nil, transformErrorf(opBind, fmt.Errorf("got %v, want %v: %w", p.Basis(), t.pair.Origin, ErrTypeMismatch))
	}

	return &Binding{t: t, origin: p}, nil
}

// Operator returns the operator for g, building it on the first request per
// grid fingerprint. Hooks fire after the cache lock is released.
//
// Implementation:
//   - Stage 1: read-locked cache lookup.
//   - Stage 2: on a miss take the write lock and look again, since another
//     goroutine may have built it meanwhile.
//   - Stage 3: build, validate, publish, unlock, then fire OnBuild.
func (t *Transformation) Operator(g *grid.Grid) (*operator.Operator, error) {
	if g == nil {
		return nil, transformErrorf(opOperator, operator.ErrNilGrid)
	}
	if !t.opts.cache {
		op, ev, err := t.buildFor(g)
		if err != nil {
			return nil, err
		}
		t.opts.onBuild(ev)

		return op, nil
	}
	key := g.Fingerprint()

	t.mu.RLock()
	op, ok := t.cache[key]
	t.mu.RUnlock()
	if ok {
		t.opts.onCacheHit(Event{Pair: t.pair, Fingerprint: key, Dim: op.Dim()})
		return op, nil
	}

	t.mu.Lock()
	if op, ok = t.cache[key]; ok {
		t.mu.Unlock()
		t.opts.onCacheHit(Event{Pair: t.pair, Fingerprint: key, Dim: op.Dim()})
		return op, nil
	}
	op, ev, err := t.buildFor(g)
	if err != nil {
		t.mu.Unlock()
		return nil, err
	}
	t.cache[key] = op
	t.mu.Unlock()
	t.opts.onBuild(ev)

	return op, nil
}

// buildFor invokes the builder and wraps the result. The returned Event is
// for the caller to publish once no lock is held.
func (t *Transformation) buildFor(g *grid.Grid) (*operator.Operator, Event, error) {
	start := time.Now()
	m, err := t.build(g)
	if err != nil {
		return nil, Event{}, transformErrorf(opOperator, fmt.Errorf("%v: %w", t.pair, err))
	}
	op, err := operator.New(t.pair, m)
	if err != nil {
		return nil, Event{}, transformErrorf(opOperator, err)
	}

	return op, Event{Pair: t.pair, Fingerprint: g.Fingerprint(), Dim: op.Dim(), Elapsed: time.Since(start)}, nil
}

// Apply binds p and transforms it.
func (t *Transformation) Apply(p *poly.Polynomial) (*poly.Polynomial, error) {
	b, err := t.Bind(p)
	if err != nil {
		return nil, transformErrorf(opApply, err)
	}

	return b.Transform()
}

// CacheLen returns the number of cached operators.
func (t *Transformation) CacheLen() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.cache)
}

// ClearCache drops every cached operator.
func (t *Transformation) ClearCache() {
	t.mu.Lock()
	clear(t.cache)
	t.mu.Unlock()
}
