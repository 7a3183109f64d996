// SPDX-License-Identifier: MIT

// Package transform: functional configuration of a Transformation.
// Hooks run synchronously on the calling goroutine after the cache lock is
// released, so they may call back into the Transformation.

package transform

import (
	"time"

	"github.com/katalvlaran/polybasis/multiindex"
	"github.com/katalvlaran/polybasis/operator"
)

const (
	panicNilOnBuild    = "transform: WithOnBuild(nil)"
	panicNilOnCacheHit = "transform: WithOnCacheHit(nil)"
)

// Event describes one operator build or cache hit.
type Event struct {
	Pair        operator.Pair          // transformation pair
	Fingerprint multiindex.Fingerprint // grid fingerprint (cache key)
	Dim         int                    // operator side length
	Elapsed     time.Duration          // build time; zero for cache hits
}

// Option configures a Transformation.
type Option func(*options)

type options struct {
	cache      bool        // memoise operators per grid fingerprint
	onBuild    func(Event) // after every successful build
	onCacheHit func(Event) // on every cache hit
}

// WithoutCache makes every Operator call rebuild.
func WithoutCache() Option {
	return func(o *options) { o.cache = false }
}

// WithOnBuild registers a hook called after each successful build.
// Panics on nil.
func WithOnBuild(fn func(Event)) Option {
	if fn == nil {
		panic(panicNilOnBuild)
	}

	return func(o *options) { o.onBuild = fn }
}

// WithOnCacheHit registers a hook called whenever a cached operator is
// served. Panics on nil.
func WithOnCacheHit(fn func(Event)) Option {
	if fn == nil {
		panic(panicNilOnCacheHit)
	}

	return func(o *options) { o.onCacheHit = fn }
}

func gatherOptions(opts ...Option) options {
	o := options{
		cache:      true,
		onBuild:    func(Event) {},
		onCacheHit: func(Event) {},
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
