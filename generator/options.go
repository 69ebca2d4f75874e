// SPDX-License-Identifier: MIT
// Package: dsubench/generator
//
// options.go: functional options and the resolved generator config.
//
// Contract:
//   • Options are functional (type Option func(*config)), applied in order,
//     last one wins.
//   • Option constructors PANIC on meaningless inputs (nil source, nil list,
//     unknown strategy). Generate itself never panics on validated input.
//   • Determinism is explicit: seeding happens through WithSeed or WithSource.

package generator

import (
	"github.com/katalvlaran/dsubench/bucketed"
	"github.com/katalvlaran/dsubench/dsu"
	"github.com/katalvlaran/dsubench/random"
)

// config aggregates all knobs of one Generate call.
type config struct {
	// Generator handle; nil means "not configured" and is rejected.
	src *random.Source
	// Destination list to reuse; nil allocates a fresh one.
	into *bucketed.List
	// Pre-size buckets from the expected edge count.
	reserve bool
	// Disjoint-set strategy backing the connectivity bookkeeping.
	scratch dsu.Strategy
}

// newConfig resolves options over the defaults: no source, fresh list, no
// reservation, optimized scratch set.
func newConfig(opts ...Option) config {
	cfg := config{scratch: dsu.StrategyOptimized}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Generate call.
type Option func(*config)

// WithSeed creates a fresh random.Source with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = random.NewSource(seed)
	}
}

// WithSource uses an existing generator handle; its stream advances.
// Panics on nil.
func WithSource(src *random.Source) Option {
	if src == nil {
		panic("generator: WithSource(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// WithInto writes into dst instead of allocating. dst is reset first and must
// have exactly w buckets. Panics on nil.
func WithInto(dst *bucketed.List) Option {
	if dst == nil {
		panic("generator: WithInto(nil)")
	}
	return func(c *config) {
		c.into = dst
	}
}

// WithReserve pre-sizes every bucket to n·p·(n/2/w) edges before sampling.
func WithReserve() Option {
	return func(c *config) {
		c.reserve = true
	}
}

// WithScratch selects the disjoint-set strategy used during generation.
// Panics on an unknown strategy.
func WithScratch(s dsu.Strategy) Option {
	if _, err := s.MarshalText(); err != nil {
		panic("generator: WithScratch(" + s.String() + ")")
	}
	return func(c *config) {
		c.scratch = s
	}
}
