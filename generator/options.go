// SPDX-License-Identifier: MIT
// Package: matmul/generator
//
// options.go — functional options for the generator package.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Random/Square themselves never panic.
//   • Randomness is explicit: WithSeed or WithRand. Without either, New seeds
//     a private source from the clock; there is no package-level RNG.

package generator

import (
	"math/rand" // RNG source for the generator
	"time"      // clock seed when no source is supplied
)

// DefaultBound is the exclusive upper bound of generated values: [0, 1000).
const DefaultBound int64 = 1000

// Option customizes a Generator before it is built.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// config aggregates all generator knobs; passed by value after resolution.
type config struct {
	rng   *rand.Rand // nil until resolved in newConfig
	bound int64      // > 0
}

// WithRand provides an explicit RNG. Panics on nil.
// The Generator takes the handle over; *rand.Rand is not safe for concurrent use.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithBound sets the exclusive upper bound of generated values.
// Panics when bound <= 0.
func WithBound(bound int64) Option {
	if bound <= 0 {
		panic("generator: WithBound: bound must be > 0")
	}
	return func(c *config) { c.bound = bound }
}

// newConfig applies opts over the defaults, last-writer-wins.
func newConfig(opts ...Option) config {
	c := config{bound: DefaultBound}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return c
}
