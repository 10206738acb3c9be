// SPDX-License-Identifier: MIT
// Package: sepline/pointset
//
// options.go — functional options for Build.
//
// Option constructors panic on meaningless input; generators never panic.

package pointset

import "math/rand"

// Option customizes a Build call by mutating its config.
type Option func(*config)

// WithSeed creates a seeded *rand.Rand for stochastic generators.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithOffset translates every emitted point by (dx, dy).
func WithOffset(dx, dy int) Option {
	return func(c *config) {
		c.dx, c.dy = dx, dy
	}
}
