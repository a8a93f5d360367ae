// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options. Option constructors panic on meaningless input.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on
// nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
