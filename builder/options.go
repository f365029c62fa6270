// SPDX-License-Identifier: MIT
// Package: dijkbench/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Seeding is explicit: WithSeed or WithRand. No hidden globals.

package builder

import "math/rand"

// BuilderOption customizes a constructor by mutating builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. The caller keeps ownership; the stream
// advances as the builder draws from it. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a fresh *rand.Rand from seed.
// Use this in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge cost generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformIntWeight sets costs ∼ U{min..max} via UniformIntWeightFn.
func WithUniformIntWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformIntWeightFn(min, max))
}

// WithConstantWeight sets every cost to w via ConstantWeightFn.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}
