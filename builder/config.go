// SPDX-License-Identifier: MIT
// Package: dijkbench/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil                           (stochastic builders refuse to run)
//   • weightFn = UniformIntWeightFn(1, 10)     (benchmark cost range)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means no randomness available.
	rng *rand.Rand
	// Cost generator for accepted edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with defaults and applies opts in
// order (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: UniformIntWeightFn(DefaultMinCost, DefaultMaxCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
