// SPDX-License-Identifier: MIT
// Package: dijkbench/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently
//     with probability p. Accepted edges get a cost from cfg.weightFn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng non-nil whenever 0 < p < 1 (else ErrNeedRandSource).
//   - Grows g to n vertices even if no edge is accepted.
//   - Inclusion test is strict: rng.Float64() < p. With p == 0 nothing is
//     accepted, with p == 1 everything is, and neither case draws a Float64.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Trial order: i asc, then j asc with j > i.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkbench/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// DefaultProbability is the per-pair edge inclusion probability of the
// benchmark graphs.
const DefaultProbability = 0.3

// RandomSparse returns a Constructor that samples G(n,p) into g.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before touching g.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1 exist regardless of the sampled edge set.
		if err := g.EnsureVertices(n); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		rng := cfg.rng
		var (
			i, j int
			w    int64
		)
		// 3) One trial per unordered pair in lexicographic order.
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if p == probMin {
					continue
				}
				if stochastic && rng.Float64() >= p {
					continue
				}
				w = cfg.weightFn(rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", methodRandomSparse, i, j, w, err)
				}
			}
		}

		return nil
	}
}
