// SPDX-License-Identifier: MIT
// Package: dijkbench/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Generate is the benchmark's Graph Generator: RandomSparse + textgraph.Format.
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/dijkbench/core"
	"github.com/katalvlaran/dijkbench/textgraph"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned; no partial graph is
// returned.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Generate samples RandomSparse(n, DefaultProbability) and returns it in
// the "<i>-<j>-<cost>" line format, newline separated with no trailing
// newline. A graph with no edges yields "".
//
// Costs default to U{1..10}; pass WithRand or WithSeed to supply entropy.
func Generate(n int, opts ...BuilderOption) (string, error) {
	g, err := GenerateGraph(n, DefaultProbability, opts...)
	if err != nil {
		return "", err
	}

	return textgraph.Format(g), nil
}

// GenerateGraph is Generate with an explicit probability, returning the
// graph itself.
func GenerateGraph(n int, p float64, opts ...BuilderOption) (*core.Graph, error) {
	g, err := BuildGraph(opts, RandomSparse(n, p))
	if err != nil {
		return nil, fmt.Errorf("Generate(n=%d): %w", n, err)
	}

	return g, nil
}
