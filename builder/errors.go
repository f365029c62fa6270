// SPDX-License-Identifier: MIT
// Package: dijkbench/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates a vertex count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithRand/WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not run a constructor
// (e.g. a nil Constructor in the list).
var ErrConstructFailed = errors.New("builder: construction failed")
