// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Graph, GraphOption, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexCount indicates a vertex count below zero.
	ErrNegativeVertexCount = errors.New("core: negative vertex count")

	// ErrVertexNotFound indicates an edge endpoint outside [0, VertexCount()).
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates an edge weight below MinWeight.
	ErrBadWeight = errors.New("core: bad weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// MinWeight is the smallest admissible edge cost.
const MinWeight int64 = 1

// Edge is an undirected weighted connection between two distinct vertices.
// From is always strictly less than To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithVertices pre-sizes the graph to n vertices (0..n-1).
// Panics on n < 0: option constructors validate, algorithms never panic.
func WithVertices(n int) GraphOption {
	if n < 0 {
		panic("core: WithVertices(n<0)")
	}
	return func(g *Graph) { g.n = n }
}

// Graph is the in-memory weighted undirected graph.
//
// mu guards every field. pairs holds one key per present edge, so its size
// tracks len(edges) and not the magnitude of the vertex indices.
type Graph struct {
	mu sync.RWMutex

	n     int     // vertex count; vertices are 0..n-1
	edges []Edge  // insertion order
	pairs pairSet // present pairs, keyed {From, To}
}

type pairSet map[[2]int]struct{}

// NewGraph creates an empty Graph and applies opts in order.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{pairs: make(pairSet)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
