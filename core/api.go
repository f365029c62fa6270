// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only summaries and the gonum interop view.

package core

import (
	"math"

	"github.com/yourbasic/bit"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	VertexCount int
	EdgeCount   int
	// Density is EdgeCount / CandidatePairs, or 0 when N < 2.
	Density float64
	// Isolated counts vertices with no incident edge.
	Isolated int
	// Components counts connected components, isolated vertices included.
	Components int
}

// Gonum returns a weighted undirected gonum view of g. Node IDs equal vertex
// indices; absent edges have weight +Inf.
// Complexity: O(V+E).
func (g *Graph) Gonum() *simple.WeightedUndirectedGraph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for i := 0; i < g.n; i++ {
		wg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.edges {
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(int64(e.From)),
			T: simple.Node(int64(e.To)),
			W: float64(e.Weight),
		})
	}

	return wg
}

// Stats computes a GraphStats snapshot.
// Complexity: O(V+E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	n := g.n
	touched := new(bit.Set)
	for _, e := range g.edges {
		touched.Add(e.From).Add(e.To)
	}
	stats := GraphStats{
		VertexCount: n,
		EdgeCount:   len(g.edges),
		Isolated:    n - touched.Size(),
	}
	g.mu.RUnlock()

	if pairs := n * (n - 1) / 2; pairs > 0 {
		stats.Density = float64(stats.EdgeCount) / float64(pairs)
	}
	if n > 0 {
		stats.Components = len(topo.ConnectedComponents(g.Gonum()))
	}

	return stats
}
