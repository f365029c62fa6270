// File: methods.go
// Role: vertex growth, edge insertion and read-only queries.
// Concurrency:
//   - Mutations under mu write lock.
//   - Queries under mu read lock.

package core

import "fmt"

// EnsureVertices grows the graph to at least n vertices. It never shrinks it.
// Complexity: O(1).
func (g *Graph) EnsureVertices(n int) error {
	if n < 0 {
		return fmt.Errorf("EnsureVertices(%d): %w", n, ErrNegativeVertexCount)
	}
	g.mu.Lock()
	if n > g.n {
		g.n = n
	}
	g.mu.Unlock()

	return nil
}

// VertexCount returns N; vertices are 0..N-1.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// AddEdge inserts the undirected edge {from,to} with the given weight.
// The pair is stored normalized so that Edge.From < Edge.To.
//
// Steps:
//  1. Reject self-loops and weights below MinWeight.
//  2. Normalize (from,to) to ascending order.
//  3. Under the write lock, check both endpoints against N and the pair set.
//  4. Append the edge and mark the pair.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	if from == to {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}
	if weight < MinWeight {
		return fmt.Errorf("AddEdge(%d,%d,w=%d): %w", from, to, weight, ErrBadWeight)
	}
	if from > to {
		from, to = to, from
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if from < 0 || to >= g.n {
		return fmt.Errorf("AddEdge(%d,%d): n=%d: %w", from, to, g.n, ErrVertexNotFound)
	}
	key := [2]int{from, to}
	if _, dup := g.pairs[key]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", from, to, ErrMultiEdgeNotAllowed)
	}
	g.pairs[key] = struct{}{}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// HasEdge reports whether {u,v} is present, in either argument order.
func (g *Graph) HasEdge(u, v int) bool {
	if u == v || u < 0 || v < 0 {
		return false
	}
	if u > v {
		u, v = v, u
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.pairs[[2]int{u, v}]

	return ok
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// CandidatePairs returns N*(N-1)/2, the number of unordered pairs a simple
// undirected graph on N vertices can hold.
func (g *Graph) CandidatePairs() int {
	n := g.VertexCount()

	return n * (n - 1) / 2
}
