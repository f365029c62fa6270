// Package core provides the thread-safe in-memory graph that the benchmark
// generates, serializes and hands to external solvers.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are implicit integers 0..N-1; there is no vertex catalog,
//     only a count that can grow via EnsureVertices.
//   - Edges are weighted and undirected. AddEdge normalizes every pair so
//     that From < To, which makes (From,To) a canonical key.
//   - No self-loops and no parallel edges. Duplicate detection uses a set
//     keyed by the normalized pair, so it costs O(1) per insertion and
//     O(E) memory however large the indices are.
//   - Edges() returns edges in insertion order. The generator inserts in
//     lexicographic (i,j) order, so the serialized text is deterministic.
//   - A single sync.RWMutex guards all state.
//
// Errors:
//
//	ErrNegativeVertexCount - EnsureVertices/WithVertices received n < 0.
//	ErrVertexNotFound      - an edge endpoint lies outside [0,N).
//	ErrLoopNotAllowed      - from == to.
//	ErrMultiEdgeNotAllowed - the unordered pair already has an edge.
//	ErrBadWeight           - weight < MinWeight.
//
// Stats() summarizes a graph (density, isolated vertices, connected
// components). Components are computed by gonum's graph/topo over the view
// returned by Gonum().
package core
