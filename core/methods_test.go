// Package core_test verifies edge insertion rules, queries and summaries.
package core_test

import (
	"math"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkbench/core"
)

func TestAddEdge_Rules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		from    int
		to      int
		weight  int64
		wantErr error
	}{
		{"ok", 0, 1, 5, nil},
		{"reversed-normalized", 3, 2, 1, nil},
		{"loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"zero-weight", 0, 2, 0, core.ErrBadWeight},
		{"out-of-range", 0, 4, 1, core.ErrVertexNotFound},
		{"negative-index", -1, 2, 1, core.ErrVertexNotFound},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := core.NewGraph(core.WithVertices(4))
			err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			require.Zero(t, g.EdgeCount())
		})
	}
}

func TestAddEdge_NormalizesAndRejectsDuplicates(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddEdge(2, 0, 7))

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, core.Edge{From: 0, To: 2, Weight: 7}, edges[0])

	// Either orientation of the same pair is a duplicate.
	require.ErrorIs(t, g.AddEdge(0, 2, 1), core.ErrMultiEdgeNotAllowed)
	require.ErrorIs(t, g.AddEdge(2, 0, 1), core.ErrMultiEdgeNotAllowed)
	assert.True(t, g.HasEdge(0, 2))
	assert.True(t, g.HasEdge(2, 0))
	assert.False(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 1))
}

func TestAddEdge_LargeIndicesStayCheap(t *testing.T) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	g := core.NewGraph(core.WithVertices(math.MaxInt32))
	require.NoError(t, g.AddEdge(math.MaxInt32-2, math.MaxInt32-1, 1))
	require.NoError(t, g.AddEdge(0, math.MaxInt32-1, 2))
	require.ErrorIs(t, g.AddEdge(math.MaxInt32-1, math.MaxInt32-2, 3), core.ErrMultiEdgeNotAllowed)
	assert.True(t, g.HasEdge(math.MaxInt32-1, 0))
	assert.Equal(t, 2, g.EdgeCount())

	runtime.ReadMemStats(&after)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(1<<20), "memory follows |E|, not the index")
}

func TestEdges_InsertionOrderAndCopy(t *testing.T) {
	g := core.NewGraph(core.WithVertices(4))
	require.NoError(t, g.AddEdge(0, 3, 1))
	require.NoError(t, g.AddEdge(0, 1, 2))
	require.NoError(t, g.AddEdge(1, 2, 3))

	edges := g.Edges()
	require.Equal(t, []core.Edge{
		{From: 0, To: 3, Weight: 1},
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 3},
	}, edges)

	edges[0].Weight = 99
	assert.Equal(t, int64(1), g.Edges()[0].Weight, "Edges must return a copy")
}

func TestEnsureVertices(t *testing.T) {
	g := core.NewGraph()
	require.Zero(t, g.VertexCount())
	require.ErrorIs(t, g.AddEdge(0, 1, 1), core.ErrVertexNotFound)

	require.NoError(t, g.EnsureVertices(5))
	require.Equal(t, 5, g.VertexCount())
	require.NoError(t, g.EnsureVertices(2), "growing to a smaller size is a no-op")
	require.Equal(t, 5, g.VertexCount())
	require.Equal(t, 10, g.CandidatePairs())

	require.ErrorIs(t, g.EnsureVertices(-1), core.ErrNegativeVertexCount)
	require.Panics(t, func() { core.WithVertices(-1) })
}

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		s := core.NewGraph().Stats()
		assert.Equal(t, core.GraphStats{}, s)
	})

	t.Run("isolated-and-components", func(t *testing.T) {
		// 0-1-2 chain, 3-4 pair, 5 isolated.
		g := core.NewGraph(core.WithVertices(6))
		require.NoError(t, g.AddEdge(0, 1, 1))
		require.NoError(t, g.AddEdge(1, 2, 1))
		require.NoError(t, g.AddEdge(3, 4, 1))

		s := g.Stats()
		assert.Equal(t, 6, s.VertexCount)
		assert.Equal(t, 3, s.EdgeCount)
		assert.Equal(t, 1, s.Isolated)
		assert.Equal(t, 3, s.Components)
		assert.InDelta(t, 3.0/15.0, s.Density, 1e-12)
	})
}

func TestGonumView(t *testing.T) {
	g := core.NewGraph(core.WithVertices(3))
	require.NoError(t, g.AddEdge(0, 2, 4))

	wg := g.Gonum()
	require.Equal(t, 3, wg.Nodes().Len())
	w, ok := wg.Weight(0, 2)
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
	assert.False(t, wg.HasEdgeBetween(0, 1))
}

// TestConcurrentAddEdge checks that parallel inserts of disjoint pairs all land.
func TestConcurrentAddEdge(t *testing.T) {
	const n = 64
	g := core.NewGraph(core.WithVertices(n))

	var wg sync.WaitGroup
	wg.Add(n - 1)
	for i := 1; i < n; i++ {
		go func(v int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge(0, v, 1))
		}(i)
	}
	wg.Wait()

	require.Equal(t, n-1, g.EdgeCount())
	require.Equal(t, 1, g.Stats().Components)
}
