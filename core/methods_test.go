package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
)

// buildTriangle returns A-B(1), B-C(2), A-C(4).
func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 4))

	return g
}

// TestGraph_AddVertex verifies empty-ID rejection and idempotent insertion.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A")) // duplicate is a no-op
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.Equal(t, 1, g.VertexCount())
}

// TestGraph_AddEdgeRejectsEmptyEndpoint verifies that neither endpoint may be blank
// and that a rejected edge leaves the graph untouched.
func TestGraph_AddEdgeRejectsEmptyEndpoint(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "", 1), core.ErrEmptyVertexID)
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
}

// TestGraph_Symmetry checks that every edge appears in both adjacency lists
// with the same weight.
func TestGraph_Symmetry(t *testing.T) {
	g := buildTriangle(t)

	for _, e := range g.Edges() {
		w1, ok1 := g.Weight(e.From, e.To)
		w2, ok2 := g.Weight(e.To, e.From)
		require.True(t, ok1, "%s→%s missing", e.From, e.To)
		require.True(t, ok2, "%s→%s missing", e.To, e.From)
		assert.Equal(t, e.Weight, w1)
		assert.Equal(t, w1, w2)
	}
}

// TestGraph_InsertionOrder locks in the ordering contract for Vertices,
// Neighbors and Edges.
func TestGraph_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("C", "A", 3))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("A", "B", 2))

	if diff := cmp.Diff([]string{"C", "A", "B"}, g.Vertices()); diff != "" {
		t.Errorf("Vertices() mismatch (-want +got):\n%s", diff)
	}

	nbrs, err := g.Neighbors("C")
	require.NoError(t, err)
	want := []core.Neighbor{{ID: "A", Weight: 3}, {ID: "B", Weight: 1}}
	if diff := cmp.Diff(want, nbrs); diff != "" {
		t.Errorf("Neighbors(C) mismatch (-want +got):\n%s", diff)
	}

	wantEdges := []core.Edge{
		{From: "C", To: "A", Weight: 3},
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "B", Weight: 2},
	}
	if diff := cmp.Diff(wantEdges, g.Edges()); diff != "" {
		t.Errorf("Edges() mismatch (-want +got):\n%s", diff)
	}
}

// TestGraph_NeighborsUnknown verifies ErrVertexNotFound for unknown IDs.
func TestGraph_NeighborsUnknown(t *testing.T) {
	g := buildTriangle(t)

	_, err := g.Neighbors("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_ParallelEdgesAndLoops checks that parallel edges are kept separately,
// Weight picks the lightest, and a self-loop is listed once.
func TestGraph_ParallelEdgesAndLoops(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 5))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "A", 7))

	assert.Equal(t, 3, g.EdgeCount())

	w, ok := g.Weight("B", "A")
	require.True(t, ok)
	assert.Equal(t, int64(1), w)

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbrs, 3) // B, B, A(self)

	_, ok = g.Weight("A", "Z")
	assert.False(t, ok)
	_, ok = g.Weight("Z", "A")
	assert.False(t, ok)
}

// TestGraph_GettersReturnCopies ensures callers cannot mutate graph state
// through returned slices.
func TestGraph_GettersReturnCopies(t *testing.T) {
	g := buildTriangle(t)

	vs := g.Vertices()
	vs[0] = "mutated"
	es := g.Edges()
	es[0].Weight = 99
	nb, err := g.Neighbors("A")
	require.NoError(t, err)
	nb[0].Weight = 99

	assert.Equal(t, "A", g.Vertices()[0])
	assert.Equal(t, int64(1), g.Edges()[0].Weight)
	w, _ := g.Weight("A", "B")
	assert.Equal(t, int64(1), w)
}
