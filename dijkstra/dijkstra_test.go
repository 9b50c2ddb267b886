// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, basic distances and paths, option limits, and the
// predecessor-consistency property on random graphs.
package dijkstra_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 4))

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil, "A")
	if !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_UnknownSource(t *testing.T) {
	_, err := dijkstra.Dijkstra(triangle(t), "Z")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)

	_, err = dijkstra.Dijkstra(core.NewGraph(), "A")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownSource)
}

func TestDijkstra_BadOptions(t *testing.T) {
	g := triangle(t)
	_, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, err = dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(0))
	assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
}

// ------------------------------------------------------------------------
// 2. Basic functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), "A")
	require.NoError(t, err)

	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, res.Dist)
	assert.Equal(t, map[string]string{"A": "", "B": "A", "C": "B"}, res.Prev)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)

	path, err = res.PathTo("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, path)
}

func TestDijkstra_Unreachable(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddEdge("X", "Y", 1))

	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)

	assert.Equal(t, dijkstra.Infinity, res.Dist["X"])
	assert.Equal(t, "", res.Prev["X"])
	assert.False(t, res.Reachable("Y"))
	d, ok := res.Distance("Y")
	assert.False(t, ok)
	assert.Equal(t, dijkstra.Infinity, d)
	assert.NotContains(t, res.Order, "X")

	_, err = res.PathTo("Y")
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)
	_, err = res.PathTo("nope")
	assert.ErrorIs(t, err, dijkstra.ErrUnknownDestination)
}

func TestDijkstra_StrictImprovementKeepsFirstPredecessor(t *testing.T) {
	// Two equal-cost routes to D: via B (inserted first) and via C.
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))

	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist["D"])
	assert.Equal(t, "B", res.Prev["D"])
}

func TestDijkstra_ParallelEdgesAndSelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "A", 0))
	require.NoError(t, g.AddEdge("A", "B", 9))
	require.NoError(t, g.AddEdge("B", "A", 4))

	res, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Dist["A"])
	assert.Equal(t, int64(4), res.Dist["B"])
}

func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))

	res, err := dijkstra.Dijkstra(g, "solo")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"solo": 0}, res.Dist)
	assert.Equal(t, []string{"solo"}, res.Order)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 2))

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Dist["C"])
	assert.Equal(t, dijkstra.Infinity, res.Dist["D"])
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	res, err = dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(0))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
}

func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 100))
	require.NoError(t, g.AddEdge("A", "C", 30))
	require.NoError(t, g.AddEdge("C", "B", 30))

	res, err := dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(50))
	require.NoError(t, err)
	assert.Equal(t, int64(60), res.Dist["B"])

	res, err = dijkstra.Dijkstra(g, "A", dijkstra.WithInfEdgeThreshold(30))
	require.NoError(t, err)
	assert.False(t, res.Reachable("C"))
	assert.False(t, res.Reachable("B"))
}

// ------------------------------------------------------------------------
// 4. Properties on random graphs
// ------------------------------------------------------------------------

func randomGraph(seed int64, n, m int) *core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}
	for i := 0; i < m; i++ {
		_ = g.AddEdge(fmt.Sprintf("V%d", r.Intn(n)), fmt.Sprintf("V%d", r.Intn(n)), int64(r.Intn(50)))
	}

	return g
}

// TestDijkstra_PredecessorConsistency checks that for every reachable vertex
// with a predecessor, dist[v] == dist[prev[v]] + weight(prev[v], v), that no
// edge can improve a distance, and that Order is non-decreasing in distance.
func TestDijkstra_PredecessorConsistency(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(seed, 60, 150)
		res, err := dijkstra.Dijkstra(g, "V0")
		require.NoError(t, err)

		for v, u := range res.Prev {
			if u == "" {
				continue
			}
			w, ok := g.Weight(u, v)
			require.True(t, ok)
			assert.Equal(t, res.Dist[u]+w, res.Dist[v], "seed %d, %s→%s", seed, u, v)
		}
		for _, e := range g.Edges() {
			if !res.Reachable(e.From) && !res.Reachable(e.To) {
				continue
			}
			assert.LessOrEqual(t, res.Dist[e.To], res.Dist[e.From]+e.Weight)
			assert.LessOrEqual(t, res.Dist[e.From], res.Dist[e.To]+e.Weight)
		}
		for i := 1; i < len(res.Order); i++ {
			assert.LessOrEqual(t, res.Dist[res.Order[i-1]], res.Dist[res.Order[i]])
		}
	}
}
