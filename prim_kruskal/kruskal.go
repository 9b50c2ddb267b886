// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It works on a plain node set and edge list and produces the edges of a spanning tree (or forest).
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/unionfind"
)

// Kruskal computes a Minimum Spanning Tree (or forest) from a node set and an edge list.
// It uses unionfind.DisjointSet (path compression, union by rank) to reject cycle-closing edges.
//
// Steps:
//  1. Copy and stable-sort edges by ascending weight; equal weights keep input order.
//  2. Register every node, plus any edge endpoint missing from nodes, with the disjoint set.
//  3. For each edge in sorted order, accept it when Union(From, To) succeeds.
//     Self-loops are rejected naturally (Union(x, x) is false).
//  4. Stop once |V|−1 edges are accepted.
//
// A disconnected input yields a spanning forest with fewer than |V|−1 edges.
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(nodes []string, edges []core.Edge) SpanningTree {
	// 1. Sort a private copy so the caller's slice is untouched.
	sorted := make([]core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 2. Initialize the disjoint set.
	ds := unionfind.New[string](len(nodes))
	for _, v := range nodes {
		ds.MakeSet(v)
	}
	for _, e := range sorted {
		ds.MakeSet(e.From)
		ds.MakeSet(e.To)
	}
	n := ds.Len()

	// 3. Scan edges.
	tree := SpanningTree{Edges: []core.Edge{}}
	if n == 0 {
		return tree
	}
	for _, e := range sorted {
		if len(tree.Edges) == n-1 {
			break
		}
		if ds.Union(e.From, e.To) {
			tree.Edges = append(tree.Edges, e)
			tree.TotalWeight += e.Weight
		}
	}

	return tree
}

// KruskalGraph runs Kruskal on graph.Vertices() and graph.Edges().
// Returns ErrNilGraph for a nil graph.
func KruskalGraph(graph *core.Graph) (SpanningTree, error) {
	if graph == nil {
		return SpanningTree{}, ErrNilGraph
	}

	return Kruskal(graph.Vertices(), graph.Edges()), nil
}
