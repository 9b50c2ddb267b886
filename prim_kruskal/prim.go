// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from a root vertex of an undirected, weighted *core.Graph using a frontier.
package prim_kruskal

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/frontier"
)

// candidate is a frontier payload: the edge origin-target under consideration.
type candidate struct {
	origin string
	target string
}

// Prim computes the Minimum Spanning Tree of the root's connected component
// by growing outwards from the root using a frontier keyed by edge weight.
//
// Error Conditions:
//   - ErrNilGraph    : if graph is nil.
//   - ErrUnknownRoot : if WithRoot names a vertex that does not exist.
//
// Steps:
//  1. Validate graph; an empty graph yields an empty tree.
//  2. Resolve root: WithRoot value, else the first inserted vertex.
//  3. Seed the frontier with (0, root→root), the synthetic "reach the root" entry.
//  4. While the frontier is not empty and some vertex is unvisited:
//     a. Pop the smallest-weight candidate.
//     b. If its target is already visited, discard it (stale or cycle-closing).
//     c. Mark the target visited; unless the candidate is the synthetic seed,
//     append origin→target to the tree and add its weight.
//     d. Push (weight, target→neighbor) for every unvisited neighbor.
//  5. Return the tree. A disconnected graph yields the root's component only.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, opts ...Option) (SpanningTree, error) {
	// 1. Validate input.
	if graph == nil {
		return SpanningTree{}, ErrNilGraph
	}
	cfg := MSTOptions{Method: MethodPrim}
	for _, opt := range opts {
		opt(&cfg)
	}

	vertices := graph.Vertices()
	n := len(vertices)
	if n == 0 {
		return SpanningTree{Edges: []core.Edge{}}, nil
	}

	// 2. Resolve the root.
	root := cfg.Root
	if root == "" {
		root = vertices[0]
	} else if !graph.HasVertex(root) {
		return SpanningTree{}, ErrUnknownRoot
	}

	// 3. Initialize visited set, result and frontier.
	visited := mapset.NewThreadUnsafeSetWithSize[string](n)
	tree := SpanningTree{Edges: make([]core.Edge, 0, n-1)}
	pq := frontier.New[candidate]()
	pq.Push(0, candidate{origin: root, target: root})

	// 4. Main loop.
	for pq.Len() > 0 && visited.Cardinality() < n {
		entry, _ := pq.Pop()
		c := entry.Payload
		if visited.Contains(c.target) {
			continue
		}
		visited.Add(c.target)

		if c.origin != c.target {
			tree.Edges = append(tree.Edges, core.Edge{From: c.origin, To: c.target, Weight: entry.Priority})
			tree.TotalWeight += entry.Priority
		}

		neighbors, err := graph.Neighbors(c.target)
		if err != nil {
			return SpanningTree{}, err
		}
		for _, nb := range neighbors {
			if !visited.Contains(nb.ID) {
				pq.Push(nb.Weight, candidate{origin: c.target, target: nb.ID})
			}
		}
	}

	return tree, nil
}
