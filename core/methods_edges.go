// File: methods_edges.go
// Role: edge catalog queries (Edges, Weight).
// Determinism:
//   - Edges() preserves AddEdge call order.
//   - Weight() scans the adjacency list of 'from' in insertion order.

package core

// Edges returns one Edge per AddEdge call, in call order.
// The returned slice is a copy; mutating it does not affect the Graph.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Weight returns the smallest weight among the edges joining from and to.
// ok is false when either vertex is unknown or no such edge exists.
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to string) (w int64, ok bool) {
	i, exists := g.index[from]
	if !exists {
		return 0, false
	}
	for _, nb := range g.adj[i] {
		if nb.ID != to {
			continue
		}
		if !ok || nb.Weight < w {
			w, ok = nb.Weight, true
		}
	}

	return w, ok
}
