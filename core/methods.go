// Package core: Graph construction and query methods.
//
// Adjacency is stored as a slice of neighbor slices indexed by vertex
// position, so iteration order is the order in which edges were added.

package core

// AddVertex inserts a vertex with the given ID.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensure(id)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.index[id]

	return ok
}

// AddEdge records an undirected edge from-to with the given weight.
// Both endpoints are created if absent (from first, then to).
// The neighbor entry is mirrored: from→to and to→from. A self-loop
// (from == to) is stored once in the vertex's own adjacency list.
//
// Returns ErrEmptyVertexID if either endpoint is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	fi := g.ensure(from)
	ti := g.ensure(to)

	g.adj[fi] = append(g.adj[fi], Neighbor{ID: to, Weight: weight})
	if fi != ti {
		g.adj[ti] = append(g.adj[ti], Neighbor{ID: from, Weight: weight})
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// The returned slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Neighbors returns the adjacency list of id in insertion order.
// Returns ErrVertexNotFound if id is unknown.
// The returned slice is a copy.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	i, ok := g.index[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make([]Neighbor, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edge records.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ensure returns the position of id, creating the vertex if necessary.
func (g *Graph) ensure(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	i := len(g.order)
	g.index[id] = i
	g.order = append(g.order, id)
	g.adj = append(g.adj, nil)

	return i
}
