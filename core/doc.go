// Package core provides the in-memory undirected, weighted Graph shared by
// every engine in algokit.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are string IDs created lazily on first mention and kept in
//     insertion order, so "the first vertex" is always well defined.
//   - Every AddEdge(u, v, w) stores the neighbor pair in both directions:
//     u→(v,w) and v→(u,w). A self-loop is stored once in its own list.
//   - Parallel edges are kept as separate entries; nothing is aggregated.
//   - Edges() returns one Edge per AddEdge call in call order, which is the
//     form Kruskal consumes.
//
// Why an ordered adjacency list?
//
//   - Determinism: Vertices(), Neighbors() and Edges() iterate in insertion
//     order, so equal-weight ties resolve the same way on every run.
//   - Read-only sharing: every getter returns a fresh slice, and engines never
//     mutate the Graph they read. One Graph can feed several concurrent runs.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph
//	AddVertex(id string) error                 // O(1)
//	AddEdge(from, to string, weight int64) error // O(1) amortized
//
//	// Queries
//	HasVertex(id string) bool                  // O(1)
//	Vertices() []string                        // O(V)
//	Neighbors(id string) ([]Neighbor, error)   // O(deg(v))
//	Edges() []Edge                             // O(E)
//	Weight(from, to string) (int64, bool)      // O(deg(from))
//	VertexCount(), EdgeCount()                 // O(1)
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core
