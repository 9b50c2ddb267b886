package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is one undirected, weighted record: From-To with Weight.
//
// From and To keep the orientation in which the edge was added; algorithms
// that report edges (e.g. spanning trees) may flip them to describe the
// direction in which the edge was discovered.
type Edge struct {
	// From is the first endpoint as given to AddEdge.
	From string

	// To is the second endpoint as given to AddEdge.
	To string

	// Weight is the cost of traversing the edge in either direction.
	Weight int64
}

// Neighbor is one entry of a vertex's adjacency list.
type Neighbor struct {
	// ID is the adjacent vertex.
	ID string

	// Weight is the weight of the connecting edge.
	Weight int64
}

// Graph is an undirected, weighted graph with insertion-ordered vertices and
// adjacency lists.
//
// Vertices are addressed by their position in order; index maps an ID back to
// that position. adj[i] is the adjacency list of order[i].
type Graph struct {
	order []string       // vertex IDs in first-mention order
	index map[string]int // vertex ID → position in order/adj
	adj   [][]Neighbor   // adjacency lists, parallel to order
	edges []Edge         // one entry per AddEdge call
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}
