// Package prim_kruskal defines configuration options, the result type and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/algokit/core"
)

// ErrNilGraph indicates that a nil *core.Graph was passed to an MST algorithm.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrUnknownRoot indicates that the requested Prim root is not a vertex of the graph.
var ErrUnknownRoot = errors.New("prim_kruskal: root vertex not found")

// ErrUnknownMethod indicates that Compute was asked for an unsupported algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a root using a frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// SpanningTree is the result of an MST computation.
//
// Edges lists the selected edges in the order the algorithm accepted them.
// For Prim, From is the tree vertex and To the vertex it reached.
// TotalWeight is the sum of the selected edge weights.
type SpanningTree struct {
	Edges       []core.Edge
	TotalWeight int64
}

// Len returns the number of edges in the tree.
func (t SpanningTree) Len() int { return len(t.Edges) }

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string: one of MethodPrim or MethodKruskal.
//	Root   string: start vertex ID for Prim; "" means the first vertex of the graph.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm; ignored by Kruskal.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Root   = "" (first vertex, if Prim is selected later).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute selects and runs the MST algorithm based on the options.
//
//	– MethodKruskal: KruskalGraph(graph).
//	– MethodPrim:    Prim(graph, WithRoot(Root)).
//	– Otherwise:     ErrUnknownMethod.
//
// Note: this is optional scaffolding; Prim and Kruskal can still be called directly.
func Compute(graph *core.Graph, opts ...Option) (SpanningTree, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch cfg.Method {
	case MethodKruskal:
		return KruskalGraph(graph)
	case MethodPrim:
		return Prim(graph, WithRoot(cfg.Root))
	default:
		return SpanningTree{}, ErrUnknownMethod
	}
}
