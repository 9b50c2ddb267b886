package bfs

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/algokit/core"
)

// Coverage is the part of a graph reachable from one vertex.
type Coverage struct {
	// Root is the vertex the component was grown from.
	Root string

	// Vertices is the component of Root in BFS order; Root comes first.
	Vertices []string

	// Total is the vertex count of the whole graph.
	Total int
}

// Size returns the number of vertices in the component.
func (c Coverage) Size() int { return len(c.Vertices) }

// Complete reports whether the component is the whole graph.
func (c Coverage) Complete() bool { return len(c.Vertices) == c.Total }

// Component returns the vertices reachable from start, in BFS order.
// The start vertex is always first.
func Component(g *core.Graph, start string) ([]string, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// Cover returns the component of root together with the graph's size.
// A spanning tree grown from root can cover at most Size() vertices.
func Cover(g *core.Graph, root string) (Coverage, error) {
	comp, err := Component(g, root)
	if err != nil {
		return Coverage{}, err
	}

	return Coverage{Root: root, Vertices: comp, Total: g.VertexCount()}, nil
}

// Components partitions g into connected components. Components are ordered
// by their first vertex in insertion order, and each lists its vertices in
// BFS order from that vertex. An empty graph has no components.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	var out [][]string
	assigned := mapset.NewThreadUnsafeSetWithSize[string](g.VertexCount())
	for _, v := range g.Vertices() {
		if assigned.Contains(v) {
			continue
		}
		comp, err := Component(g, v)
		if err != nil {
			return nil, err
		}
		assigned.Append(comp...)
		out = append(out, comp)
	}

	return out, nil
}
