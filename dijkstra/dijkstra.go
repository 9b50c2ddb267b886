package dijkstra

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/frontier"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain source (ErrUnknownSource).
//
// Every vertex of g appears in Result.Dist and Result.Prev, reachable or not.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}

	n := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: source,
			Dist:   make(map[string]int64, n),
			Prev:   make(map[string]string, n),
			Order:  make([]string, 0, n),
		},
		visited: mapset.NewThreadUnsafeSetWithSize[string](n),
		pq:      frontier.NewWithCapacity[string](n),
	}

	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	res     *Result
	visited mapset.Set[string] // finalized vertices
	pq      *frontier.Frontier[string]
}

// init sets every distance to Infinity, every predecessor to "" and seeds the source.
func (r *runner) init() {
	for _, v := range r.g.Vertices() {
		r.res.Dist[v] = Infinity
		r.res.Prev[v] = ""
	}
	r.res.Dist[r.res.Source] = 0
	r.pq.Push(0, r.res.Source)
}

// process pops the closest unfinalized vertex until the frontier is empty
// or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item, _ := r.pq.Pop()
		u, d := item.Payload, item.Priority

		if r.visited.Contains(u) {
			continue // stale entry
		}
		if d > r.options.MaxDistance {
			break
		}

		r.visited.Add(u)
		r.res.Order = append(r.res.Order, u)

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every unfinalized neighbor of u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, nb := range neighbors {
		v, w := nb.ID, nb.Weight
		if r.visited.Contains(v) || w >= r.options.InfEdgeThreshold {
			continue
		}
		// saturate instead of wrapping around
		if w > 0 && du > Infinity-w {
			continue
		}

		newDist := du + w
		if newDist > r.options.MaxDistance || newDist >= r.res.Dist[v] {
			continue
		}

		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		r.pq.Push(newDist, v)
	}

	return nil
}
