package bfs

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/algokit/core"
)

// BFS walks g outward from start, one hop layer at a time.
//
// Steps:
//  1. Validate the graph and the start vertex, then apply options.
//  2. Queue start at depth 0.
//  3. Dequeue, check cancellation, run OnVisit, and unless MaxDepth is
//     reached queue every neighbor not seen before.
//
// Edge weights are ignored. Complexity: O(V + E) time, O(V) memory.
func BFS(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := newWalker(g, o, start)
	if err := w.run(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// walker carries the mutable traversal state.
type walker struct {
	g     *core.Graph
	opts  Options
	seen  mapset.Set[string]
	queue []string
	res   *Result
}

func newWalker(g *core.Graph, o Options, start string) *walker {
	return &walker{
		g:     g,
		opts:  o,
		seen:  mapset.NewThreadUnsafeSetWithSize[string](g.VertexCount()),
		queue: []string{start},
		res: &Result{
			Start:  start,
			Order:  make([]string, 0, g.VertexCount()),
			Depth:  map[string]int{start: 0},
			Parent: make(map[string]string),
		},
	}
}

func (w *walker) run() error {
	w.seen.Add(w.res.Start)

	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		cur := w.queue[head]
		depth := w.res.Depth[cur]
		w.res.Order = append(w.res.Order, cur)
		if err := w.opts.OnVisit(cur, depth); err != nil {
			return err
		}
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}

		neighbors, err := w.g.Neighbors(cur)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrNeighbors, cur, err)
		}
		for _, nb := range neighbors {
			if !w.seen.Add(nb.ID) {
				continue
			}
			w.res.Depth[nb.ID] = depth + 1
			w.res.Parent[nb.ID] = cur
			w.queue = append(w.queue, nb.ID)
		}
	}

	return nil
}
