package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned when an Option carries an invalid value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failure to list the neighbors of a queued vertex.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// ErrNotReached is returned by Result.PathTo for a vertex the walk never reached.
	ErrNotReached = errors.New("bfs: vertex not reached")
)

// Option configures a walk.
type Option func(*Options)

// Options controls a walk. Invalid values are recorded and reported by BFS.
type Options struct {
	// Ctx is checked before each vertex is visited.
	Ctx context.Context

	// MaxDepth stops expansion at this hop count; 0 means no limit.
	MaxDepth int

	// OnVisit runs for every visited vertex; a non-nil error stops the walk.
	OnVisit func(id string, depth int) error

	err error
}

// DefaultOptions: background context, no depth limit, no visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string, int) error { return nil },
	}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to vertices at most d hops from the start.
// A negative d makes BFS return ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers fn to run as each vertex is visited.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result is the outcome of one walk.
type Result struct {
	// Start is the vertex the walk began at.
	Start string

	// Order lists visited vertices, nearest first.
	Order []string

	// Depth maps every reached vertex to its hop count from Start.
	Depth map[string]int

	// Parent maps every reached vertex except Start to the vertex it was reached from.
	Parent map[string]string
}

// Reached reports whether v was visited.
func (r *Result) Reached(v string) bool {
	_, ok := r.Depth[v]
	return ok
}

// Hops returns the hop count of v and whether v was reached.
func (r *Result) Hops(v string) (int, bool) {
	d, ok := r.Depth[v]
	return d, ok
}

// PathTo follows Parent links back from dest and returns the path Start → dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}

	path := make([]string, d+1)
	cur := dest
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = cur

	return path, nil
}
