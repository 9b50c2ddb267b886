package dijkstra

import "fmt"

// Result is the outcome of a single-source shortest-path run.
type Result struct {
	// Source is the vertex distances are measured from.
	Source string
	// Dist maps every vertex to its shortest distance, Infinity if unreachable.
	Dist map[string]int64
	// Prev maps every vertex to its predecessor; "" for Source and unreachable vertices.
	Prev map[string]string
	// Order lists vertices in the order their distance was finalized.
	Order []string
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v string) bool {
	d, ok := r.Dist[v]
	return ok && d != Infinity
}

// Distance returns the shortest distance to v and whether v is reachable.
func (r *Result) Distance(v string) (int64, bool) {
	if !r.Reachable(v) {
		return Infinity, false
	}

	return r.Dist[v], true
}

// PathTo rebuilds the path from Source to dest by following Prev backwards.
// The returned slice starts with Source and ends with dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	d, ok := r.Dist[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDestination, dest)
	}
	if d == Infinity {
		return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}

	path := []string{dest}
	for cur := dest; cur != r.Source; {
		cur = r.Prev[cur]
		if cur == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnreachable, dest)
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
