// Package unionfind implements a disjoint-set (union-find) structure with
// path compression and union by rank.
//
// Elements must be registered with MakeSet before they are used. Calling
// Find, Union or Connected on an unregistered element is a programming error
// and panics with an error wrapping ErrUnregisteredElement.
//
// Complexity: MakeSet O(1); Find, Union, Connected O(α(n)) amortized.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrUnregisteredElement is the panic value (wrapped) raised when an element
// that was never passed to MakeSet is looked up.
var ErrUnregisteredElement = errors.New("unionfind: element not registered")

// DisjointSet partitions a set of comparable elements into disjoint classes.
// It is not safe for concurrent use.
type DisjointSet[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int // number of disjoint sets
}

// New returns an empty DisjointSet sized for about capacity elements.
func New[T comparable](capacity int) *DisjointSet[T] {
	return &DisjointSet[T]{
		parent: make(map[T]T, capacity),
		rank:   make(map[T]int, capacity),
	}
}

// MakeSet registers x as its own singleton set with rank 0.
// If x is already tracked, this is a no-op.
func (d *DisjointSet[T]) MakeSet(x T) {
	if _, ok := d.parent[x]; ok {
		return
	}
	d.parent[x] = x
	d.rank[x] = 0
	d.sets++
}

// Contains reports whether x has been registered.
func (d *DisjointSet[T]) Contains(x T) bool {
	_, ok := d.parent[x]

	return ok
}

// Find returns the representative of x's set. Every element on the path
// from x to the root is re-pointed directly at the root.
func (d *DisjointSet[T]) Find(x T) T {
	d.mustContain(x)

	// First pass: locate the root.
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: compress the path.
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y.
// It returns false, and changes nothing, when x and y already share a
// representative; adding an edge between them would close a cycle.
// Otherwise the lower-rank root is linked under the higher-rank root, with
// ties resolved by making x's root the parent and incrementing its rank.
func (d *DisjointSet[T]) Union(x, y T) bool {
	rx := d.Find(x)
	ry := d.Find(y)
	if rx == ry {
		return false
	}

	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Connected reports whether x and y belong to the same set.
func (d *DisjointSet[T]) Connected(x, y T) bool {
	return d.Find(x) == d.Find(y)
}

// Len returns the number of registered elements.
func (d *DisjointSet[T]) Len() int { return len(d.parent) }

// Sets returns the number of disjoint sets.
func (d *DisjointSet[T]) Sets() int { return d.sets }

func (d *DisjointSet[T]) mustContain(x T) {
	if _, ok := d.parent[x]; !ok {
		panic(fmt.Errorf("%w: %v", ErrUnregisteredElement, x))
	}
}
