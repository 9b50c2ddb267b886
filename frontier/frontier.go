// Package frontier provides the min-priority queue shared by Prim, Dijkstra
// and the Huffman tree builder.
//
// A Frontier orders entries by an int64 priority. Entries with equal priority
// leave the queue in the order they were pushed (FIFO), so every engine built
// on it is deterministic for a fixed input.
//
// The Frontier never removes or updates entries on its own. Engines that use
// the "lazy decrease-key" strategy push a fresh entry whenever a better
// priority is found and discard stale entries when they are popped.
//
// Complexity:
//
//   - Push: O(log n)
//   - Pop:  O(log n)
//   - Peek, Len: O(1)
package frontier

import "container/heap"

// Entry is a single queued payload with its priority.
type Entry[T any] struct {
	Priority int64
	Payload  T

	seq uint64 // insertion sequence; breaks priority ties
}

// Frontier is a stable min-heap of Entry values.
// The zero value is not ready for use; call New.
type Frontier[T any] struct {
	items entryHeap[T]
	next  uint64
}

// New returns an empty Frontier.
func New[T any]() *Frontier[T] {
	return &Frontier[T]{}
}

// NewWithCapacity returns an empty Frontier with room for n entries.
func NewWithCapacity[T any](n int) *Frontier[T] {
	return &Frontier[T]{items: make(entryHeap[T], 0, n)}
}

// Push inserts payload with the given priority.
func (f *Frontier[T]) Push(priority int64, payload T) {
	heap.Push(&f.items, Entry[T]{Priority: priority, Payload: payload, seq: f.next})
	f.next++
}

// Pop removes and returns the entry with the smallest priority.
// Among equal priorities the earliest pushed entry wins.
// ok is false when the Frontier is empty.
func (f *Frontier[T]) Pop() (e Entry[T], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return heap.Pop(&f.items).(Entry[T]), true
}

// Peek returns the entry Pop would return, without removing it.
func (f *Frontier[T]) Peek() (e Entry[T], ok bool) {
	if len(f.items) == 0 {
		return e, false
	}

	return f.items[0], true
}

// Len returns the number of queued entries, stale ones included.
func (f *Frontier[T]) Len() int { return len(f.items) }

// entryHeap implements heap.Interface ordered by (Priority, seq).
type entryHeap[T any] []Entry[T]

func (h entryHeap[T]) Len() int { return len(h) }

func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[T]) Push(x any) { *h = append(*h, x.(Entry[T])) }

func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = Entry[T]{} // drop payload reference
	*h = old[:n-1]

	return e
}
