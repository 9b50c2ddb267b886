// Package bfs walks a core.Graph breadth-first and answers connectivity
// questions about it.
//
// BFS visits vertices in non-decreasing hop distance from a start vertex,
// ignoring edge weights, and returns a Result with the visit Order, the hop
// Depth of every reached vertex and the Parent links of the BFS tree.
// WithMaxDepth bounds the walk, WithContext makes it cancellable and
// WithOnVisit observes (or aborts) each visit.
//
// Connectivity helpers:
//
//   - Component lists the vertices reachable from one vertex.
//   - Cover wraps that component with the graph's size. It is the part of the
//     graph a Prim run from that vertex can span, so a tree of Size()-1 edges
//     is the best Prim can do there.
//   - Components partitions the graph. A Kruskal forest has exactly
//     V - len(Components) edges.
//
// Neighbors are walked in insertion order, so every result is reproducible.
//
// Complexity: O(V + E) time and O(V) memory for BFS, Component and Cover;
// Components is O(V + E) overall.
package bfs
