// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on an undirected, weighted *core.Graph.
//
// Overview:
//
//   - Dijkstra computes, for every vertex, the minimum total weight of a path from
//     the source, together with a predecessor map from which each path can be rebuilt.
//   - It expands vertices in order of increasing tentative distance using a
//     frontier.Frontier (binary min-heap) with lazy decrease-key: an improved
//     distance is pushed as a new entry and stale entries are skipped when popped.
//   - Only neighbors that are not yet finalized are relaxed, and only a strictly
//     smaller distance replaces the current one. The first vertex to reach a given
//     distance therefore keeps its predecessor.
//
// Result:
//
//   - Dist[v]  : shortest distance, or Infinity when v is unreachable.
//   - Prev[v]  : predecessor of v on a shortest path; "" for the source and for
//     unreachable vertices.
//   - Order    : vertices in the order their distance became final.
//   - PathTo   : source-to-destination path, or ErrUnreachable / ErrUnknownDestination.
//
// Options:
//
//   - WithMaxDistance(d): vertices farther than d are never finalized (d ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (t > 0).
//
// Weights:
//
//	The algorithm is correct for non-negative weights. Negative weights are not
//	rejected; the result on such input is whatever the greedy expansion produces
//	and carries no optimality guarantee.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the frontier may hold one entry per relaxation.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrUnknownSource: invalid input to Dijkstra.
//   - ErrBadMaxDistance, ErrBadInfThreshold: invalid option values.
//   - ErrUnknownDestination, ErrUnreachable: returned by Result.PathTo.
package dijkstra
