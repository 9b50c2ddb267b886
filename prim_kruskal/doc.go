// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: Prim's algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why two algorithms?
//     Both produce a tree of the same total weight on a connected graph; they differ in how they
//     discover it, which makes them a good pair to compare side by side.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph, opts ...Option) (SpanningTree, error)
//
//   - Strategy: Grow a single tree from a root. A frontier.Frontier holds candidate edges keyed by
//     weight; it is seeded with a synthetic zero-weight entry "root reaches itself". Each pop either
//     discards an entry whose target is already in the tree or adds the target and pushes its
//     unvisited neighbors.
//
//   - Complexity: O(E log E) time (lazy frontier), O(V + E) space.
//
//   - Kruskal(nodes []string, edges []core.Edge) SpanningTree
//
//   - Strategy: Stable-sort all edges by weight, then scan them, accepting an edge when
//     unionfind.DisjointSet.Union reports that its endpoints were in different sets.
//     Stop once |V|−1 edges are accepted.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
// Determinism
//
//   - Prim's default root is the first vertex of the graph (insertion order); frontier ties are FIFO.
//   - Kruskal uses a stable sort, so among equal weights the edge listed first is preferred.
//
// Disconnected input
//
//	Neither algorithm treats a disconnected graph as an error. Prim returns the tree of the root's
//	component; Kruskal returns a spanning forest. In both cases the result has fewer than |V|−1 edges.
//	An empty graph yields an empty tree of weight 0.
//
// Error Conditions
//
//	- ErrNilGraph      : graph pointer is nil.
//	- ErrUnknownRoot   : Prim was given an explicit root that is not a vertex.
//	- ErrUnknownMethod : Compute was asked for a method other than MethodPrim/MethodKruskal.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
