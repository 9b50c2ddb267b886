// Package algokit is a small toolkit of classical algorithms over weighted,
// undirected graphs and text: minimum spanning trees (Prim, Kruskal),
// single-source shortest paths (Dijkstra) and Huffman coding.
//
// What is inside?
//
//	core/          Graph with insertion-ordered vertices, mirrored adjacency and an edge list
//	edgetable/     CSV edge tables (origin, destination, weight) → *core.Graph
//	frontier/      stable min-priority queue shared by Prim, Dijkstra and Huffman
//	unionfind/     disjoint sets with path compression and union by rank
//	prim_kruskal/  Prim and Kruskal MST, partial results on disconnected input
//	dijkstra/      shortest distances, predecessors and path reconstruction
//	bfs/           hop-count traversal and connected components
//	huffman/       frequencies, tree, codes, encode/decode, compression figures
//	report/        text, JSON, YAML and TOML summaries of the results
//
// The algorithm packages perform no I/O and never log; every failure is a
// sentinel error matchable with errors.Is. The algokit command (cmd/algokit)
// wires them to files, configuration and logging.
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    C───D
//
//	g := core.NewGraph()
//	_ = g.AddEdge("A", "B", 1)
//	_ = g.AddEdge("A", "C", 3)
//	_ = g.AddEdge("A", "D", 4)
//	_ = g.AddEdge("B", "D", 2)
//	_ = g.AddEdge("C", "D", 5)
//
//	tree, _ := prim_kruskal.Prim(g)        // A-B B-D A-C, total 6
//	res, _ := dijkstra.Dijkstra(g, "A")    // dist D = 3 via B
//	enc, _ := huffman.Analyze("abracadabra")
//
// Determinism: vertices keep insertion order, the frontier breaks priority
// ties first-in first-out and Kruskal sorts stably, so identical input always
// yields identical output.
package algokit
