package report

import (
	"github.com/katalvlaran/algokit/bfs"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/huffman"
	"github.com/katalvlaran/algokit/prim_kruskal"
)

// FromSpanningTree builds a report for tree, computed with method over g.
// root is the Prim start vertex, "" for Kruskal.
//
// Coverage is measured on g itself: a Prim tree covers the component of root,
// a Kruskal forest covers every vertex. Complete is true when g is connected,
// so the result is a single spanning tree. An unknown root returns
// bfs.ErrStartVertexNotFound.
func FromSpanningTree(g *core.Graph, method, root string, tree prim_kruskal.SpanningTree) (SpanningTreeReport, error) {
	comps, err := bfs.Components(g)
	if err != nil {
		return SpanningTreeReport{}, err
	}

	rep := SpanningTreeReport{
		Method:      method,
		Root:        root,
		Vertices:    g.VertexCount(),
		Covered:     g.VertexCount(),
		Components:  len(comps),
		Complete:    len(comps) <= 1,
		TotalWeight: tree.TotalWeight,
		Edges:       make([]EdgeRow, len(tree.Edges)),
	}
	if root != "" {
		cov, err := bfs.Cover(g, root)
		if err != nil {
			return SpanningTreeReport{}, err
		}
		rep.Covered = cov.Size()
	}
	for i, e := range tree.Edges {
		rep.Edges[i] = EdgeRow{From: e.From, To: e.To, Weight: e.Weight}
	}

	return rep, nil
}

// FromShortestPaths builds one row per vertex, in the order given.
// Unreachable vertices have Reachable false, Distance 0 and no path.
func FromShortestPaths(res *dijkstra.Result, vertices []string) ShortestPathReport {
	rep := ShortestPathReport{Source: res.Source, Rows: make([]DistanceRow, 0, len(vertices))}
	for _, v := range vertices {
		row := DistanceRow{Vertex: v}
		if d, ok := res.Distance(v); ok {
			row.Reachable = true
			row.Distance = d
			row.Predecessor = res.Prev[v]
			if path, err := res.PathTo(v); err == nil {
				row.Path = path
			}
		}
		rep.Rows = append(rep.Rows, row)
	}

	return rep
}

// HuffmanOptions controls the optional parts of a HuffmanReport.
type HuffmanOptions struct {
	// ShowTree includes the rendered tree.
	ShowTree bool
	// Sample is encoded into SampleBits when not empty.
	Sample string
	// MaxSampleBits truncates SampleBits; 0 keeps all bits.
	MaxSampleBits int
}

// FromHuffman builds a report for enc. Code rows are ordered by codeword
// length, then codeword.
func FromHuffman(enc *huffman.Encoding, opts HuffmanOptions) (HuffmanReport, error) {
	st := enc.Stats
	rep := HuffmanReport{
		Symbols:        st.Symbols,
		Distinct:       st.Distinct,
		OriginalBits:   st.OriginalBits,
		EncodedBits:    st.EncodedBits,
		Ratio:          st.Ratio,
		SavingsPercent: st.SavingsPercent,
	}
	for _, e := range enc.Codes.Sorted() {
		rep.Codes = append(rep.Codes, CodeRow{
			Symbol: huffman.Label(e.Symbol),
			Count:  enc.Frequencies.Count(e.Symbol),
			Code:   e.Code,
			Bits:   len(e.Code),
		})
	}
	if opts.ShowTree {
		rep.Tree = enc.Tree.Render()
	}
	if opts.Sample != "" {
		bits, err := enc.Tree.Encode(opts.Sample)
		if err != nil {
			return HuffmanReport{}, err
		}
		if opts.MaxSampleBits > 0 && len(bits) > opts.MaxSampleBits {
			bits = bits[:opts.MaxSampleBits]
		}
		rep.SampleText = opts.Sample
		rep.SampleBits = bits
	}

	return rep, nil
}
