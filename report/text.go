package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func writeText(w io.Writer, v any) error {
	switch r := v.(type) {
	case SpanningTreeReport:
		return textSpanningTree(w, r)
	case *SpanningTreeReport:
		return textSpanningTree(w, *r)
	case ShortestPathReport:
		return textShortestPaths(w, r)
	case *ShortestPathReport:
		return textShortestPaths(w, *r)
	case HuffmanReport:
		return textHuffman(w, r)
	case *HuffmanReport:
		return textHuffman(w, *r)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func textSpanningTree(w io.Writer, r SpanningTreeReport) error {
	title := strings.ToUpper(r.Method)
	if r.Root != "" {
		title += " (root " + r.Root + ")"
	}
	fmt.Fprintln(w, title)

	tw := newTable(w)
	fmt.Fprintln(tw, "FROM\tTO\tWEIGHT")
	for _, e := range r.Edges {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", e.From, e.To, e.Weight)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Edges: %d  Total weight: %d\n", len(r.Edges), r.TotalWeight)
	switch {
	case r.Complete:
		return nil
	case r.Root != "":
		_, err := fmt.Fprintf(w, "Graph is disconnected: %d of %d vertices covered from root %s\n",
			r.Covered, r.Vertices, r.Root)
		return err
	default:
		_, err := fmt.Fprintf(w, "Graph is disconnected: spanning forest of %d trees over %d vertices\n",
			r.Components, r.Vertices)
		return err
	}
}

func textShortestPaths(w io.Writer, r ShortestPathReport) error {
	fmt.Fprintf(w, "DIJKSTRA (source %s)\n", r.Source)

	tw := newTable(w)
	fmt.Fprintln(tw, "VERTEX\tDISTANCE\tPATH")
	for _, row := range r.Rows {
		if !row.Reachable {
			fmt.Fprintf(tw, "%s\t∞\t-\n", row.Vertex)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", row.Vertex, row.Distance, strings.Join(row.Path, " → "))
	}

	return tw.Flush()
}

func textHuffman(w io.Writer, r HuffmanReport) error {
	fmt.Fprintf(w, "HUFFMAN (%d symbols, %d distinct)\n", r.Symbols, r.Distinct)

	tw := newTable(w)
	fmt.Fprintln(tw, "SYMBOL\tCOUNT\tCODE\tBITS")
	for _, c := range r.Codes {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", c.Symbol, c.Count, c.Code, c.Bits)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Original bits: %d\n", r.OriginalBits)
	fmt.Fprintf(w, "Huffman bits:  %d\n", r.EncodedBits)
	fmt.Fprintf(w, "Compression:   %.2f%%\n", r.SavingsPercent)
	if r.Tree != "" {
		fmt.Fprintf(w, "\n%s", r.Tree)
	}
	if r.SampleText != "" {
		fmt.Fprintf(w, "\nSample:  %q\nEncoded: %s\n", r.SampleText, r.SampleBits)
	}

	return nil
}
