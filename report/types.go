package report

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrUnknownFormat is returned for a format name Write does not support.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrUnsupportedValue is returned when FormatText is asked to render a
	// value that is not one of the report types.
	ErrUnsupportedValue = errors.New("report: value cannot be rendered as text")
)

// Format selects the output encoding of Write.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// EdgeRow is one selected spanning-tree edge.
type EdgeRow struct {
	From   string `json:"from" toml:"from"`
	To     string `json:"to" toml:"to"`
	Weight int64  `json:"weight" toml:"weight"`
}

// SpanningTreeReport summarizes a Prim or Kruskal run.
type SpanningTreeReport struct {
	Method      string    `json:"method" toml:"method"`
	Root        string    `json:"root,omitempty" toml:"root,omitempty"`
	Vertices    int       `json:"vertices" toml:"vertices"`
	Covered     int       `json:"covered" toml:"covered"`
	Components  int       `json:"components" toml:"components"`
	Complete    bool      `json:"complete" toml:"complete"`
	TotalWeight int64     `json:"totalWeight" toml:"total_weight"`
	Edges       []EdgeRow `json:"edges" toml:"edges"`
}

// DistanceRow is the shortest-path outcome for one vertex.
type DistanceRow struct {
	Vertex      string   `json:"vertex" toml:"vertex"`
	Reachable   bool     `json:"reachable" toml:"reachable"`
	Distance    int64    `json:"distance" toml:"distance"`
	Predecessor string   `json:"predecessor,omitempty" toml:"predecessor,omitempty"`
	Path        []string `json:"path,omitempty" toml:"path,omitempty"`
}

// ShortestPathReport summarizes a Dijkstra run.
type ShortestPathReport struct {
	Source string        `json:"source" toml:"source"`
	Rows   []DistanceRow `json:"rows" toml:"rows"`
}

// CodeRow is one symbol of a Huffman code table.
type CodeRow struct {
	Symbol string `json:"symbol" toml:"symbol"`
	Count  int64  `json:"count" toml:"count"`
	Code   string `json:"code" toml:"code"`
	Bits   int    `json:"bits" toml:"bits"`
}

// HuffmanReport summarizes a Huffman encoding.
type HuffmanReport struct {
	Symbols        int64     `json:"symbols" toml:"symbols"`
	Distinct       int       `json:"distinct" toml:"distinct"`
	OriginalBits   int64     `json:"originalBits" toml:"original_bits"`
	EncodedBits    int64     `json:"encodedBits" toml:"encoded_bits"`
	Ratio          float64   `json:"ratio" toml:"ratio"`
	SavingsPercent float64   `json:"savingsPercent" toml:"savings_percent"`
	Codes          []CodeRow `json:"codes" toml:"codes"`
	Tree           string    `json:"tree,omitempty" toml:"tree,omitempty"`
	SampleText     string    `json:"sampleText,omitempty" toml:"sample_text,omitempty"`
	SampleBits     string    `json:"sampleBits,omitempty" toml:"sample_bits,omitempty"`
}
