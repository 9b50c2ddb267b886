// Package edgetable turns tabular edge data (origin, destination, integer
// weight) into an undirected *core.Graph.
//
// Loading is two-staged:
//
//   - Decode reads CSV text into raw Records, resolving the header columns.
//   - Load validates each Record and builds the Graph.
//
// Read combines both. Identifiers are trimmed and case-sensitive. Node IDs
// are created on first mention, so the first origin read becomes the first
// vertex of the graph.
package edgetable

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/algokit/core"
)

// Load builds a Graph from records in order.
//
// Error Conditions (wrapped with the 1-based record number):
//   - ErrMissingField    : origin or destination is blank after trimming.
//   - ErrMalformedRecord : weight is not a base-10 integer.
//
// On error no partial graph is returned.
// Complexity: O(R) for R records.
func Load(records []Record) (*core.Graph, error) {
	g := core.NewGraph()
	for i, rec := range records {
		e, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	return g, nil
}

// Read decodes CSV edge data from r and loads it into a Graph.
func Read(r io.Reader, opts ...Option) (*core.Graph, error) {
	records, err := Decode(r, opts...)
	if err != nil {
		return nil, err
	}

	return Load(records)
}

// parse validates one record.
func parse(rec Record) (core.Edge, error) {
	origin := strings.TrimSpace(rec.Origin)
	destination := strings.TrimSpace(rec.Destination)
	if origin == "" {
		return core.Edge{}, fmt.Errorf("%w: origin is empty", ErrMissingField)
	}
	if destination == "" {
		return core.Edge{}, fmt.Errorf("%w: destination is empty", ErrMissingField)
	}

	weight, err := strconv.ParseInt(strings.TrimSpace(rec.Weight), 10, 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("%w: weight %q: %v", ErrMalformedRecord, rec.Weight, err)
	}

	return core.Edge{From: origin, To: destination, Weight: weight}, nil
}
