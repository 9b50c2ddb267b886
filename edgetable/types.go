// Package edgetable defines the edge-record type, sentinel errors and
// decoding options for loading tabular edge data into a *core.Graph.
package edgetable

import "errors"

// Sentinel errors returned by the loader.
var (
	// ErrMalformedRecord indicates that a record's weight is not a base-10 integer.
	ErrMalformedRecord = errors.New("edgetable: malformed record")

	// ErrMissingField indicates that origin or destination is blank after trimming.
	ErrMissingField = errors.New("edgetable: missing field")

	// ErrMissingColumn indicates that the CSV header lacks a required column.
	ErrMissingColumn = errors.New("edgetable: missing column")
)

// Default column names of the edge source header.
const (
	ColumnOrigin      = "origin"
	ColumnDestination = "destination"
	ColumnWeight      = "weight"
)

// legacyColumns maps the header names used by the original sample data
// (origen,destino,peso) to the canonical names.
var legacyColumns = map[string]string{
	"origen":  ColumnOrigin,
	"destino": ColumnDestination,
	"peso":    ColumnWeight,
}

// Record is one raw row of the edge source: origin, destination and weight
// exactly as read, before trimming or parsing.
type Record struct {
	Origin      string
	Destination string
	Weight      string
}

// Options configures CSV decoding.
//
// Origin, Destination, Weight – header names of the three required columns.
// Comma                       – field delimiter (default ',').
type Options struct {
	Origin      string
	Destination string
	Weight      string
	Comma       rune
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options for a comma-separated file with an
// origin,destination,weight header.
func DefaultOptions() Options {
	return Options{
		Origin:      ColumnOrigin,
		Destination: ColumnDestination,
		Weight:      ColumnWeight,
		Comma:       ',',
	}
}

// WithColumns overrides the header names of the three required columns.
// Empty arguments keep the current name.
func WithColumns(origin, destination, weight string) Option {
	return func(o *Options) {
		if origin != "" {
			o.Origin = origin
		}
		if destination != "" {
			o.Destination = destination
		}
		if weight != "" {
			o.Weight = weight
		}
	}
}

// WithComma sets the field delimiter. A zero rune keeps the default.
func WithComma(r rune) Option {
	return func(o *Options) {
		if r != 0 {
			o.Comma = r
		}
	}
}
