// Package report turns engine results into presentation-ready summaries and
// writes them as aligned text tables, JSON, YAML or TOML.
//
// The From* constructors are pure; Write is the only function that performs I/O.
package report
