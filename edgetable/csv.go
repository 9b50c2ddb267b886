package edgetable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Decode reads CSV edge data with a header row from r.
//
// The header must name the origin, destination and weight columns (see
// Options); names are matched case-insensitively after trimming, and the
// original origen/destino/peso names are accepted for the defaults. Extra
// columns are ignored. Blank lines are skipped by the CSV reader; rows may
// have a varying number of fields, and a missing field reads as "".
//
// Errors: ErrMissingColumn for an incomplete header, or the csv.ParseError
// of a syntactically broken row.
func Decode(r io.Reader, opts ...Option) ([]Record, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.Comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input, no header", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("edgetable: read header: %w", err)
	}

	cols, err := resolveColumns(header, cfg)
	if err != nil {
		return nil, err
	}

	var records []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("edgetable: read row: %w", err)
		}
		records = append(records, Record{
			Origin:      field(row, cols[0]),
			Destination: field(row, cols[1]),
			Weight:      field(row, cols[2]),
		})
	}

	return records, nil
}

// resolveColumns returns the positions of origin, destination and weight.
func resolveColumns(header []string, cfg Options) ([3]int, error) {
	want := [3]string{
		strings.ToLower(cfg.Origin),
		strings.ToLower(cfg.Destination),
		strings.ToLower(cfg.Weight),
	}
	canonical := [3]string{ColumnOrigin, ColumnDestination, ColumnWeight}
	pos := [3]int{-1, -1, -1}

	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		alias := legacyColumns[name]
		for k := range want {
			if pos[k] >= 0 {
				continue
			}
			// Legacy aliases only stand in for columns left at their default name.
			if name == want[k] || (alias == canonical[k] && want[k] == canonical[k]) {
				pos[k] = i
			}
		}
	}

	for k, p := range pos {
		if p < 0 {
			return pos, fmt.Errorf("%w: %q", ErrMissingColumn, want[k])
		}
	}

	return pos, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
