package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"unicode/utf8"
)

// Frequencies counts symbols and remembers the order in which they first appeared.
type Frequencies struct {
	order  []rune
	counts map[rune]int64
	total  int64
}

// NewFrequencies returns an empty frequency table.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[rune]int64)}
}

// CountString counts the runes of s. Every invalid UTF-8 byte counts as
// utf8.RuneError; callers that need a lossless code check utf8.ValidString
// first, as Analyze does.
func CountString(s string) *Frequencies {
	f := NewFrequencies()
	for _, r := range s {
		f.add(r, 1)
	}

	return f
}

// Count reads r to EOF and counts its runes.
// Invalid UTF-8 yields ErrInvalidUTF8 with the byte offset of the bad input.
func Count(r io.Reader) (*Frequencies, error) {
	f := NewFrequencies()
	br := bufio.NewReader(r)
	var offset int64
	for {
		sym, size, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return f, nil
		}
		if err != nil {
			return nil, fmt.Errorf("huffman: read input: %w", err)
		}
		if sym == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("%w: byte offset %d", ErrInvalidUTF8, offset)
		}
		f.add(sym, 1)
		offset += int64(size)
	}
}

// Add records n more occurrences of sym. A zero count registers the symbol
// without occurrences.
func (f *Frequencies) Add(sym rune, n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %q has %d", ErrNegativeCount, sym, n)
	}
	f.add(sym, n)

	return nil
}

func (f *Frequencies) add(sym rune, n int64) {
	if _, ok := f.counts[sym]; !ok {
		f.order = append(f.order, sym)
	}
	f.counts[sym] += n
	f.total += n
}

// Symbols returns the distinct symbols in first-appearance order.
func (f *Frequencies) Symbols() []rune {
	out := make([]rune, len(f.order))
	copy(out, f.order)

	return out
}

// Count returns the number of occurrences of sym.
func (f *Frequencies) Count(sym rune) int64 { return f.counts[sym] }

// Total returns the number of counted symbols.
func (f *Frequencies) Total() int64 { return f.total }

// Len returns the number of distinct symbols.
func (f *Frequencies) Len() int { return len(f.order) }

// SortedByCount lists symbols by descending count; equal counts keep
// first-appearance order.
func (f *Frequencies) SortedByCount() []SymbolCount {
	out := make([]SymbolCount, len(f.order))
	for i, sym := range f.order {
		out[i] = SymbolCount{Symbol: sym, Count: f.counts[sym]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	return out
}
