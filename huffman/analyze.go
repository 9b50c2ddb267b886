package huffman

import (
	"fmt"
	"unicode/utf8"
)

// Encoding bundles everything derived from one text.
type Encoding struct {
	Frequencies *Frequencies
	Tree        *Tree
	Codes       CodeTable
	Stats       Stats
}

// Analyze counts the runes of text, builds the tree and code table and
// measures the compression. Empty text yields ErrEmptyInput and text that is
// not valid UTF-8 yields ErrInvalidUTF8.
func Analyze(text string) (*Encoding, error) {
	if at := invalidOffset(text); at >= 0 {
		return nil, fmt.Errorf("%w: byte offset %d", ErrInvalidUTF8, at)
	}

	return AnalyzeFrequencies(CountString(text))
}

// AnalyzeFrequencies is Analyze for an existing frequency table.
func AnalyzeFrequencies(f *Frequencies) (*Encoding, error) {
	tree, err := Build(f)
	if err != nil {
		return nil, err
	}
	codes := tree.Codes()

	return &Encoding{
		Frequencies: f,
		Tree:        tree,
		Codes:       codes,
		Stats:       ComputeStats(f, codes),
	}, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence
// in s, or -1.
func invalidOffset(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i, r := range s {
		if r != utf8.RuneError {
			continue
		}
		if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
			return i
		}
	}

	return -1
}
