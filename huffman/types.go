package huffman

import (
	"errors"
	"strconv"
)

// Sentinel errors.
var (
	// ErrEmptyInput is returned by Build and Analyze when there are no symbols.
	ErrEmptyInput = errors.New("huffman: no symbols to encode")

	// ErrNegativeCount is returned by Frequencies.Add for a negative count.
	ErrNegativeCount = errors.New("huffman: negative symbol count")

	// ErrUnknownSymbol is returned by Encode for a symbol that has no codeword.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")

	// ErrInvalidCode is returned by Decode for a bit string that does not
	// decode to a whole number of symbols.
	ErrInvalidCode = errors.New("huffman: invalid code")

	// ErrInvalidUTF8 is returned by Count and Analyze for input that is not
	// valid UTF-8. Distinct invalid bytes would all count as U+FFFD and could
	// not be decoded back.
	ErrInvalidUTF8 = errors.New("huffman: input is not valid UTF-8")
)

// none marks a missing child in the arena.
const none = -1

// Node is one vertex of a Huffman tree.
// Leaves carry a Symbol; internal nodes carry the summed frequency of their subtree.
type Node struct {
	Symbol rune
	Freq   int64
	Left   int // index into Tree.Nodes, -1 if absent
	Right  int // index into Tree.Nodes, -1 if absent
	Leaf   bool
}

// Tree is a Huffman tree stored as an arena of nodes.
type Tree struct {
	Nodes []Node
	Root  int
}

// SymbolCount pairs a symbol with its count.
type SymbolCount struct {
	Symbol rune
	Count  int64
}

// CodeEntry pairs a symbol with its codeword.
type CodeEntry struct {
	Symbol rune
	Code   string
}

// Label returns a printable form of r. Whitespace that would be invisible
// in a table (space, newline, tab, carriage return) is shown quoted and escaped.
func Label(r rune) string {
	switch r {
	case ' ', '\n', '\t', '\r':
		return strconv.QuoteRune(r)
	default:
		return string(r)
	}
}
