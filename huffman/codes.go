package huffman

import (
	"fmt"
	"sort"
	"strings"
)

// CodeTable maps every symbol to its codeword.
type CodeTable map[rune]string

// Codes derives the codeword of every leaf: "0" for each step left, "1" for
// each step right.
func (t *Tree) Codes() CodeTable {
	type frame struct {
		node int
		code string
	}

	codes := make(CodeTable, t.Leaves())
	stack := []frame{{node: t.Root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := t.Nodes[top.node]
		if nd.Leaf {
			codes[nd.Symbol] = top.code
			continue
		}
		if nd.Right != none {
			stack = append(stack, frame{node: nd.Right, code: top.code + "1"})
		}
		if nd.Left != none {
			stack = append(stack, frame{node: nd.Left, code: top.code + "0"})
		}
	}

	return codes
}

// IsPrefixFree reports whether no codeword is a prefix of another.
func (c CodeTable) IsPrefixFree() bool {
	sorted := make([]string, 0, len(c))
	for _, code := range c {
		sorted = append(sorted, code)
	}
	sort.Strings(sorted)
	// In sorted order a prefix sorts immediately before some word it prefixes.
	for i := 1; i < len(sorted); i++ {
		if strings.HasPrefix(sorted[i], sorted[i-1]) {
			return false
		}
	}

	return true
}

// Sorted lists the table by codeword length, then codeword.
func (c CodeTable) Sorted() []CodeEntry {
	out := make([]CodeEntry, 0, len(c))
	for sym, code := range c {
		out = append(out, CodeEntry{Symbol: sym, Code: code})
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Code) != len(out[j].Code) {
			return len(out[i].Code) < len(out[j].Code)
		}
		return out[i].Code < out[j].Code
	})

	return out
}

// Encode concatenates the codewords of the runes of text.
func (t *Tree) Encode(text string) (string, error) {
	codes := t.Codes()

	var sb strings.Builder
	for _, r := range text {
		code, ok := codes[r]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, r)
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// Decode walks the tree for each bit of bits and emits a symbol at every leaf.
// bits may contain only '0' and '1' and must end on a symbol boundary.
func (t *Tree) Decode(bits string) (string, error) {
	var sb strings.Builder
	cur := t.Root
	for i, b := range bits {
		nd := t.Nodes[cur]
		switch b {
		case '0':
			cur = nd.Left
		case '1':
			cur = nd.Right
		default:
			return "", fmt.Errorf("%w: non-binary digit %q at offset %d", ErrInvalidCode, b, i)
		}
		if cur == none {
			return "", fmt.Errorf("%w: no branch at offset %d", ErrInvalidCode, i)
		}
		if t.Nodes[cur].Leaf {
			sb.WriteRune(t.Nodes[cur].Symbol)
			cur = t.Root
		}
	}
	if cur != t.Root {
		return "", fmt.Errorf("%w: truncated trailing code", ErrInvalidCode)
	}

	return sb.String(), nil
}
