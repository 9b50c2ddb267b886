// Package huffman builds Huffman codes for text.
//
// A Huffman code assigns every distinct symbol a bit string ("codeword") so that
// no codeword is a prefix of another and frequent symbols get shorter codewords.
// Symbols are runes, so input must be valid UTF-8: Count and Analyze reject
// anything else with ErrInvalidUTF8 rather than folding bad bytes into U+FFFD.
//
// Pipeline:
//
//	Frequencies  ── Build ──►  Tree  ── Codes ──►  CodeTable
//	     │                       │                    │
//	     └────────── ComputeStats ◄───────────────────┘
//
// Analyze runs the whole pipeline for a string and returns an Encoding.
//
// Construction:
//
//   - One leaf per distinct symbol is pushed onto a frontier.Frontier keyed by
//     frequency, in order of first appearance. Equal frequencies therefore leave
//     the queue in first-appearance order and merged nodes queue behind the
//     nodes already waiting with the same frequency.
//   - The two smallest nodes are popped (first → left, second → right) and
//     replaced by an internal node carrying their summed frequency, until one
//     node remains.
//   - A single distinct symbol gets a synthetic root with the leaf on the left,
//     so its codeword is "0" rather than the empty string.
//
// The tree is stored as an arena (a slice of Node indexed by int); traversals
// use explicit stacks, so depth is bounded only by the number of distinct
// symbols and never by the goroutine stack.
//
// Complexity: building is O(k log k) for k distinct symbols; counting,
// encoding and decoding are linear in the input.
package huffman
