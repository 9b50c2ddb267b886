package huffman_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/huffman"
)

func TestCount_FirstAppearanceOrder(t *testing.T) {
	f, err := huffman.Count(strings.NewReader("hello, wörld"))
	require.NoError(t, err)

	want := []rune{'h', 'e', 'l', 'o', ',', ' ', 'w', 'ö', 'r', 'd'}
	if diff := cmp.Diff(want, f.Symbols()); diff != "" {
		t.Errorf("Symbols() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(3), f.Count('l'))
	assert.Equal(t, int64(12), f.Total())
	assert.Equal(t, 10, f.Len())
	assert.Equal(t, huffman.SymbolCount{Symbol: 'l', Count: 3}, f.SortedByCount()[0])
	assert.Equal(t, huffman.SymbolCount{Symbol: 'o', Count: 2}, f.SortedByCount()[1])
}

func TestCount_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := huffman.Count(iotest.ErrReader(boom))
	assert.ErrorIs(t, err, boom)
}

// TestInvalidUTF8 checks that bytes outside UTF-8 are rejected instead of
// collapsing into one U+FFFD symbol that cannot round-trip.
func TestInvalidUTF8(t *testing.T) {
	_, err := huffman.Analyze("a\xffb\xfe")
	assert.ErrorIs(t, err, huffman.ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "byte offset 1")

	_, err = huffman.Count(strings.NewReader("ok\xff"))
	assert.ErrorIs(t, err, huffman.ErrInvalidUTF8)
	assert.Contains(t, err.Error(), "byte offset 2")

	// A literal U+FFFD is a valid symbol and round-trips.
	enc, err := huffman.Analyze("a\uFFFDb")
	require.NoError(t, err)
	bits, err := enc.Tree.Encode("a\uFFFDb")
	require.NoError(t, err)
	text, err := enc.Tree.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, "a\uFFFDb", text)
}

func TestFrequencies_Add(t *testing.T) {
	f := huffman.NewFrequencies()
	require.NoError(t, f.Add('x', 5))
	require.NoError(t, f.Add('y', 0))
	assert.ErrorIs(t, f.Add('z', -1), huffman.ErrNegativeCount)
	assert.Equal(t, []rune{'x', 'y'}, f.Symbols())
	assert.Equal(t, int64(5), f.Total())
}

func TestBuild_Empty(t *testing.T) {
	_, err := huffman.Build(huffman.NewFrequencies())
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
	_, err = huffman.Analyze("")
	assert.ErrorIs(t, err, huffman.ErrEmptyInput)
}

func TestAnalyze_TwoSymbols(t *testing.T) {
	enc, err := huffman.Analyze("aaab")
	require.NoError(t, err)

	assert.Equal(t, huffman.CodeTable{'b': "0", 'a': "1"}, enc.Codes)
	assert.Equal(t, int64(32), enc.Stats.OriginalBits)
	assert.Equal(t, int64(4), enc.Stats.EncodedBits)
	assert.InDelta(t, 0.125, enc.Stats.Ratio, 1e-9)
	assert.InDelta(t, 87.5, enc.Stats.SavingsPercent, 1e-9)
	assert.Equal(t, int64(4), enc.Tree.Nodes[enc.Tree.Root].Freq)
}

func TestAnalyze_SingleSymbol(t *testing.T) {
	enc, err := huffman.Analyze("fffff")
	require.NoError(t, err)

	assert.Equal(t, huffman.CodeTable{'f': "0"}, enc.Codes)
	assert.Equal(t, int64(5), enc.Stats.EncodedBits)

	root := enc.Tree.Nodes[enc.Tree.Root]
	assert.False(t, root.Leaf)
	assert.Equal(t, -1, root.Right)
	assert.True(t, enc.Tree.Nodes[root.Left].Leaf)

	bits, err := enc.Tree.Encode("fff")
	require.NoError(t, err)
	assert.Equal(t, "000", bits)
	out, err := enc.Tree.Decode(bits)
	require.NoError(t, err)
	assert.Equal(t, "fff", out)

	_, err = enc.Tree.Decode("1")
	assert.ErrorIs(t, err, huffman.ErrInvalidCode)
}

func TestBuild_Deterministic(t *testing.T) {
	// Equal counts: a, b, c, d each once. Ties resolve by first appearance,
	// and merged nodes queue behind waiting nodes of equal weight.
	enc, err := huffman.Analyze("abcd")
	require.NoError(t, err)
	assert.Equal(t, huffman.CodeTable{'a': "00", 'b': "01", 'c': "10", 'd': "11"}, enc.Codes)
}

func TestCodes_ShorterForFrequent(t *testing.T) {
	enc, err := huffman.Analyze("aaaaaaaabbbbccd")
	require.NoError(t, err)
	codes := enc.Codes
	assert.LessOrEqual(t, len(codes['a']), len(codes['b']))
	assert.LessOrEqual(t, len(codes['b']), len(codes['c']))
	assert.LessOrEqual(t, len(codes['c']), len(codes['d']))
	assert.True(t, codes.IsPrefixFree())

	sorted := codes.Sorted()
	require.Len(t, sorted, 4)
	assert.Equal(t, 'a', sorted[0].Symbol)
}

func TestCodeTable_IsPrefixFree(t *testing.T) {
	assert.True(t, huffman.CodeTable{'a': "0", 'b': "10", 'c': "11"}.IsPrefixFree())
	assert.False(t, huffman.CodeTable{'a': "1", 'b': "10"}.IsPrefixFree())
	assert.False(t, huffman.CodeTable{'a': "01", 'b': "01"}.IsPrefixFree())
}

func TestEncode_UnknownSymbol(t *testing.T) {
	enc, err := huffman.Analyze("abc")
	require.NoError(t, err)
	_, err = enc.Tree.Encode("abz")
	assert.ErrorIs(t, err, huffman.ErrUnknownSymbol)
}

func TestDecode_Invalid(t *testing.T) {
	enc, err := huffman.Analyze("aaabbc")
	require.NoError(t, err)

	_, err = enc.Tree.Decode("01x")
	assert.ErrorIs(t, err, huffman.ErrInvalidCode)

	// The longest codeword has two bits; its first bit alone is truncated.
	var long string
	for _, code := range enc.Codes {
		if len(code) == 2 {
			long = code
		}
	}
	_, err = enc.Tree.Decode(long[:1])
	assert.ErrorIs(t, err, huffman.ErrInvalidCode)
}

func TestRoundTrip_RandomText(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	alphabet := []rune("abcdefghij \n\tñ€")
	for n := 1; n <= 200; n += 13 {
		runes := make([]rune, n)
		for i := range runes {
			// Skewed distribution so codeword lengths differ.
			runes[i] = alphabet[r.Intn(1+r.Intn(len(alphabet)))]
		}
		text := string(runes)

		enc, err := huffman.Analyze(text)
		require.NoError(t, err)
		require.True(t, enc.Codes.IsPrefixFree())

		bits, err := enc.Tree.Encode(text)
		require.NoError(t, err)
		assert.Equal(t, enc.Stats.EncodedBits, int64(len(bits)))

		out, err := enc.Tree.Decode(bits)
		require.NoError(t, err)
		assert.Equal(t, text, out)

		assert.Equal(t, int64(len(runes))*8, enc.Stats.OriginalBits)
		assert.Equal(t, enc.Frequencies.Len(), enc.Tree.Leaves())
	}
}

func TestRender(t *testing.T) {
	enc, err := huffman.Analyze("aab c")
	require.NoError(t, err)

	// Queue a2 b1 ' '1 c1: pop b,' ' → n2; queue a2 c1 n2;
	// pop c then a (a waited longer than n2) → n3; pop n2,n3 → root 5.
	want := "(f=5)\n" +
		"├── (f=2)\n" +
		"│   ├── [b] f=1\n" +
		"│   └── [' '] f=1\n" +
		"└── (f=3)\n" +
		"    ├── [c] f=1\n" +
		"    └── [a] f=2\n"
	assert.Equal(t, want, enc.Tree.Render())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "' '", huffman.Label(' '))
	assert.Equal(t, `'\n'`, huffman.Label('\n'))
	assert.Equal(t, `'\t'`, huffman.Label('\t'))
	assert.Equal(t, "é", huffman.Label('é'))
}

func TestComputeStats_EmptyTable(t *testing.T) {
	s := huffman.ComputeStats(huffman.NewFrequencies(), huffman.CodeTable{})
	assert.Zero(t, s.Ratio)
	assert.Zero(t, s.SavingsPercent)
}
