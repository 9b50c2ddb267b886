package huffman

// BitsPerSymbol is the fixed-width size assumed for the uncompressed text.
const BitsPerSymbol = 8

// Stats summarizes how well a code table compresses a frequency table.
type Stats struct {
	Symbols        int64   // counted symbols
	Distinct       int     // distinct symbols
	OriginalBits   int64   // Symbols × BitsPerSymbol
	EncodedBits    int64   // Σ count × len(codeword)
	Ratio          float64 // EncodedBits / OriginalBits, 0 for empty input
	SavingsPercent float64 // (1 − Ratio) × 100, 0 for empty input
}

// ComputeStats measures codes against the symbol counts in f.
// Symbols of f missing from codes contribute nothing to EncodedBits.
func ComputeStats(f *Frequencies, codes CodeTable) Stats {
	s := Stats{
		Symbols:      f.Total(),
		Distinct:     f.Len(),
		OriginalBits: f.Total() * BitsPerSymbol,
	}
	for _, sym := range f.order {
		s.EncodedBits += f.counts[sym] * int64(len(codes[sym]))
	}
	if s.OriginalBits > 0 {
		s.Ratio = float64(s.EncodedBits) / float64(s.OriginalBits)
		s.SavingsPercent = (1 - s.Ratio) * 100
	}

	return s
}
