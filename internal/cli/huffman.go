package cli

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/algokit/huffman"
	"github.com/katalvlaran/algokit/report"
)

func newHuffmanCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "huffman <text-file|->",
		Short: "Huffman code table and compression figures for a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runHuffman(cmd, args[0])
		},
	}
	cmd.Flags().Bool("tree", false, "include the rendered Huffman tree")
	cmd.Flags().Int("sample", 50, "encode the first N characters as a sample (0 disables)")
	bindOnRun(cmd, "tree", "show_tree")
	bindOnRun(cmd, "sample", "sample")

	return cmd
}

func (a *app) runHuffman(cmd *cobra.Command, path string) error {
	text, err := readText(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	enc, err := huffman.Analyze(text)
	if err != nil {
		return err
	}
	klog.V(1).InfoS("Huffman code built", "symbols", enc.Stats.Symbols, "distinct", enc.Stats.Distinct,
		"encodedBits", enc.Stats.EncodedBits)

	rep, err := report.FromHuffman(enc, report.HuffmanOptions{
		ShowTree:      a.cfg.ShowTree,
		Sample:        prefixRunes(text, a.cfg.Sample),
		MaxSampleBits: a.cfg.SampleBits,
	})
	if err != nil {
		return err
	}

	return a.write(cmd.OutOrStdout(), rep)
}

// prefixRunes returns the first n runes of s.
func prefixRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}

	return s
}
