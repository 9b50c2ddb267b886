// Package cli wires the algokit engines to a cobra command tree.
package cli

import (
	goflag "flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/algokit/internal/config"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config
}

// NewRootCommand builds the algokit command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "algokit",
		Short: "Run classical graph and coding algorithms on local files",
		Long: `algokit loads a weighted edge table (CSV with origin, destination and weight
columns) or a text file and runs Prim, Kruskal, Dijkstra or Huffman coding on it.

Settings come from flags, ALGOKIT_* environment variables and an optional
.algokit.{toml,yaml,json} file in the working or home directory.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .algokit in . or $HOME)")
	pf.StringP("format", "o", "text", "output format: text, json, yaml or toml")
	pf.String("origin-column", "origin", "CSV header of the origin column")
	pf.String("destination-column", "destination", "CSV header of the destination column")
	pf.String("weight-column", "weight", "CSV header of the weight column")
	pf.String("comma", ",", "CSV field separator")
	bind(pf.Lookup("format"), "format")
	bind(pf.Lookup("origin-column"), "columns.origin")
	bind(pf.Lookup("destination-column"), "columns.destination")
	bind(pf.Lookup("weight-column"), "columns.weight")
	bind(pf.Lookup("comma"), "comma")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	pf.AddGoFlagSet(klogFlags)

	root.AddCommand(
		newPrimCommand(a),
		newKruskalCommand(a),
		newMSTCommand(a),
		newDijkstraCommand(a),
		newHuffmanCommand(a),
	)

	return root
}

// Execute runs the command tree against os.Args and flushes the log.
func Execute() error {
	defer klog.Flush()

	if err := NewRootCommand().Execute(); err != nil {
		klog.V(2).ErrorS(err, "Command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}

	return nil
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	bindAnnotated(cmd)
	if err := config.Setup(a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	klog.V(3).InfoS("Configuration loaded", "command", cmd.Name(), "file", viper.ConfigFileUsed(), "format", cfg.Format)

	return nil
}
