package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/report"
)

func newDijkstraCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dijkstra <edges.csv|->",
		Short: "Shortest distances and paths from a source vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDijkstra(cmd, args[0])
		},
	}
	cmd.Flags().StringP("source", "s", "", "source vertex (required)")
	bindOnRun(cmd, "source", "source")

	return cmd
}

func (a *app) runDijkstra(cmd *cobra.Command, path string) error {
	if a.cfg.Source == "" {
		return errors.New("a source vertex is required (--source or ALGOKIT_SOURCE)")
	}
	g, err := a.loadGraph(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	res, err := dijkstra.Dijkstra(g, a.cfg.Source)
	if err != nil {
		return err
	}
	klog.V(1).InfoS("Shortest paths computed", "source", res.Source, "reached", len(res.Order), "vertices", g.VertexCount())

	return a.write(cmd.OutOrStdout(), report.FromShortestPaths(res, g.Vertices()))
}
