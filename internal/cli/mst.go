package cli

import (
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/prim_kruskal"
	"github.com/katalvlaran/algokit/report"
)

func newPrimCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prim <edges.csv|->",
		Short: "Minimum spanning tree grown from a root with Prim's algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMST(cmd, args[0], prim_kruskal.MethodPrim)
		},
	}
	addRootFlag(cmd)

	return cmd
}

func newKruskalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kruskal <edges.csv|->",
		Short: "Minimum spanning tree (or forest) with Kruskal's algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMST(cmd, args[0], prim_kruskal.MethodKruskal)
		},
	}
}

func newMSTCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst <edges.csv|->",
		Short: "Minimum spanning tree with the configured method (--method)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMST(cmd, args[0], a.cfg.Method)
		},
	}
	cmd.Flags().String("method", prim_kruskal.MethodKruskal, "prim or kruskal")
	addRootFlag(cmd)
	bindOnRun(cmd, "method", "method")

	return cmd
}

func addRootFlag(cmd *cobra.Command) {
	cmd.Flags().String("root", "", "Prim start vertex (default: first vertex of the file)")
	bindOnRun(cmd, "root", "root")
}

func (a *app) runMST(cmd *cobra.Command, path, method string) error {
	g, err := a.loadGraph(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	tree, err := prim_kruskal.Compute(g, prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(a.cfg.Root))
	if err != nil {
		return err
	}

	root := ""
	if method == prim_kruskal.MethodPrim {
		root = primRoot(g, a.cfg.Root)
	}
	rep, err := report.FromSpanningTree(g, method, root, tree)
	if err != nil {
		return err
	}
	if !rep.Complete {
		klog.InfoS("Graph is disconnected; result is partial", "method", method, "edges", tree.Len(),
			"vertices", rep.Vertices, "covered", rep.Covered, "components", rep.Components)
	}
	klog.V(1).InfoS("Spanning tree computed", "method", method, "edges", tree.Len(), "totalWeight", tree.TotalWeight)

	return a.write(cmd.OutOrStdout(), rep)
}

func primRoot(g *core.Graph, configured string) string {
	if configured != "" {
		return configured
	}
	if vs := g.Vertices(); len(vs) > 0 {
		return vs[0]
	}
	return ""
}
