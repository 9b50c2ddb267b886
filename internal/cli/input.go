package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/edgetable"
	"github.com/katalvlaran/algokit/report"
)

// stdinPath selects standard input instead of a file.
const stdinPath = "-"

// bind attaches a flag to a viper key. Flags are registered by this package,
// so a lookup miss is a programming error.
func bind(f *pflag.Flag, key string) {
	if err := viper.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

// viperKey annotates a subcommand flag with the viper key it feeds.
const viperKey = "algokit/viper-key"

// bindOnRun marks a subcommand flag for binding when that subcommand runs.
// Several subcommands share keys (root, source), so binding at construction
// would leave only the last command's flag attached.
func bindOnRun(cmd *cobra.Command, flag, key string) {
	if err := cmd.Flags().SetAnnotation(flag, viperKey, []string{key}); err != nil {
		panic(err)
	}
}

// bindAnnotated binds the annotated local flags of the running command.
func bindAnnotated(cmd *cobra.Command) {
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if keys, ok := f.Annotations[viperKey]; ok && len(keys) == 1 {
			bind(f, keys[0])
		}
	})
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdinPath {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open input %s", path)
	}

	return f, nil
}

// loadGraph reads an edge table from path using the configured columns and separator.
func (a *app) loadGraph(path string, stdin io.Reader) (*core.Graph, error) {
	rc, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	g, err := edgetable.Read(rc, a.cfg.TableOptions()...)
	if err != nil {
		return nil, errors.Wrapf(err, "load graph from %s", path)
	}
	klog.V(1).InfoS("Graph loaded", "path", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// readText reads the whole input as text.
func readText(path string, stdin io.Reader) (string, error) {
	rc, err := openInput(path, stdin)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", errors.Wrapf(err, "read text from %s", path)
	}

	return string(data), nil
}

func (a *app) write(w io.Writer, v any) error {
	format, err := report.ParseFormat(a.cfg.Format)
	if err != nil {
		return err
	}

	return errors.Wrap(report.Write(w, format, v), "write report")
}
