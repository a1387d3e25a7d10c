package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsgraph/prim"
	"github.com/katalvlaran/fsgraph/render"
)

func newTreeCommand(fsys afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree [start]",
		Short: "Print a spanning tree of everything reachable from start",
		Long: `Grow a spanning tree with Prim's algorithm (unit weights) from start,
or from the build root when start is omitted. Extra routes created by
symlinks are dropped so every path appears exactly once.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadGraph(cmd.Context(), fsys)
			if err != nil {
				return err
			}
			var opts []prim.Option
			if len(args) == 1 {
				opts = append(opts, prim.WithRoot(s.resolve(args[0])))
			}
			tree, err := prim.SpanningTree(s.graph, opts...)
			if err != nil {
				return err
			}
			return render.Tree(cmd.OutOrStdout(), tree)
		},
	}

	return cmd
}
