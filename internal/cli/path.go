package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsgraph/dijkstra"
	"github.com/katalvlaran/fsgraph/render"
)

func newPathCommand(fsys afero.Fs) *cobra.Command {
	var maxHops int

	cmd := &cobra.Command{
		Use:   "path <source> <destination>",
		Short: "Print the shortest containment path between two paths",
		Long: `Find the minimum number of "contains" steps leading from source to
destination. Edges only point from a directory to its entries, so the
destination must lie below the source (or be reachable through a symlink).`,
		Example: `  fsgraph path . src/main.go
  fsgraph path /etc /etc/ssh/sshd_config --root /etc`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadGraph(cmd.Context(), fsys)
			if err != nil {
				return err
			}
			var opts []dijkstra.Option
			if maxHops > 0 {
				opts = append(opts, dijkstra.WithMaxHops(maxHops))
			}
			res, err := dijkstra.ShortestPath(s.graph, s.resolve(args[0]), s.resolve(args[1]), opts...)
			if err != nil {
				return err
			}
			return render.Path(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "Give up beyond this many hops (0 = unlimited)")

	return cmd
}
