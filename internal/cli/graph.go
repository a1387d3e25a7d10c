package cli

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsgraph/render"
)

func newGraphCommand(fsys afero.Fs) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the containment graph",
		Long: `Build the graph for --root and print every vertex with the entries it
directly contains.`,
		Example: `  # Plain adjacency list of the current directory
  fsgraph graph

  # Table layout, skipping VCS metadata
  fsgraph graph --style table --exclude '**/.git'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadGraph(cmd.Context(), fsys)
			if err != nil {
				return err
			}
			style, err := render.ParseStyle(s.cfg.Style)
			if err != nil {
				return err
			}
			if err := render.Adjacency(cmd.OutOrStdout(), s.graph, style); err != nil {
				return err
			}
			if stats || !s.report.OK() {
				return render.Report(cmd.ErrOrStderr(), s.report)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&stats, "stats", false, "Print a build summary to stderr")

	return cmd
}
