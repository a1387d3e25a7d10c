package cli

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fsgraph/bfs"
	"github.com/katalvlaran/fsgraph/render"
)

func newReachCommand(fsys afero.Fs) *cobra.Command {
	var (
		depth  int
		prunes []string
	)

	cmd := &cobra.Command{
		Use:   "reach [start]",
		Short: "List everything within a number of levels below a path",
		Long: `Walk the graph breadth-first from start (the build root when omitted)
and print each reached path indented by its depth. Unlike --exclude, which
keeps entries out of the graph, --prune only hides them from this listing.`,
		Example: `  # Two levels below src
  fsgraph reach src --depth 2

  # Everything except build output, as a table
  fsgraph reach --prune '**/dist' --style table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if depth < 0 {
				return fmt.Errorf("--depth must be >= 0, got %d", depth)
			}
			for _, p := range prunes {
				if _, err := doublestar.Match(p, p); err != nil {
					return fmt.Errorf("--prune %q: %w", p, err)
				}
			}

			s, err := loadGraph(cmd.Context(), fsys)
			if err != nil {
				return err
			}
			style, err := render.ParseStyle(s.cfg.Style)
			if err != nil {
				return err
			}
			start := s.root
			if len(args) == 1 {
				start = s.resolve(args[0])
			}

			opts := []bfs.Option{bfs.WithContext(cmd.Context()), bfs.WithMaxDepth(depth)}
			if len(prunes) > 0 {
				opts = append(opts, bfs.WithPrune(s.matcher(prunes)))
			}
			res, err := bfs.Walk(s.graph, start, opts...)
			if err != nil {
				return err
			}
			getLogger(cmd.Context()).Debug("walk done",
				"start", res.Start, "reached", res.Len(), "pruned", res.Pruned)

			return render.Reach(cmd.OutOrStdout(), res, style)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 0, "Levels below start to list (0 = unlimited)")
	cmd.Flags().StringSliceVar(&prunes, "prune", nil, "Glob of root-relative paths to leave out (repeatable)")

	return cmd
}

// matcher returns a predicate matching paths against root-relative
// doublestar patterns. Paths outside the root never match.
func (s *session) matcher(patterns []string) func(string) bool {
	return func(p string) bool {
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return false
		}
		rel = filepath.ToSlash(rel)
		for _, pat := range patterns {
			if ok, _ := doublestar.Match(pat, rel); ok {
				return true
			}
		}

		return false
	}
}
