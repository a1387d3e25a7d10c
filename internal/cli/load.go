package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/fsenum"
	"github.com/katalvlaran/fsgraph/internal/config"
)

// session is a graph built for one command from the resolved config.
type session struct {
	cfg    *config.Config
	root   string
	graph  *core.Graph
	report *builder.Report
}

// loadGraph builds the graph for cfg.Root. An invalid root is an error at the
// CLI level even though Build reports it as a status.
func loadGraph(ctx context.Context, fsys afero.Fs) (*session, error) {
	cfg := getConfig(ctx)
	logger := getLogger(ctx)

	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", cfg.Root, err)
	}

	opts := []builder.BuilderOption{
		builder.WithLogger(logger),
		builder.WithMaxDepth(cfg.MaxDepth),
	}
	if len(cfg.Exclude) > 0 {
		opts = append(opts, builder.WithExclude(cfg.Exclude...))
	}

	g := core.NewGraph()
	rep, err := builder.Build(g, fsenum.New(fsys), root, opts...)
	if err != nil {
		return nil, err
	}
	if rep.Status == builder.StatusInvalidRoot {
		return nil, fmt.Errorf("root %q is not a readable directory", rep.Root)
	}
	logger.Info("graph built",
		"root", rep.Root, "vertices", g.VertexCount(), "edges", g.EdgeCount(),
		"errors", len(rep.Errors))

	return &session{cfg: cfg, root: rep.Root, graph: g, report: rep}, nil
}

// resolve turns a command argument into a vertex ID: absolute paths are used
// as given, anything else is taken relative to the build root.
func (s *session) resolve(arg string) string {
	if filepath.IsAbs(arg) {
		return arg
	}
	return filepath.Join(s.root, arg)
}
