// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// api.go - Build, the single entry point of the package.

package builder

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/fsenum"
	"github.com/katalvlaran/fsgraph/pathid"
)

// frame is one pending directory on the work stack.
type frame struct {
	dir   string
	depth int
}

// walker holds the mutable state of one Build call.
type walker struct {
	g     *core.Graph
	en    fsenum.Enumerator
	cfg   builderConfig
	root  string
	stack []frame
	rep   *Report
}

// Build adds the subtree under root to g.
//
// Implementation:
//   - Stage 1: validate inputs and options.
//   - Stage 2: probe root; missing or non-directory → StatusInvalidRoot.
//   - Stage 3: add the root vertex and expand directories from a work stack.
//
// Returns:
//   - *Report: always non-nil when err == nil.
//   - error: ErrNilGraph, ErrNilEnumerator or ErrOptionViolation only.
//
// Complexity:
//   - Time O(V+E) graph work plus one List call per directory.
//   - Space O(width of the tree) for the stack.
func Build(g *core.Graph, en fsenum.Enumerator, root string, opts ...BuilderOption) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if en == nil {
		return nil, ErrNilEnumerator
	}
	cfg := newBuilderConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	root = pathid.Clean(root)
	rep := &Report{Root: root, Status: StatusInvalidRoot}
	if root == "" {
		return rep, nil
	}

	w := &walker{g: g, en: en, cfg: cfg, root: root, rep: rep}

	info, err := en.Probe(root)
	if err != nil {
		w.record(EntryError{Path: root, Op: OpProbe, Err: err})
		return rep, nil
	}
	if !info.Exists || !info.IsDir {
		cfg.logger.Debug("root is not a directory", "path", root, "exists", info.Exists)
		return rep, nil
	}

	rep.Status = StatusBuilt
	if err := g.AddVertex(root); err != nil {
		return nil, fmt.Errorf("builder: root %q: %w", root, err)
	}
	if cfg.descend(0) {
		w.stack = append(w.stack, frame{dir: root})
	}
	w.run()

	return rep, nil
}

// run drains the work stack.
func (w *walker) run() {
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.expand(top)
	}
}

// expand lists one directory, links its entries and schedules its
// sub-directories so that the first listed one is expanded next.
func (w *walker) expand(f frame) {
	entries, err := w.en.List(f.dir)
	if err != nil {
		w.record(EntryError{Path: f.dir, Op: OpList, Depth: f.depth, Err: err})
		return
	}
	w.rep.Dirs++

	depth := f.depth + 1
	var subdirs []frame
	for _, e := range entries {
		if w.skip(e.Path) {
			w.rep.Excluded++
			continue
		}
		if err := w.g.AddEdge(f.dir, e.Path); err != nil {
			w.record(EntryError{Path: e.Path, Op: OpLink, Depth: depth, Err: err})
			continue
		}
		w.rep.Entries++

		if e.Err != nil {
			w.record(EntryError{Path: e.Path, Op: OpResolve, Depth: depth, Err: e.Err})
			continue
		}
		if e.IsDir && w.cfg.descend(depth) {
			subdirs = append(subdirs, frame{dir: pathid.Clean(e.Path), depth: depth})
		}
	}

	for i := len(subdirs) - 1; i >= 0; i-- {
		w.stack = append(w.stack, subdirs[i])
	}
}

// skip applies the exclude patterns to p relative to root.
func (w *walker) skip(p string) bool {
	if len(w.cfg.excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.root, p)
	if err != nil {
		return false
	}

	return w.cfg.excluded(filepath.ToSlash(rel))
}

// record logs, reports and records a per-entry failure.
func (w *walker) record(e EntryError) {
	w.cfg.logger.Warn("skipping entry",
		slog.String("path", e.Path),
		slog.String("op", string(e.Op)),
		slog.Int("depth", e.Depth),
		slog.Any("err", e.Err),
	)
	w.cfg.onError(e)
	w.rep.Errors = append(w.rep.Errors, e)
}
