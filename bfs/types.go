package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/fsgraph/pathid"
)

var (
	// ErrNilGraph is returned when Walk gets a nil graph.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrVertexNotFound is returned when the start path is not a vertex.
	ErrVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrBadDepth is the panic value of WithMaxDepth for a negative depth.
	ErrBadDepth = errors.New("bfs: depth must be non-negative")

	// ErrNotReached is returned by PathTo for a path the walk did not reach.
	ErrNotReached = errors.New("bfs: path not reached")
)

// Options configures one Walk.
type Options struct {
	// Ctx is polled once per visited path.
	Ctx context.Context

	// MaxDepth bounds the number of containment steps from the start.
	// 0 means no bound.
	MaxDepth int

	// Prune reports paths that must not be entered. A pruned path is not
	// visited and nothing is reached through it.
	Prune func(path string) bool

	// OnVisit sees every visit in order; an error stops the walk.
	OnVisit func(Visit) error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions walks everything reachable, without hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to paths at most d steps below the start.
// d == 0 removes the limit. Panics on d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(ErrBadDepth.Error())
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithPrune skips every path for which fn returns true. The start path is
// never pruned.
func WithPrune(fn func(path string) bool) Option {
	return func(o *Options) {
		o.Prune = fn
	}
}

// WithOnVisit registers fn for every visit.
func WithOnVisit(fn func(Visit) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Visit is one path reached by the walk.
type Visit struct {
	Path   string
	Depth  int    // containment steps from the start
	Parent string // "" for the start
}

// Result lists the visits of one Walk in order: by depth, then by the
// insertion order of each directory's entries.
type Result struct {
	Start  string
	Visits []Visit
	Pruned int // distinct paths skipped by Prune

	at map[string]int // path → position in Visits
}

// Len returns the number of visited paths, the start included.
func (r *Result) Len() int { return len(r.Visits) }

// Order returns the visited paths in visit order.
func (r *Result) Order() []string {
	out := make([]string, len(r.Visits))
	for i, v := range r.Visits {
		out[i] = v.Path
	}

	return out
}

// Depth returns the number of steps from the start to p, or -1 if p was not
// reached.
func (r *Result) Depth(p string) int {
	i, ok := r.at[pathid.Clean(p)]
	if !ok {
		return -1
	}

	return r.Visits[i].Depth
}

// Parents maps every visited path except the start to its parent.
func (r *Result) Parents() map[string]string {
	out := make(map[string]string, len(r.Visits))
	for _, v := range r.Visits {
		if v.Parent != "" {
			out[v.Path] = v.Parent
		}
	}

	return out
}

// Layers groups the visited paths by depth; Layers()[d] holds the paths d
// steps below the start.
func (r *Result) Layers() [][]string {
	var out [][]string
	for _, v := range r.Visits {
		if v.Depth == len(out) {
			out = append(out, nil)
		}
		out[v.Depth] = append(out[v.Depth], v.Path)
	}

	return out
}

// PathTo returns the containment chain from the start to p.
func (r *Result) PathTo(p string) ([]string, error) {
	i, ok := r.at[pathid.Clean(p)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, p)
	}
	out := make([]string, r.Visits[i].Depth+1)
	for k := len(out) - 1; k >= 0; k-- {
		v := r.Visits[i]
		out[k] = v.Path
		i = r.at[v.Parent]
	}

	return out, nil
}
