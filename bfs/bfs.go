package bfs

import (
	"fmt"

	"github.com/katalvlaran/fsgraph/core"
)

// unseen marks a vertex the walk has not queued.
const unseen = -1

// walk is the state of one Walk call, addressed by core's dense index.
type walk struct {
	g      *core.Graph
	opts   Options
	depth  []int
	parent []int
	pruned []bool
	queue  []int
	res    *Result
}

// Walk visits every path reachable from start, nearest first.
//
// Successors are queued in insertion order, so the visit sequence, depths and
// parents are reproducible and equal the unit-weight shortest-path tree.
// A path reached along several edges (a symlinked directory listed twice)
// is visited once, from the first parent that queued it.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ctx.Err() on cancellation, and
// OnVisit errors wrapped with the path. On error the partial Result is
// returned with it.
//
// Complexity: O(V + E) time, O(V) memory.
func Walk(g *core.Graph, start string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	src, ok := g.Index(start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, start)
	}

	n := g.VertexCount()
	w := &walk{
		g:      g,
		opts:   o,
		depth:  make([]int, n),
		parent: make([]int, n),
		pruned: make([]bool, n),
		queue:  make([]int, 0, n),
		res: &Result{
			Start: g.VertexAt(src),
			at:    make(map[string]int),
		},
	}
	for i := range w.depth {
		w.depth[i] = unseen
		w.parent[i] = unseen
	}
	w.depth[src] = 0
	w.queue = append(w.queue, src)

	return w.res, w.run()
}

// run drains the queue.
func (w *walk) run() error {
	for head := 0; head < len(w.queue); head++ {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}
		u := w.queue[head]
		v := Visit{Path: w.g.VertexAt(u), Depth: w.depth[u]}
		if p := w.parent[u]; p != unseen {
			v.Parent = w.g.VertexAt(p)
		}
		w.res.at[v.Path] = len(w.res.Visits)
		w.res.Visits = append(w.res.Visits, v)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(v); err != nil {
				return fmt.Errorf("bfs: visit %s: %w", v.Path, err)
			}
		}
		if w.opts.MaxDepth > 0 && v.Depth >= w.opts.MaxDepth {
			continue
		}
		w.expand(u)
	}

	return nil
}

// expand queues the unseen, unpruned successors of u.
func (w *walk) expand(u int) {
	for _, s := range w.g.Successors(u) {
		if w.depth[s] != unseen || w.pruned[s] {
			continue
		}
		if w.opts.Prune != nil && w.opts.Prune(w.g.VertexAt(s)) {
			w.pruned[s] = true
			w.res.Pruned++
			continue
		}
		w.depth[s] = w.depth[u] + 1
		w.parent[s] = u
		w.queue = append(w.queue, s)
	}
}
