package dijkstra

import "fmt"

// Table is the Distance Table of one full single-source run.
// It is read-only and stays valid as long as the graph is not mutated.
type Table struct {
	r *runner
}

// Source returns the canonical source vertex.
func (t *Table) Source() string { return t.r.g.VertexAt(t.r.source) }

// Dist returns the hop count from the source to v, or -1 if v is unknown or
// unreachable.
func (t *Table) Dist(v string) int {
	i, ok := t.r.g.Index(v)
	if !ok || !t.r.visited[i] {
		return unreached
	}

	return t.r.dist[i]
}

// Prev returns v's predecessor on its shortest path, or "" for the source,
// unknown and unreachable vertices.
func (t *Table) Prev(v string) string {
	i, ok := t.r.g.Index(v)
	if !ok || !t.r.visited[i] || t.r.prev[i] == unreached {
		return ""
	}

	return t.r.g.VertexAt(t.r.prev[i])
}

// Reachable returns the number of vertices with a finite distance, the source
// included.
func (t *Table) Reachable() int {
	n := 0
	for _, ok := range t.r.visited {
		if ok {
			n++
		}
	}

	return n
}

// PathTo reconstructs the shortest path from the source to v.
//
// Errors: ErrVertexNotFound if v is not a vertex, ErrNoPath if unreachable.
func (t *Table) PathTo(v string) (*Result, error) {
	i, ok := t.r.g.Index(v)
	if !ok {
		return nil, fmt.Errorf("%w: destination %q", ErrVertexNotFound, v)
	}
	path, err := t.r.path(i)
	if err != nil {
		return nil, fmt.Errorf("%w: %s → %s", err, t.Source(), t.r.g.VertexAt(i))
	}

	return &Result{Path: path, Hops: len(path) - 1}, nil
}
