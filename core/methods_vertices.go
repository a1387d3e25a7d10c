// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and arena access.
//
// Determinism:
//   - Vertices() returns paths in pathid order.
//   - InsertionOrder() returns paths in index order.

package core

import "github.com/katalvlaran/fsgraph/pathid"

// AddVertex inserts v with an empty successor list if it is absent.
// Adding an existing vertex is a no-op; the vertex set grows by at most one.
//
// Errors:
//   - ErrEmptyVertexID: if v == "".
//
// Complexity: O(len(v)) for canonicalization, O(1) amortized insertion.
func (g *Graph) AddVertex(v string) error {
	_, err := g.ensure(v)

	return err
}

// ensure returns the index of v, allocating it on first sight.
func (g *Graph) ensure(v string) (int, error) {
	id := pathid.Clean(v)
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	if i, ok := g.index[id]; ok {
		return i, nil
	}

	i := len(g.paths)
	g.index[id] = i
	g.paths = append(g.paths, id)
	g.succ = append(g.succ, nil)

	return i, nil
}

// HasVertex reports whether v is a vertex of g. Empty v is never present.
func (g *Graph) HasVertex(v string) bool {
	_, ok := g.Index(v)

	return ok
}

// Index returns the dense index of v, or false if v is not a vertex.
// Complexity: O(len(v)).
func (g *Graph) Index(v string) (int, bool) {
	id := pathid.Clean(v)
	if id == "" {
		return 0, false
	}
	i, ok := g.index[id]

	return i, ok
}

// VertexAt returns the canonical path stored at index i.
// It panics if i is out of range, like a slice access.
func (g *Graph) VertexAt(i int) string { return g.paths[i] }

// Vertices returns all vertices in pathid order. The slice is a fresh copy.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := g.InsertionOrder()
	pathid.Sort(out)

	return out
}

// InsertionOrder returns all vertices in the order they were first added.
// Complexity: O(V).
func (g *Graph) InsertionOrder() []string {
	out := make([]string, len(g.paths))
	copy(out, g.paths)

	return out
}
