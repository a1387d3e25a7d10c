// Package prim defines configuration options, sentinel errors and the result
// type of the spanning-tree engine.
package prim

import (
	"errors"
)

// ErrNilGraph indicates that a nil *core.Graph was passed in.
var ErrNilGraph = errors.New("prim: graph is nil")

// ErrEmptyGraph indicates that the graph has no vertex to grow a tree from.
var ErrEmptyGraph = errors.New("prim: graph has no vertices")

// ErrVertexNotFound indicates that the root chosen with WithRoot is not a vertex.
var ErrVertexNotFound = errors.New("prim: root vertex not found in graph")

// Options configures a SpanningTree call.
//
// Fields:
//
//	Root string - start vertex ID; "" selects the first vertex in pathid order.
type Options struct {
	Root string
}

// Option configures Options.
type Option func(*Options)

// WithRoot sets the start vertex. An empty root keeps the default.
func WithRoot(root string) Option {
	return func(opts *Options) {
		opts.Root = root
	}
}

// DefaultOptions returns Options with no explicit root.
func DefaultOptions() Options {
	return Options{Root: ""}
}

// Tree is a spanning tree of the vertices reachable from Root.
//
// Fields:
//
//	Root     - canonical start vertex.
//	Children - every tree vertex mapped to its children in visit order
//	           (leaves map to an empty slice).
//	Parent   - every tree vertex except Root mapped to its unique parent.
//	Order    - tree vertices in the order they were added.
type Tree struct {
	Root     string
	Children map[string][]string
	Parent   map[string]string
	Order    []string
}

// Len returns the number of vertices in the tree.
func (t *Tree) Len() int { return len(t.Order) }

// EdgeCount returns the number of tree edges, always Len()-1. With unit
// weights it is also the total weight of the tree.
func (t *Tree) EdgeCount() int { return len(t.Parent) }

// Contains reports whether v (canonical form) is in the tree.
func (t *Tree) Contains(v string) bool {
	_, ok := t.Children[v]

	return ok
}

// ChildrenOf returns a copy of v's children, or nil if v is not in the tree.
func (t *Tree) ChildrenOf(v string) []string {
	c, ok := t.Children[v]
	if !ok {
		return nil
	}
	out := make([]string, len(c))
	copy(out, c)

	return out
}
