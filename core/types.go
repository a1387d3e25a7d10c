// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors and constructor.

package core

import "errors"

// ErrEmptyVertexID indicates that an empty path was used as a vertex.
var ErrEmptyVertexID = errors.New("core: vertex ID is empty")

// Graph is a directed multigraph over canonical paths.
//
// index and paths form the vertex arena; succ[i] lists the successors of
// vertex i in insertion order. edges counts the multiset of edges.
type Graph struct {
	index map[string]int // canonical path → dense index
	paths []string       // dense index → canonical path
	succ  [][]int        // dense index → ordered successor indices
	edges int            // total edges, duplicates included
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// VertexCount returns the number of distinct vertices.
func (g *Graph) VertexCount() int { return len(g.paths) }

// EdgeCount returns the number of edges, counting duplicates.
func (g *Graph) EdgeCount() int { return g.edges }
