// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighbor enumeration and adjacency snapshots.

package core

// Neighbors returns the successors of v in insertion order.
// An unknown vertex, or one without outgoing edges, yields an empty slice;
// this is not an error.
//
// Complexity: O(out-degree of v).
func (g *Graph) Neighbors(v string) []string {
	i, ok := g.Index(v)
	if !ok {
		return []string{}
	}

	out := make([]string, len(g.succ[i]))
	for k, j := range g.succ[i] {
		out[k] = g.paths[j]
	}

	return out
}

// Successors returns the successor indices of vertex i in insertion order.
// The slice aliases internal storage and must not be modified.
func (g *Graph) Successors(i int) []int { return g.succ[i] }

// AdjacencyList returns a deep copy of the whole graph as
// vertex → ordered successors. Every vertex is present as a key.
//
// Complexity: O(V+E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, len(g.paths))
	for i, p := range g.paths {
		nbrs := make([]string, len(g.succ[i]))
		for k, j := range g.succ[i] {
			nbrs[k] = g.paths[j]
		}
		out[p] = nbrs
	}

	return out
}
