// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only summaries over a Graph.
// Policy:
//   - No mutation and no hidden state here.
//   - Every exported function documents complexity.

package core

// GraphStats is a deterministic snapshot of a Graph's shape.
type GraphStats struct {
	VertexCount    int // distinct vertices
	EdgeCount      int // edges, duplicates included
	DuplicateEdges int // edges beyond the first for the same (src, dst)
	Sources        int // vertices with no incoming edge
	Sinks          int // vertices with no outgoing edge
	MaxOutDegree   int // largest successor list
}

// Stats scans the graph once and summarizes it.
//
// Implementation:
//   - Stage 1: count in-degrees and out-degrees over the successor lists.
//   - Stage 2: detect repeated (src, dst) pairs with a per-vertex set.
//
// Complexity:
//   - Time O(V+E), Space O(V + max out-degree).
func (g *Graph) Stats() *GraphStats {
	stats := GraphStats{
		VertexCount: len(g.paths),
		EdgeCount:   g.edges,
	}

	indeg := make([]int, len(g.paths))
	for _, nbrs := range g.succ {
		if len(nbrs) == 0 {
			stats.Sinks++
		}
		if len(nbrs) > stats.MaxOutDegree {
			stats.MaxOutDegree = len(nbrs)
		}

		seen := make(map[int]struct{}, len(nbrs))
		for _, j := range nbrs {
			indeg[j]++
			if _, dup := seen[j]; dup {
				stats.DuplicateEdges++
				continue
			}
			seen[j] = struct{}{}
		}
	}
	for _, d := range indeg {
		if d == 0 {
			stats.Sources++
		}
	}

	return &stats
}
