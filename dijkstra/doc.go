// Package dijkstra answers minimum-hop shortest-path queries over a
// filesystem graph built by package builder (or by hand through core).
//
// Overview:
//
//   - Every edge "directory contains entry" has unit weight, so the distance
//     between two paths is the number of containment steps.
//   - The algorithm is Dijkstra's with a binary min-heap. With unit weights it
//     visits vertices in the same order as a breadth-first search, but keeps
//     the heap so a weighted edge model can slot in without restructuring.
//   - Edges are directed: a query from a child back to its parent has no path.
//
// Determinism:
//
//   - The heap is keyed by (distance, vertex index). The index is a vertex's
//     insertion rank in core.Graph, so among equal distances the vertex added
//     first is expanded first.
//   - A predecessor is only replaced on a strictly shorter distance. Among
//     several equal-length paths the one through the earliest-expanded branch
//     is reported.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (*Result, error)
//	func Distances(g *core.Graph, source string, opts ...Option) (*Table, error)
//
//	  - opts:
//	      • WithMaxHops(int): explore only vertices within the given hop count.
//	  - Result.Path: source … destination inclusive; Result.Hops = len(Path)-1.
//	  - Table: Dist(v) (-1 if unreachable), Prev(v), PathTo(v), Reachable().
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       nil *core.Graph.
//   - ErrEmptyVertexID:  empty source or destination.
//   - ErrVertexNotFound: source or destination not in the graph (message says which).
//   - ErrNoPath:         destination unreachable, or only beyond MaxHops.
//   - ErrBadMaxHops:     via panic, negative WithMaxHops.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V); ShortestPath returns as soon as the destination
//     is finalized.
//   - Space: O(V + E) with lazy decrease-key.
//
// Thread safety:
//
//   - Queries only read the graph. Concurrent queries on a graph that is no
//     longer mutated are safe; mutation during a query is not.
package dijkstra
