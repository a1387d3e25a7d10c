// Package core provides the in-memory Graph Store behind fsgraph: a directed,
// unit-weight graph whose vertices are canonical filesystem paths and whose
// edges mean "directory contains entry".
//
// Representation (arena + index):
//
//   - Every vertex receives a dense integer index the first time it is seen.
//     The index is its insertion rank and never changes.
//   - Successors are stored per index as an ordered []int. Insertion order is
//     preserved and is the tie-break order used by the query engines.
//   - Edges are a multiset: AddEdge never deduplicates, so building the same
//     pair twice shows up twice in Neighbors.
//
// Identity:
//
//   - All inputs are canonicalized with pathid.Clean, so "a//b" and "a/b"
//     name the same vertex.
//   - Vertices() enumerates in pathid order (segment-wise), which is the
//     deterministic "first vertex" order used by prim.SpanningTree.
//
// Core Methods:
//
//	AddVertex(v string) error             // O(1), idempotent
//	AddEdge(src, dst string) error        // O(1) amortized, never dedups
//	Neighbors(v string) []string          // O(d), copy, empty for unknown v
//	HasVertex(v) / HasEdge(src, dst)      // O(1) / O(d)
//	Vertices() []string                   // O(V log V), pathid order
//	InsertionOrder() []string             // O(V), index order
//	Index(v) (int, bool) / VertexAt(i)    // O(1) arena access for algorithms
//	Successors(i int) []int               // O(1), read-only view
//	AdjacencyList() map[string][]string   // O(V+E), deep copy
//
// Errors:
//
//	ErrEmptyVertexID – the only way AddVertex/AddEdge can fail.
//
// Concurrency:
//
//	Graph is NOT safe for concurrent use. It is owned by one builder while it
//	is populated and is read-only for every query afterwards; any parallel
//	producer must add its own synchronization.
package core
