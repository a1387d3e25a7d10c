// Package prim computes a spanning tree over a filesystem graph with Prim's
// algorithm at unit edge weight.
//
// What & Why
//
//   - Every containment edge costs 1, so every spanning tree of the reachable
//     subgraph has the same total weight (V-1). Among them Prim with FIFO
//     tie-breaking picks the breadth-first one: each vertex hangs under the
//     directory that reaches it in the fewest hops.
//   - On a plain directory tree the result is the directory tree itself. It
//     only differs when extra edges exist (symlinks to directories, duplicate
//     edges from a repeated build, hand-added edges).
//   - The graph is directed. The tree only covers vertices reachable from the
//     start vertex; nothing is added for the rest (no forest).
//
// Algorithm
//
//   - SpanningTree(g *core.Graph, opts ...Option) (*Tree, error)
//
//   - Strategy: seed a min-heap with the start vertex; repeatedly extract the
//     cheapest candidate edge whose head is not yet in the tree, commit it,
//     then push every edge leaving the newly added vertex.
//
//   - Complexity:
//
//   - Time: O(E log E), each edge pushed and popped at most once.
//
//   - Space: O(V + E) for the visited slice, the heap and the Tree maps.
//
//   - Determinism: the heap orders by (weight, push sequence); successors
//     are pushed in core's insertion order, and the default root is the first
//     vertex of g.Vertices() (pathid order).
//
// Error Conditions
//
//	- ErrNilGraph       - graph is nil.
//	- ErrEmptyGraph     - graph has no vertices.
//	- ErrVertexNotFound - WithRoot names a missing vertex.
//
// For examples of usage, see the example_test.go file in this package.
package prim
