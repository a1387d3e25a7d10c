// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and queries.

package core

// AddEdge appends dst to the successor list of src, creating either endpoint
// if it is missing. Duplicates are kept: calling AddEdge(a, b) twice makes b
// appear twice in Neighbors(a).
//
// Errors:
//   - ErrEmptyVertexID: if src or dst is empty. Nothing is inserted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(src, dst string) error {
	if src == "" || dst == "" {
		return ErrEmptyVertexID
	}

	from, err := g.ensure(src)
	if err != nil {
		return err
	}
	to, err := g.ensure(dst)
	if err != nil {
		return err
	}

	g.succ[from] = append(g.succ[from], to)
	g.edges++

	return nil
}

// HasEdge reports whether at least one edge src→dst exists.
// Complexity: O(out-degree of src).
func (g *Graph) HasEdge(src, dst string) bool {
	from, ok := g.Index(src)
	if !ok {
		return false
	}
	to, ok := g.Index(dst)
	if !ok {
		return false
	}
	for _, j := range g.succ[from] {
		if j == to {
			return true
		}
	}

	return false
}
