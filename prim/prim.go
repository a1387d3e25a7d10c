// Package prim provides Prim's algorithm specialised to the unit-weight
// filesystem graph. It grows a tree from one start vertex using a min-heap.
package prim

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/fsgraph/core"
)

// unitWeight is the cost of every containment edge.
const unitWeight = 1

// SpanningTree grows a spanning tree over the vertices reachable from the
// start vertex by following directed edges.
//
// Error Conditions:
//   - ErrNilGraph       : graph is nil.
//   - ErrEmptyGraph     : graph has no vertices.
//   - ErrVertexNotFound : WithRoot names a vertex that does not exist.
//
// Steps:
//  1. Pick the start vertex: WithRoot, else g.Vertices()[0].
//  2. Seed the heap with (0, start, no parent).
//  3. While the heap is not empty:
//     a. Pop the minimal (weight, push sequence) item.
//     b. If its vertex is already visited, skip it; it would form a cycle.
//     c. Otherwise mark it visited and commit the edge parent→vertex.
//     d. Push (1, successor, vertex) for every unvisited successor.
//
// All weights are 1 and equal weights pop in push order, so the result is the
// breadth-first tree of the reachable subgraph. Committing on extraction
// gives every vertex exactly one parent even when several edges reach it.
// Duplicate edges, such as those left by building the same root twice,
// therefore never add tree edges: EdgeCount is always Len()-1.
// Vertices not reachable from the start are simply absent.
//
// Complexity: O(E log E) time, O(V + E) memory.
func SpanningTree(graph *core.Graph, opts ...Option) (*Tree, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := graph.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	var start int
	if cfg.Root == "" {
		start, _ = graph.Index(graph.Vertices()[0])
	} else {
		var ok bool
		if start, ok = graph.Index(cfg.Root); !ok {
			return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Root)
		}
	}

	root := graph.VertexAt(start)
	tree := &Tree{
		Root:     root,
		Children: make(map[string][]string),
		Parent:   make(map[string]string),
		Order:    make([]string, 0),
	}
	visited := make([]bool, n)

	pq := &edgePQ{}
	heap.Init(pq)
	seq := 0
	heap.Push(pq, edgeItem{weight: 0, seq: seq, to: start, from: noParent})

	for pq.Len() > 0 {
		e := heap.Pop(pq).(edgeItem)
		v := e.to
		if visited[v] {
			continue
		}
		visited[v] = true
		id := graph.VertexAt(v)
		tree.Order = append(tree.Order, id)
		tree.Children[id] = []string{}
		if e.from != noParent {
			pid := graph.VertexAt(e.from)
			tree.Parent[id] = pid
			tree.Children[pid] = append(tree.Children[pid], id)
		}

		for _, w := range graph.Successors(v) {
			if !visited[w] {
				seq++
				heap.Push(pq, edgeItem{weight: unitWeight, seq: seq, to: w, from: v})
			}
		}
	}

	return tree, nil
}

// noParent marks the seed item of the root.
const noParent = -1

// edgeItem is a candidate tree edge from→to.
type edgeItem struct {
	weight int // edge cost; 0 only for the seed
	seq    int // push sequence, breaks ties FIFO
	to     int // vertex index the edge reaches
	from   int // vertex index the edge leaves, or noParent
}

// edgePQ implements heap.Interface for a min-heap of edgeItem, ordered by
// (weight, seq).
type edgePQ []edgeItem

// Len returns the number of edges in the priority queue.
// Complexity: O(1).
func (pq edgePQ) Len() int { return len(pq) }

// Less compares by weight, then by push sequence.
// Complexity: O(1).
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps elements at indices i and j.
// Complexity: O(1).
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new edgeItem to the heap.
// Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edgeItem)) }

// Pop removes and returns the last element after heap adjustments.
// Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	edge := old[n-1]
	*pq = old[:n-1]

	return edge
}
