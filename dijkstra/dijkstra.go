// Package dijkstra implements Dijkstra's shortest-path algorithm on the
// unit-weight filesystem graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each strict relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the index-addressed distance and predecessor slices.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - All state is indexed by core's dense vertex index, never by path string.
//   - The heap orders by (distance, vertex index), so equal-distance ties go to
//     the earlier-inserted vertex and results are reproducible run to run.
//   - ShortestPath stops as soon as the destination is extracted.
//   - We stop exploring once the minimum distance in the heap exceeds MaxHops.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/fsgraph/core"
)

// ShortestPath returns a minimum-hop path from source to destination.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be non-empty (ErrEmptyVertexID).
//  3. both must be vertices of g (ErrVertexNotFound, naming which).
//
// An unreachable destination yields ErrNoPath; a partial path is never
// returned. source == destination yields a one-vertex path with 0 hops.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case, less with early exit.
//   - Space: O(V + E)
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := lookup(g, "source", source)
	if err != nil {
		return nil, err
	}
	dst, err := lookup(g, "destination", destination)
	if err != nil {
		return nil, err
	}

	r := newRunner(g, src, opts)
	r.target = dst
	r.init()
	r.process()

	path, err := r.path(dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %s → %s", err, g.VertexAt(src), g.VertexAt(dst))
	}

	return &Result{Path: path, Hops: len(path) - 1}, nil
}

// Distances runs a full single-source search (no early exit) and returns the
// resulting Distance Table.
//
// Errors: ErrNilGraph, ErrEmptyVertexID, ErrVertexNotFound.
func Distances(g *core.Graph, source string, opts ...Option) (*Table, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := lookup(g, "source", source)
	if err != nil {
		return nil, err
	}

	r := newRunner(g, src, opts)
	r.init()
	r.process()

	return &Table{r: r}, nil
}

// lookup resolves a vertex ID to its dense index.
func lookup(g *core.Graph, role, id string) (int, error) {
	if id == "" {
		return 0, fmt.Errorf("%w: %s", ErrEmptyVertexID, role)
	}
	i, ok := g.Index(id)
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrVertexNotFound, role, id)
	}

	return i, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph // The input graph; read-only here.
	options Options     // Configuration options.
	source  int         // Index of the source vertex.
	target  int         // Index to stop at, or unreached for a full run.
	dist    []int       // dist[i] = hops from source, or unreached.
	prev    []int       // prev[i] = predecessor index, or unreached.
	visited []bool      // Tracks if a vertex's distance is finalized.
	pq      nodePQ      // Min-heap of nodeItem for lazy priority queue.
}

func newRunner(g *core.Graph, src int, opts []Option) *runner {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	V := g.VertexCount()

	return &runner{
		g:       g,
		options: cfg,
		source:  src,
		target:  unreached,
		dist:    make([]int, V),
		prev:    make([]int, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
}

// init marks every vertex unreached and seeds the heap with the source at 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = unreached
		r.prev[i] = unreached
	}
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: r.source, dist: 0})
}

// process is the core loop. It terminates when the heap is empty, when the
// minimum distance exceeds MaxHops, or when the target is finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.idx

		// Stale entry from a lazy decrease-key.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxHops {
			break
		}
		r.visited[u] = true
		if u == r.target {
			return
		}
		r.relax(u)
	}
}

// relax offers dist[u]+1 to every successor of u. Only a strictly shorter
// distance updates prev, so the first discovered predecessor wins among
// equals.
func (r *runner) relax(u int) {
	newDist := r.dist[u] + 1
	if newDist > r.options.MaxHops {
		return
	}
	for _, v := range r.g.Successors(u) {
		if r.visited[v] {
			continue
		}
		if r.dist[v] != unreached && newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{idx: v, dist: newDist})
	}
}

// path walks prev from dst back to the source and reverses it. The walk is
// bounded by V steps and must end at the source.
func (r *runner) path(dst int) ([]string, error) {
	if r.dist[dst] == unreached || !r.visited[dst] {
		return nil, ErrNoPath
	}
	rev := make([]int, 0, r.dist[dst]+1)
	for cur := dst; cur != unreached; cur = r.prev[cur] {
		rev = append(rev, cur)
		if len(rev) > len(r.prev) {
			return nil, fmt.Errorf("%w: predecessor chain does not terminate", ErrNoPath)
		}
	}
	if rev[len(rev)-1] != r.source {
		return nil, fmt.Errorf("%w: predecessor chain does not reach source", ErrNoPath)
	}

	out := make([]string, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = r.g.VertexAt(idx)
	}

	return out, nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	idx  int // dense vertex index
	dist int // hops from source
}

// nodePQ is a min-heap of nodeItem ordered by (dist, idx).
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by insertion index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
