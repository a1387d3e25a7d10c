package prim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/prim"
)

// graphOf builds a graph from src→dst pairs, in order.
func graphOf(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]))
	}

	return g
}

// assertTreeShape checks the structural invariants every result must hold:
// one parent per non-root vertex, parent→child is a graph edge, and
// Children mirrors Parent.
func assertTreeShape(t *testing.T, g *core.Graph, tree *prim.Tree) {
	t.Helper()
	assert.Equal(t, tree.Len()-1, tree.EdgeCount())
	_, rootHasParent := tree.Parent[tree.Root]
	assert.False(t, rootHasParent, "root must not have a parent")
	for child, parent := range tree.Parent {
		assert.True(t, g.HasEdge(parent, child), "tree edge %s→%s not in graph", parent, child)
		assert.Contains(t, tree.Children[parent], child)
	}
	total := 0
	for _, c := range tree.Children {
		total += len(c)
	}
	assert.Equal(t, tree.EdgeCount(), total)
}

func TestSpanningTree_Validation(t *testing.T) {
	_, err := prim.SpanningTree(nil)
	assert.ErrorIs(t, err, prim.ErrNilGraph)

	_, err = prim.SpanningTree(core.NewGraph())
	assert.ErrorIs(t, err, prim.ErrEmptyGraph)

	g := graphOf(t, [2]string{"/r", "/r/a"})
	_, err = prim.SpanningTree(g, prim.WithRoot("/nope"))
	assert.ErrorIs(t, err, prim.ErrVertexNotFound)
}

func TestSpanningTree_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("/only"))

	tree, err := prim.SpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, "/only", tree.Root)
	assert.Equal(t, 1, tree.Len())
	assert.Equal(t, 0, tree.EdgeCount())
	assert.Equal(t, []string{}, tree.ChildrenOf("/only"))
}

// TestSpanningTree_DirectoryTree checks that a pure tree comes back unchanged
// and that the default root is the first vertex in pathid order.
func TestSpanningTree_DirectoryTree(t *testing.T) {
	g := graphOf(t,
		[2]string{"/r", "/r/b"},
		[2]string{"/r", "/r/a"},
		[2]string{"/r/a", "/r/a/c"},
	)

	tree, err := prim.SpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, "/r", tree.Root)
	assert.Equal(t, []string{"/r", "/r/b", "/r/a", "/r/a/c"}, tree.Order)
	assert.Equal(t, []string{"/r/b", "/r/a"}, tree.ChildrenOf("/r"))
	assert.Equal(t, "/r/a", tree.Parent["/r/a/c"])
	assertTreeShape(t, g, tree)
}

// TestSpanningTree_Diamond gives a vertex two incoming edges; it must end up
// with exactly one parent, the earlier-discovered one.
func TestSpanningTree_Diamond(t *testing.T) {
	g := graphOf(t,
		[2]string{"/r", "/r/x"},
		[2]string{"/r", "/r/y"},
		[2]string{"/r/y", "/r/shared"},
		[2]string{"/r/x", "/r/shared"},
	)

	tree, err := prim.SpanningTree(g, prim.WithRoot("/r"))
	require.NoError(t, err)
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, "/r/x", tree.Parent["/r/shared"])
	assert.Empty(t, tree.ChildrenOf("/r/y"))
	assertTreeShape(t, g, tree)
}

// TestSpanningTree_BreadthFirst checks that a shortcut edge wins over a
// deeper chain reaching the same vertex.
func TestSpanningTree_BreadthFirst(t *testing.T) {
	g := graphOf(t,
		[2]string{"/a", "/b"},
		[2]string{"/b", "/c"},
		[2]string{"/c", "/d"},
		[2]string{"/a", "/d"},
	)

	tree, err := prim.SpanningTree(g, prim.WithRoot("/a"))
	require.NoError(t, err)
	assert.Equal(t, "/a", tree.Parent["/d"])
	assert.Equal(t, []string{"/a", "/b", "/d", "/c"}, tree.Order)
	assertTreeShape(t, g, tree)
}

func TestSpanningTree_Unreachable(t *testing.T) {
	g := graphOf(t,
		[2]string{"/r", "/r/a"},
		[2]string{"/s", "/s/b"},
	)

	tree, err := prim.SpanningTree(g, prim.WithRoot("/r/a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"/r/a"}, tree.Order)
	assert.False(t, tree.Contains("/r"))
	assert.False(t, tree.Contains("/s/b"))
	assert.Nil(t, tree.ChildrenOf("/s"))
}

func TestSpanningTree_CycleAndDuplicates(t *testing.T) {
	g := graphOf(t,
		[2]string{"/r", "/r/a"},
		[2]string{"/r", "/r/a"},
		[2]string{"/r/a", "/r"},
		[2]string{"/r/a", "/r/a"},
	)

	tree, err := prim.SpanningTree(g, prim.WithRoot("/r"))
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, []string{"/r/a"}, tree.ChildrenOf("/r"))
	assertTreeShape(t, g, tree)
}

func TestSpanningTree_SyntheticTree(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, builder.Synthesize(g, nil, builder.Tree("/t", 3, 3)))

	tree, err := prim.SpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, g.VertexCount(), tree.Len())
	assert.Equal(t, g.EdgeCount(), tree.EdgeCount())
	assertTreeShape(t, g, tree)
}

// A directory with N files spans as N tree edges, all leaving the directory.
func TestSpanningTree_Star(t *testing.T) {
	const n = 12
	g := core.NewGraph()
	require.NoError(t, builder.Synthesize(g, nil, builder.Star("/r", n)))

	tree, err := prim.SpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, "/r", tree.Root)
	assert.Len(t, tree.ChildrenOf("/r"), n)
	assert.Equal(t, n, tree.EdgeCount())
	for child, parent := range tree.Parent {
		assert.Equal(t, "/r", parent, "parent of %s", child)
	}
	assertTreeShape(t, g, tree)
}

// Building the same directory twice doubles every edge but not the tree.
func TestSpanningTree_RepeatedEdgesAddNothing(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 2; i++ {
		require.NoError(t, builder.Synthesize(g, nil, builder.Star("/r", 5)))
	}
	require.Equal(t, 10, g.EdgeCount())

	tree, err := prim.SpanningTree(g)
	require.NoError(t, err)
	assert.Equal(t, 5, tree.EdgeCount())
	assert.Len(t, tree.ChildrenOf("/r"), 5)
}
