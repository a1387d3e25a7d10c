package prim_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsgraph/bfs"
	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/prim"
)

// TestSpanningTree_MatchesBFS checks that with unit weights and FIFO ties
// the spanning tree is exactly the breadth-first tree.
func TestSpanningTree_MatchesBFS(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		r := rand.New(rand.NewSource(seed))
		g := core.NewGraph()
		for i := 0; i < 120; i++ {
			u, v := r.Intn(50), r.Intn(50)
			require.NoError(t, g.AddEdge(fmt.Sprintf("/g/%d", u), fmt.Sprintf("/g/%d", v)))
		}

		tree, err := prim.SpanningTree(g)
		require.NoError(t, err)
		ref, err := bfs.Walk(g, tree.Root)
		require.NoError(t, err)

		assert.Equal(t, ref.Order(), tree.Order, "seed %d", seed)
		assert.Equal(t, ref.Parents(), tree.Parent, "seed %d", seed)
		assertTreeShape(t, g, tree)
	}
}
