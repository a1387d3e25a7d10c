package bfs_test

import (
	"testing"

	"github.com/katalvlaran/fsgraph/bfs"
	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
)

// BenchmarkWalk_Tree measures a full traversal of a 4-ary tree of depth 6.
func BenchmarkWalk_Tree(b *testing.B) {
	g := core.NewGraph()
	if err := builder.Synthesize(g, nil, builder.Tree("/b", 4, 6)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bfs.Walk(g, "/b"); err != nil {
			b.Fatal(err)
		}
	}
}
