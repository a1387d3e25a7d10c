package prim_test

import (
	"testing"

	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/prim"
)

// BenchmarkSpanningTree measures a complete 4-ary tree of depth 6 (5461 vertices).
func BenchmarkSpanningTree(b *testing.B) {
	g := core.NewGraph()
	if err := builder.Synthesize(g, nil, builder.Tree("/b", 4, 6)); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim.SpanningTree(g)
	}
}
