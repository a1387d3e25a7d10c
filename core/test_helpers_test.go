// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fsgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexRoot = "/r"
	VertexA    = "/r/a"
	VertexB    = "/r/b"
	VertexC    = "/r/a/c"
	VertexD    = "/r/a/c/d"
)

// mustEdges builds a graph from (src, dst) pairs, failing the test on error.
func mustEdges(t testing.TB, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1]), "AddEdge(%s,%s)", p[0], p[1])
	}

	return g
}
