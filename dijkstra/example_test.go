// Package dijkstra_test provides examples demonstrating shortest-path queries.
// Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
	"github.com/katalvlaran/fsgraph/dijkstra"
)

// ExampleShortestPath finds the containment chain from a project root down
// to a nested file.
func ExampleShortestPath() {
	g := core.NewGraph()
	_ = g.AddEdge("/proj", "/proj/src")
	_ = g.AddEdge("/proj", "/proj/README.md")
	_ = g.AddEdge("/proj/src", "/proj/src/main.go")

	res, err := dijkstra.ShortestPath(g, "/proj", "/proj/src/main.go")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Hops)

	// Output: [/proj /proj/src /proj/src/main.go] 2
}

// ExampleShortestPath_noPath shows that edges point from directory to entry
// only, so there is no way back up.
func ExampleShortestPath_noPath() {
	g := core.NewGraph()
	_ = g.AddEdge("/proj", "/proj/src")

	_, err := dijkstra.ShortestPath(g, "/proj/src", "/proj")
	fmt.Println(err)

	// Output: dijkstra: no path between vertices: /proj/src → /proj
}

// ExampleDistances prints hop counts over a synthetic 2x2 directory tree.
func ExampleDistances() {
	g := core.NewGraph()
	_ = builder.Synthesize(g, nil, builder.Tree("/t", 2, 2))

	tbl, _ := dijkstra.Distances(g, "/t")
	for _, v := range []string{"/t", "/t/1", "/t/1/0"} {
		fmt.Printf("%s=%d ", v, tbl.Dist(v))
	}
	fmt.Println("reachable:", tbl.Reachable())

	// Output: /t=0 /t/1=1 /t/1/0=2 reachable: 7
}
