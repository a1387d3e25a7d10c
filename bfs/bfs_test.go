package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/fsgraph/bfs"
	"github.com/katalvlaran/fsgraph/builder"
	"github.com/katalvlaran/fsgraph/core"
)

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	if _, err := bfs.Walk(nil, "/a"); !errors.Is(err, bfs.ErrNilGraph) {
		t.Errorf("nil graph: want ErrNilGraph, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.Walk(g, "/missing"); !errors.Is(err, bfs.ErrVertexNotFound) {
		t.Errorf("missing start: want ErrVertexNotFound, got %v", err)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Error("WithMaxDepth(-1): expected panic")
		}
	}()
	bfs.WithMaxDepth(-1)
}

// TestWalk_Layers checks visit order, depths and paths on a 2x2 synthetic tree.
func TestWalk_Layers(t *testing.T) {
	g := core.NewGraph()
	if err := builder.Synthesize(g, nil, builder.Tree("/t", 2, 2)); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.Walk(g, "/t/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Start != "/t" {
		t.Errorf("Start = %q; want /t", res.Start)
	}
	want := []string{"/t", "/t/0", "/t/1", "/t/0/0", "/t/0/1", "/t/1/0", "/t/1/1"}
	if got := res.Order(); !reflect.DeepEqual(got, want) {
		t.Errorf("Order = %v; want %v", got, want)
	}
	wantLayers := [][]string{{"/t"}, {"/t/0", "/t/1"}, {"/t/0/0", "/t/0/1", "/t/1/0", "/t/1/1"}}
	if got := res.Layers(); !reflect.DeepEqual(got, wantLayers) {
		t.Errorf("Layers = %v; want %v", got, wantLayers)
	}
	if d := res.Depth("/t/1/1/"); d != 2 {
		t.Errorf("Depth(/t/1/1) = %d; want 2", d)
	}
	if d := res.Depth("/elsewhere"); d != -1 {
		t.Errorf("Depth(/elsewhere) = %d; want -1", d)
	}
	path, err := res.PathTo("/t/1/0")
	if err != nil || !reflect.DeepEqual(path, []string{"/t", "/t/1", "/t/1/0"}) {
		t.Errorf("PathTo = %v, %v", path, err)
	}
	if _, err := res.PathTo("/elsewhere"); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo unreached: want ErrNotReached, got %v", err)
	}
	if p := res.Parents()["/t/0/1"]; p != "/t/0" {
		t.Errorf("Parents[/t/0/1] = %q; want /t/0", p)
	}
}

// TestWalk_MaxDepth stops below the requested level.
func TestWalk_MaxDepth(t *testing.T) {
	g := core.NewGraph()
	if err := builder.Synthesize(g, nil, builder.Chain("/c", 4)); err != nil {
		t.Fatal(err)
	}
	res, err := bfs.Walk(g, "/c", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"/c", "/c/0", "/c/0/1"}; !reflect.DeepEqual(res.Order(), want) {
		t.Errorf("MaxDepth=2: Order = %v; want %v", res.Order(), want)
	}
}

// TestWalk_Prune skips a directory and everything only reachable through it.
func TestWalk_Prune(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("/p", "/p/.git")
	_ = g.AddEdge("/p/.git", "/p/.git/HEAD")
	_ = g.AddEdge("/p", "/p/src")
	_ = g.AddEdge("/p/src", "/p/src/main.go")

	res, err := bfs.Walk(g, "/p", bfs.WithPrune(func(p string) bool {
		return strings.HasSuffix(p, "/.git")
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"/p", "/p/src", "/p/src/main.go"}; !reflect.DeepEqual(res.Order(), want) {
		t.Errorf("Order = %v; want %v", res.Order(), want)
	}
	if res.Pruned != 1 {
		t.Errorf("Pruned = %d; want 1", res.Pruned)
	}
}

// TestWalk_OnVisitAndCancel covers hook abort and cancellation.
func TestWalk_OnVisitAndCancel(t *testing.T) {
	g := core.NewGraph()
	_ = builder.Synthesize(g, nil, builder.Star("/s", 3))

	stop := errors.New("stop")
	var seen []bfs.Visit
	res, err := bfs.Walk(g, "/s", bfs.WithOnVisit(func(v bfs.Visit) error {
		seen = append(seen, v)
		if v.Path == "/s/1" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit error not propagated: %v", err)
	}
	if len(seen) != 3 || res.Len() != 3 {
		t.Errorf("seen %v, partial result %d; want 3 visits", seen, res.Len())
	}
	if seen[1] != (bfs.Visit{Path: "/s/0", Depth: 1, Parent: "/s"}) {
		t.Errorf("second visit = %+v", seen[1])
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.Walk(g, "/s", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled ctx: want context.Canceled, got %v", err)
	}
}

// TestWalk_SymlinkLoop visits each path once when a link points back up.
func TestWalk_SymlinkLoop(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("/r", "/r/link")
	_ = g.AddEdge("/r/link", "/r")
	_ = g.AddEdge("/r", "/r/link")
	res, err := bfs.Walk(g, "/r")
	if err != nil {
		t.Fatal(err)
	}
	if res.Len() != 2 {
		t.Errorf("Order = %v", res.Order())
	}
}
