// Package fsgraph models a filesystem subtree as a directed graph and
// answers path and spanning-tree queries over it.
//
// A vertex is a canonical path; an edge "dir → entry" means dir directly
// contains entry. Every edge has unit weight.
//
// Packages:
//
//	pathid/   - canonical path form and segment-wise ordering
//	core/     - Graph store: dense vertex index, ordered successor lists
//	fsenum/   - directory enumeration over afero (OS or in-memory)
//	builder/  - walks a root with an explicit stack and fills a Graph
//	dijkstra/ - minimum-hop shortest paths
//	prim/     - spanning tree of everything reachable from a start vertex
//	bfs/      - level-by-level reach listing, pruned and depth-bounded
//	render/   - plain text, go-pretty tables and tree lists
//
// Quick ASCII example:
//
//	/proj ──► /proj/src ──► /proj/src/main.go
//	  │
//	  └─────► /proj/README.md
//
// represents a directory with one sub-directory and one file.
//
// The fsgraph command (cmd/fsgraph) wires these together:
//
//	go install github.com/katalvlaran/fsgraph/cmd/fsgraph@latest
//	fsgraph graph --root . --exclude '**/.git'
//	fsgraph path . src/main.go
//	fsgraph tree
//	fsgraph reach src --depth 2 --prune '**/testdata'
package fsgraph
