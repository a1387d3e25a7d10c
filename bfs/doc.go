// Package bfs walks a containment graph level by level from one path.
//
// Walk answers "what lies within d steps below this directory": every
// reachable path with its depth and the directory it was reached from.
// The CLI's reach command prints it, pruned by root-relative globs.
//
// Because every containment edge costs one step, the walk is also the
// reference both engines are checked against: Depth equals
// dijkstra.Distances and Parents equals the prim tree.
//
// Options:
//
//	WithMaxDepth(d)  stop d steps below the start (0 = unlimited)
//	WithPrune(fn)    do not enter paths fn rejects
//	WithOnVisit(fn)  observe each visit; an error stops the walk
//	WithContext(ctx) stop on cancellation
package bfs
