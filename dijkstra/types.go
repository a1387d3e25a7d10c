// Package dijkstra defines core types and configuration options
// for unit-weight shortest paths over a filesystem graph.
//
// Every edge "directory contains entry" costs exactly one hop, so a distance
// is the number of containment steps between two paths.
//
// Options:
//
//	– MaxHops: optional cap on hops to explore; vertices beyond this are skipped.
//
// Errors (sentinel):
//
//	– ErrNilGraph       if the provided graph pointer is nil.
//	– ErrEmptyVertexID  if the source or destination ID is empty.
//	– ErrVertexNotFound if the source or destination is not a vertex.
//	– ErrNoPath         if the destination is unreachable from the source.
//	– ErrBadMaxHops     (panic) if WithMaxHops receives a negative value.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the shortest-path engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyVertexID indicates that a source or destination ID is empty.
	ErrEmptyVertexID = errors.New("dijkstra: vertex ID is empty")

	// ErrVertexNotFound indicates that a source or destination vertex does not
	// exist in the provided graph. The wrapping message names which one.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNoPath indicates that the destination cannot be reached from the source
	// (or only beyond MaxHops).
	ErrNoPath = errors.New("dijkstra: no path between vertices")

	// ErrBadMaxHops indicates that MaxHops was set to a negative value.
	ErrBadMaxHops = errors.New("dijkstra: MaxHops must be non-negative")
)

// unreached marks a vertex with no known distance or predecessor.
const unreached = -1

// Options configures the behavior of the shortest-path engine.
//
// MaxHops – vertices farther than this many hops from the source are not
// explored. Must be ≥ 0. Default is math.MaxInt (no cap).
type Options struct {
	MaxHops int // Maximum hops to explore
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithMaxHops sets a maximum hop count. A destination farther than n hops is
// reported as ErrNoPath. Panics on negative n.
func WithMaxHops(n int) Option {
	if n < 0 {
		panic(ErrBadMaxHops.Error())
	}
	return func(o *Options) {
		o.MaxHops = n
	}
}

// DefaultOptions returns Options with no hop cap.
func DefaultOptions() Options {
	return Options{MaxHops: math.MaxInt}
}

// Result is one shortest path, source first.
type Result struct {
	Path []string // vertices from source to destination inclusive
	Hops int      // number of edges, len(Path)-1
}

// Len returns the number of vertices on the path.
func (r *Result) Len() int { return len(r.Path) }
