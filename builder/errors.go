// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the return site.
//   • Option constructors may panic on meaningless values; Build never panics.

package builder

import (
	"errors"
	"fmt"
)

// ErrNilGraph indicates Build was called without a destination graph.
var ErrNilGraph = errors.New("builder: graph is nil")

// ErrNilEnumerator indicates Build was called without a directory enumerator.
var ErrNilEnumerator = errors.New("builder: enumerator is nil")

// ErrOptionViolation indicates an option carried a value that can only be
// checked when Build runs (e.g., a malformed exclude glob).
var ErrOptionViolation = errors.New("builder: invalid option value")

// Op names the enumeration step that failed inside an EntryError.
type Op string

const (
	// OpProbe is the existence/type check on the root.
	OpProbe Op = "probe"
	// OpList is listing a directory.
	OpList Op = "list"
	// OpResolve is deciding whether a listed entry is a directory.
	OpResolve Op = "resolve"
	// OpLink is inserting the containment edge.
	OpLink Op = "link"
)

// EntryError is a recovered per-entry failure. The entry is skipped and the
// build continues.
type EntryError struct {
	Path  string // path that failed
	Op    Op     // step that failed
	Depth int    // depth of Path below root (root = 0)
	Err   error  // underlying cause
}

// Error implements error.
func (e EntryError) Error() string {
	return fmt.Sprintf("builder: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e EntryError) Unwrap() error { return e.Err }
