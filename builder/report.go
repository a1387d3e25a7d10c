// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// report.go - tagged outcome of a Build call.

package builder

import "errors"

// Status tags the outcome of Build.
type Status int

const (
	// StatusBuilt means root was a directory and the walk ran. Individual
	// entries may still have failed; see Report.Errors.
	StatusBuilt Status = iota

	// StatusInvalidRoot means root was missing or not a directory. The graph
	// was not modified.
	StatusInvalidRoot
)

// String returns a lower-case label for logs and rendering.
func (s Status) String() string {
	switch s {
	case StatusBuilt:
		return "built"
	case StatusInvalidRoot:
		return "invalid-root"
	default:
		return "unknown"
	}
}

// Report describes one Build call.
type Report struct {
	Root     string       // canonical root path
	Status   Status       // outcome tag
	Dirs     int          // directories listed successfully
	Entries  int          // entries linked into the graph
	Excluded int          // entries skipped by WithExclude
	Errors   []EntryError // recovered failures, in encounter order
}

// OK reports whether the root was valid and no entry failed.
func (r *Report) OK() bool {
	return r.Status == StatusBuilt && len(r.Errors) == 0
}

// Err joins all recovered errors, or returns nil if there were none.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, e := range r.Errors {
		errs[i] = e
	}

	return errors.Join(errs...)
}
