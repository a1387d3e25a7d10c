// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// config.go - resolved configuration and deterministic defaults.
//
// Defaults:
//   • logger   = discard
//   • excludes = none
//   • maxDepth = 0 (unlimited)
//   • onError  = no-op
//   • idFn     = DefaultIDFn (synthetic constructors only)

package builder

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/bmatcuk/doublestar"
)

// builderConfig is the single source of truth for one Build call.
type builderConfig struct {
	logger   *slog.Logger
	excludes []string
	maxDepth int
	onError  func(EntryError)
	idFn     IDFn
}

// newBuilderConfig applies opts in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		onError: func(EntryError) {},
		idFn:    DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// validate checks the glob syntax of every exclude pattern.
func (c builderConfig) validate() error {
	for _, p := range c.excludes {
		if p == "" {
			return fmt.Errorf("%w: empty exclude pattern", ErrOptionViolation)
		}
		if _, err := doublestar.Match(p, p); err != nil {
			return fmt.Errorf("%w: exclude %q: %v", ErrOptionViolation, p, err)
		}
	}

	return nil
}

// excluded reports whether rel (root-relative, slash form) matches a pattern.
func (c builderConfig) excluded(rel string) bool {
	for _, p := range c.excludes {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}

	return false
}

// descend reports whether a directory at depth d should be listed.
func (c builderConfig) descend(d int) bool {
	return c.maxDepth == 0 || d < c.maxDepth
}
