// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// options.go - functional options for Build.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Constructors panic on values that are meaningless in any context
//     (nil logger, negative depth). Values that need runtime checks (glob
//     syntax) surface as ErrOptionViolation from Build.

package builder

import "log/slog"

// BuilderOption customizes a Build call by mutating builderConfig.
type BuilderOption func(*builderConfig)

// WithLogger routes recovered-error logs to l. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

// WithExclude skips entries whose root-relative, slash-separated path matches
// any of the doublestar patterns ("**/.git", "node_modules", "*.tmp").
// An excluded entry gets no edge and, if it is a directory, is not descended.
// Repeated calls accumulate.
func WithExclude(patterns ...string) BuilderOption {
	return func(c *builderConfig) {
		c.excludes = append(c.excludes, patterns...)
	}
}

// WithMaxDepth limits listing to directories whose depth below root is < n.
// n == 1 lists the root only; n == 0 means no limit. Panics on n < 0.
func WithMaxDepth(n int) BuilderOption {
	if n < 0 {
		panic("builder: WithMaxDepth(n<0)")
	}
	return func(c *builderConfig) {
		c.maxDepth = n
	}
}

// WithOnError registers a hook called for every recovered EntryError, after
// it is logged and before it is appended to the Report. Nil is ignored.
func WithOnError(fn func(EntryError)) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.onError = fn
		}
	}
}
