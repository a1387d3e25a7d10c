// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// synthetic.go - deterministic directory-shaped fixtures built without a
// filesystem. They produce exactly the edges Build would produce for the
// equivalent tree and are used by tests, examples and benchmarks of the
// query engines.

package builder

import (
	"fmt"
	"path"

	"github.com/katalvlaran/fsgraph/core"
)

// Constructor applies a deterministic mutation to g using the resolved
// configuration. Constructors check their parameters, including whether the
// ID scheme can name every child, before touching g. They never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

const (
	methodStar  = "Star"
	methodChain = "Chain"
	methodTree  = "Tree"
)

// WithIDScheme sets the entry-name scheme of the synthetic constructors.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// Synthesize applies constructors to g in order. The first failing
// constructor stops the sequence; edges added before it are kept.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - constructor errors wrapped as "Synthesize: %w".
func Synthesize(g *core.Graph, opts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return ErrNilGraph
	}
	cfg := newBuilderConfig(opts...)
	for _, con := range cons {
		if err := con(g, cfg); err != nil {
			return fmt.Errorf("Synthesize: %w", err)
		}
	}

	return nil
}

// childNames asks the ID scheme for n names up front. A scheme that panics
// for some index (SymbolIDFn past 25) yields ErrOptionViolation.
func (c builderConfig) childNames(method string, n int) (names []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			names = nil
			err = fmt.Errorf("%s: ID scheme cannot name %d children (%v): %w", method, n, r, ErrOptionViolation)
		}
	}()
	names = make([]string, n)
	for i := range names {
		names[i] = c.idFn(i)
	}

	return names, nil
}

// Star links n entries directly under root: a directory with n files.
// n == 0 adds the root alone.
//
// Complexity: O(n).
func Star(root string, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d: %w", methodStar, n, ErrOptionViolation)
		}
		names, err := cfg.childNames(methodStar, n)
		if err != nil {
			return err
		}
		if err := g.AddVertex(root); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, root, err)
		}
		for _, name := range names {
			leaf := path.Join(root, name)
			if err := g.AddEdge(root, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodStar, root, leaf, err)
			}
		}

		return nil
	}
}

// Chain nests depth directories below root, each containing the next:
// root → root/0 → root/0/1 → … (names from the ID scheme).
//
// Complexity: O(depth).
func Chain(root string, depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if depth < 0 {
			return fmt.Errorf("%s: depth=%d: %w", methodChain, depth, ErrOptionViolation)
		}
		names, err := cfg.childNames(methodChain, depth)
		if err != nil {
			return err
		}
		if err := g.AddVertex(root); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodChain, root, err)
		}
		cur := root
		for _, name := range names {
			next := path.Join(cur, name)
			if err := g.AddEdge(cur, next); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodChain, cur, next, err)
			}
			cur = next
		}

		return nil
	}
}

// Tree builds a complete directory tree with the given fan-out and depth,
// breadth-first, so sibling order matches the ID scheme. It has
// (fanout^(depth+1)-1)/(fanout-1) vertices for fanout > 1.
//
// Complexity: O(V).
func Tree(root string, fanout, depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if fanout < 1 || depth < 0 {
			return fmt.Errorf("%s: fanout=%d depth=%d: %w", methodTree, fanout, depth, ErrOptionViolation)
		}
		names, err := cfg.childNames(methodTree, fanout)
		if err != nil {
			return err
		}
		if err := g.AddVertex(root); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodTree, root, err)
		}
		level := []string{root}
		for d := 0; d < depth; d++ {
			next := make([]string, 0, len(level)*fanout)
			for _, dir := range level {
				for _, name := range names {
					child := path.Join(dir, name)
					if err := g.AddEdge(dir, child); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodTree, dir, child, err)
					}
					next = append(next, child)
				}
			}
			level = next
		}

		return nil
	}
}
