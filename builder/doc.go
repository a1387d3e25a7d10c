// Package builder populates a core.Graph from a filesystem subtree.
//
// Build walks the tree under a root directory through an fsenum.Enumerator
// and adds one edge (dir, entry) for every entry it lists, descending into
// sub-directories. The result is a directed graph whose edges mean
// "directory contains entry".
//
// Traversal:
//
//   - An explicit work stack replaces call recursion, so depth is bounded by
//     memory rather than the goroutine stack.
//   - The order is depth-first. Each directory is listed in full (its edges
//     are appended in enumeration order) before its sub-directories are
//     expanded, first child first. Per-vertex neighbor order is therefore the
//     enumeration order, exactly as with a recursive walk.
//
// Failure policy:
//
//   - Invalid root (missing, or not a directory): nothing is added and the
//     Report is tagged StatusInvalidRoot. This is not an error.
//   - A directory that cannot be listed (permission denied, I/O fault), or an
//     entry whose type cannot be resolved, is logged at WARN, handed to the
//     OnError hook, recorded in Report.Errors and skipped. One inaccessible
//     subtree never aborts the build.
//   - Only programmer errors are returned: ErrNilGraph, ErrNilEnumerator,
//     ErrOptionViolation.
//
// Options:
//
//	WithLogger(*slog.Logger)      – destination for recovered-error logs.
//	WithExclude(globs ...string)  – doublestar patterns, relative to root.
//	WithMaxDepth(n int)           – list directories at depth < n (0 = no limit).
//	WithOnError(func(EntryError)) – observe every recovered error.
//
// Synthetic trees:
//
//	Synthesize(g, opts, Star/Chain/Tree...) produces the same edges Build
//	would produce for a directory of that shape, without touching any
//	filesystem. Entry names come from the ID scheme (WithIDScheme;
//	DefaultIDFn or SymbolIDFn). Tests and benchmarks of the query engines
//	use them.
//
// Cycles:
//
//	Symlinks to directories are followed and no visited set is kept, so a
//	symlink loop never terminates unless WithMaxDepth bounds it. Callers must
//	not point Build at a tree with traversal cycles.
package builder
