// SPDX-License-Identifier: MIT
//
// Package pathid defines the identity of a filesystem path when it is used as
// a graph vertex: the canonical spelling and the total order over spellings.
//
// Canonical form is lexical only (no symlink resolution, no Abs): the path is
// cleaned and converted to forward slashes, so "a//b/../c" and "a/c" are the
// same vertex on every platform.
//
// Ordering is segment-wise, the way std::filesystem::path compares: the two
// paths are split on "/" and the segments are compared pairwise as strings.
// This keeps a directory's children adjacent to it in sorted output, e.g.
//
//	"/a" < "/a/b" < "/a/c" < "/a-b"
//
// whereas a plain string sort would place "/a-b" before "/a/b".
package pathid

import (
	"path/filepath"
	"sort"
	"strings"
)

// Separator is the segment separator of canonical paths.
const Separator = "/"

// Clean returns the canonical spelling of p. Empty input stays empty so that
// callers can keep rejecting it as an invalid identifier.
//
// Complexity: O(len(p)).
func Clean(p string) string {
	if p == "" {
		return ""
	}

	return filepath.ToSlash(filepath.Clean(p))
}

// Segments splits a canonical path into its segments. An absolute path keeps
// a leading Separator segment so that "/a" and "a" never compare equal.
//
// Complexity: O(len(p)).
func Segments(p string) []string {
	if p == "" {
		return nil
	}
	if p == Separator {
		return []string{Separator}
	}

	var out []string
	if strings.HasPrefix(p, Separator) {
		out = append(out, Separator)
		p = p[1:]
	}

	return append(out, strings.Split(p, Separator)...)
}

// Compare orders a and b segment by segment and returns -1, 0 or +1.
// A path that is a strict prefix (by segments) of another sorts first.
//
// Complexity: O(len(a)+len(b)), no allocations.
func Compare(a, b string) int {
	for {
		switch {
		case a == "" && b == "":
			return 0
		case a == "":
			return -1
		case b == "":
			return 1
		}

		var sa, sb string
		sa, a = head(a)
		sb, b = head(b)
		if c := strings.Compare(sa, sb); c != 0 {
			return c
		}
	}
}

// Less reports whether a sorts before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }

// Sort orders ps in place by Compare. The sort is stable.
func Sort(ps []string) {
	sort.SliceStable(ps, func(i, j int) bool { return Less(ps[i], ps[j]) })
}

// head cuts the first segment off p. A leading separator is its own segment.
func head(p string) (seg, rest string) {
	if strings.HasPrefix(p, Separator) {
		// Root marker: the empty segment sorts before every name.
		return "", p[1:]
	}
	if i := strings.Index(p, Separator); i >= 0 {
		return p[:i], p[i+1:]
	}

	return p, ""
}
