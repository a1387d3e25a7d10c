// SPDX-License-Identifier: MIT
// Package: fsgraph/builder
//
// id_fn.go - entry-name schemes for the synthetic tree constructors.
//
// An IDFn maps a child index to a base name; constructors join it under the
// parent path, so Star("/r", 3) with SymbolIDFn yields /r/A, /r/B, /r/C.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based child index to an entry name.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index ("0", "1", …).
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns a single upper-case letter for idx in [0,25].
// Panics outside that range; the synthetic constructors turn that into
// ErrOptionViolation before adding anything.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}
