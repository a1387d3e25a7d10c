package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStyle is returned by ParseStyle for an unrecognised name.
var ErrUnknownStyle = errors.New("render: unknown style")

// Style selects how Adjacency lays out a graph.
type Style int

const (
	// StylePlain prints "path:" followed by each successor indented by two
	// spaces, one vertex after another.
	StylePlain Style = iota
	// StyleTable prints one row per vertex with its out-degree and successors.
	StyleTable
)

// String returns the name accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleTable:
		return "table"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle maps "plain" or "table" (case-insensitive) to a Style.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plain", "":
		return StylePlain, nil
	case "table":
		return StyleTable, nil
	default:
		return StylePlain, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}
