// Package render writes graphs, paths, spanning trees and build reports as
// text. Tables and tree lists use go-pretty; counters use go-humanize.
//
// All functions write to an io.Writer and return the first write error, so
// callers can target os.Stdout, a buffer or a cobra command's output.
package render
