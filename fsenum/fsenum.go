// SPDX-License-Identifier: MIT
//
// Package fsenum lists directory entries for the graph builder.
//
// It is the only place that touches a filesystem. Everything is expressed
// against afero.Fs, so production code runs on afero.NewOsFs() and tests run
// on afero.NewMemMapFs() or a wrapper that injects failures.
//
// Contract consumed by builder.Build:
//
//   - Probe(path) answers "does it exist, is it a directory". A missing path
//     is reported as Info{Exists: false}, not as an error.
//   - List(dir) yields the direct children of dir with their type, in
//     afero's order (sorted by name). A failure to open or read dir is a
//     recoverable error the builder logs and skips.
//   - A child whose type cannot be resolved (a symlink whose target cannot be
//     stat'ed) is still listed, with Entry.Err set.
//
// Symlinks are followed when deciding directory-ness. A symlink loop is not
// detected here.
package fsenum

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Info is the result of probing a path.
type Info struct {
	Exists bool
	IsDir  bool
}

// Entry is one direct child of a listed directory.
type Entry struct {
	// Path is the full child path: filepath.Join(dir, Name).
	Path string

	// Name is the base name as reported by the filesystem.
	Name string

	// IsDir is true if the child is a directory, following symlinks.
	IsDir bool

	// Err is set when the child's type could not be resolved.
	Err error
}

// Enumerator is the directory-listing service the builder depends on.
type Enumerator interface {
	Probe(path string) (Info, error)
	List(dir string) ([]Entry, error)
}

// FS implements Enumerator over an afero filesystem.
type FS struct {
	fs afero.Fs
}

// New wraps fsys. A nil fsys falls back to the OS filesystem.
func New(fsys afero.Fs) *FS {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return &FS{fs: fsys}
}

// NewOS returns an Enumerator over the real filesystem.
func NewOS() *FS { return New(afero.NewOsFs()) }

// Probe stats path, following symlinks.
func (f *FS) Probe(path string) (Info, error) {
	fi, err := f.fs.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Info{}, nil
		}

		return Info{}, err
	}

	return Info{Exists: true, IsDir: fi.IsDir()}, nil
}

// List returns the direct children of dir.
func (f *FS) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(f.fs, dir)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(infos))
	for _, fi := range infos {
		e := Entry{
			Path:  filepath.Join(dir, fi.Name()),
			Name:  fi.Name(),
			IsDir: fi.IsDir(),
		}
		if fi.Mode()&os.ModeSymlink != 0 {
			e.IsDir, e.Err = f.resolveLink(e.Path)
		}
		out = append(out, e)
	}

	return out, nil
}

// resolveLink follows a symlink to decide whether it points at a directory.
// A dangling link is a plain entry.
func (f *FS) resolveLink(path string) (bool, error) {
	fi, err := f.fs.Stat(path)
	switch {
	case err == nil:
		return fi.IsDir(), nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
