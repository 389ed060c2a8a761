// Package fs provides file system adapters for walking source trees and
// fingerprinting them.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// JavaExt is the extension of the source files discovery cares about.
const JavaExt = ".java"

// Walker walks a directory tree, skipping VCS and ignored entries.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker with the given extra ignore patterns. Patterns
// are matched with filepath.Match against the entry's base name.
func NewWalker(ignores []string) *Walker {
	return &Walker{ignores: ignores}
}

// WalkFiles yields every file under root. VCS directories and ignored
// entries are skipped; walk errors on individual entries are skipped rather
// than aborting the traversal, so one unreadable directory cannot sink the
// whole scan.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}

			if skip := w.skipAction(d); skip != nil {
				return skip
			}
			if d.IsDir() || w.ignored(d.Name()) {
				return nil
			}

			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// SourceFiles yields the files under root whose name has the given
// extension (case-insensitive).
func (w *Walker) SourceFiles(root, ext string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.WalkFiles(root) {
			if !strings.EqualFold(filepath.Ext(path), ext) {
				continue
			}
			if !yield(path) {
				return
			}
		}
	}
}

// skipAction returns filepath.SkipDir for directories that must never be
// descended into.
func (w *Walker) skipAction(d fs.DirEntry) error {
	if !d.IsDir() {
		return nil
	}
	switch d.Name() {
	case ".git", ".jj", ".hg", ".svn":
		return filepath.SkipDir
	}
	if w.ignored(d.Name()) {
		return filepath.SkipDir
	}
	return nil
}

func (w *Walker) ignored(name string) bool {
	for _, pattern := range w.ignores {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
