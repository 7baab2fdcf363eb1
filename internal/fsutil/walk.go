// Package fsutil provides filesystem traversal helpers shared by the
// template engine. Walks operate on fs.FS so the embedded default template
// and on-disk template directories go through the same code path.
package fsutil

import (
	"io/fs"
	"path"
	"strings"
)

// DefaultIgnoreDirs are common directories to skip during traversal.
var DefaultIgnoreDirs = []string{
	".git", ".svn", ".hg",
	"__pycache__", ".venv", "venv",
	"dist", "build", "tmp",
	".idea", ".vscode",
}

// WalkOptions configures directory traversal behavior.
type WalkOptions struct {
	IgnoreDirs     []string // Directories to skip (default: DefaultIgnoreDirs)
	IgnorePatterns []string // File base-name patterns to skip (e.g. "*.pyc")
	IncludeHidden  bool     // Include hidden files/dirs (default: false)
}

// Walk traverses fsys in lexical order with configurable ignore rules.
// The visitor receives root-relative slash paths. Return fs.SkipDir from
// the visitor to skip a directory.
func Walk(fsys fs.FS, opts WalkOptions, visitor func(relPath string, d fs.DirEntry) error) error {
	ignoreDirs := opts.IgnoreDirs
	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}

	return fs.WalkDir(fsys, ".", func(relPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if relPath == "." {
			return nil
		}

		if !opts.IncludeHidden && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			for _, ignore := range ignoreDirs {
				if d.Name() == ignore {
					return fs.SkipDir
				}
			}
		}

		if !d.IsDir() {
			for _, pattern := range opts.IgnorePatterns {
				if matched, _ := path.Match(pattern, d.Name()); matched {
					return nil
				}
			}
		}

		return visitor(relPath, d)
	})
}

// WalkAll walks fsys visiting every entry, hidden files included. Template
// trees carry dotfiles (.envrc-sample, .gitignore) that must materialize.
func WalkAll(fsys fs.FS, visitor func(relPath string, d fs.DirEntry) error) error {
	return Walk(fsys, WalkOptions{IgnoreDirs: []string{}, IncludeHidden: true}, visitor)
}
