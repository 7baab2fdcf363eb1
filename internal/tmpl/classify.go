package tmpl

import (
	"path"
	"strings"
)

// Entry is the classification of one template path. The three flags are
// independent: a path may be both renamed and substitution-targeted.
type Entry struct {
	Excluded          bool
	NeedsSubstitution bool
	NeedsRename       bool
	// RenamedBase is the output base name when NeedsRename is set.
	RenamedBase string
}

// Classify tags a root-relative, slash-separated template path. It is a
// pure function of the path and the rule lists; unmatched paths are copied
// verbatim. Rules are evaluated in precedence order: exclusion first, then
// rename, then substitution.
func Classify(relPath string, isDir bool, rules *Rules) Entry {
	relPath = path.Clean(relPath)
	base := path.Base(relPath)

	// Exclusion: directory names match anywhere in the path, not only at
	// the classified path itself, so files under an excluded directory
	// are excluded too.
	for _, elem := range strings.Split(relPath, "/") {
		for _, dir := range rules.ExcludeDirs {
			if elem == dir {
				return Entry{Excluded: true}
			}
		}
	}
	if !isDir {
		for _, pattern := range rules.ExcludeFiles {
			if ok, _ := path.Match(pattern, base); ok {
				return Entry{Excluded: true}
			}
		}
	}

	var entry Entry
	if !isDir {
		for _, rename := range rules.Renames {
			if base == rename.From {
				entry.NeedsRename = true
				entry.RenamedBase = rename.To
				break
			}
		}

		// Directories are never substitution targets.
		for _, target := range rules.SubstituteTargets {
			if relPath == target || strings.HasSuffix(relPath, "/"+target) {
				entry.NeedsSubstitution = true
				break
			}
		}
	}

	return entry
}
