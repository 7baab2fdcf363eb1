package generate

import (
	"io/fs"
	"path"
	"path/filepath"

	"github.com/jag-main/python-dev-template/internal/fsutil"
	"github.com/jag-main/python-dev-template/internal/tmpl"
)

// Materializer plans the operations that turn a template tree into an
// output tree: exclusion, byte-for-byte copies, renames, and content
// substitution.
type Materializer struct {
	rules *tmpl.Rules
	vars  *tmpl.Variables
}

// NewMaterializer creates a materializer for one generation run.
func NewMaterializer(rules *tmpl.Rules, vars *tmpl.Variables) *Materializer {
	return &Materializer{rules: rules, vars: vars}
}

// Plan enumerates src in lexical order and returns the operations that
// produce the output tree under targetRoot. With inPlace set, src and
// targetRoot are the same tree: identity copies and directory creation
// are elided, and only renames and substitutions remain.
func (m *Materializer) Plan(src fs.FS, targetRoot string, inPlace bool) ([]Operation, error) {
	var ops []Operation

	err := fsutil.WalkAll(src, func(relPath string, d fs.DirEntry) error {
		entry := tmpl.Classify(relPath, d.IsDir(), m.rules)
		if entry.Excluded {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if !inPlace {
				ops = append(ops, &MkdirOp{Dir: filepath.Join(targetRoot, filepath.FromSlash(relPath))})
			}
			return nil
		}

		destRel := relPath
		if entry.NeedsRename {
			destRel = path.Join(path.Dir(relPath), entry.RenamedBase)
			if _, err := fs.Stat(src, destRel); err == nil {
				return &RenameCollisionError{Path: relPath, Renamed: destRel}
			}
		}
		destPath := filepath.Join(targetRoot, filepath.FromSlash(destRel))

		if !inPlace || destRel != relPath {
			ops = append(ops, &CopyFileOp{
				Source:     src,
				SourcePath: relPath,
				DestPath:   destPath,
				Mode:       destMode(d),
			})
		}

		if entry.NeedsSubstitution {
			ops = append(ops, &SubstituteOp{FilePath: destPath, Vars: m.vars})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return ops, nil
}

// destMode picks output permissions. Embedded template files surface as
// read-only, so the source mode only decides the executable bit.
func destMode(d fs.DirEntry) fs.FileMode {
	info, err := d.Info()
	if err == nil && info.Mode()&0111 != 0 {
		return 0755
	}
	return 0644
}
