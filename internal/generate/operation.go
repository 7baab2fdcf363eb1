package generate

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jag-main/python-dev-template/internal/tmpl"
)

// Operation represents a file system operation that can be validated and
// executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (file already exists).
//
// Execute performs the actual operation, only after Validate succeeds.
//
// Description returns a human-readable description for output.
// Path returns the destination path the operation writes or removes.
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
	Path() string
}

// MkdirOp creates a directory (and parents). Creating an existing
// directory is not an error.
type MkdirOp struct {
	Dir string
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	return os.MkdirAll(op.Dir, 0755)
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create %s%c", op.Dir, filepath.Separator)
}

func (op *MkdirOp) Path() string { return op.Dir }

// CopyFileOp copies one template file byte-for-byte to its destination.
type CopyFileOp struct {
	Source     fs.FS       // template tree
	SourcePath string      // slash path inside Source
	DestPath   string      // destination on disk
	Mode       fs.FileMode // destination permissions
}

func (op *CopyFileOp) Validate(ctx context.Context, force bool) error {
	// Validation stays read-only so dry runs leave no trace; parents are
	// created at execution time.
	if !force {
		if _, err := os.Stat(op.DestPath); err == nil {
			return fmt.Errorf("file already exists: %s", op.DestPath)
		}
	}

	if _, err := fs.Stat(op.Source, op.SourcePath); err != nil {
		return fmt.Errorf("template file missing: %s: %w", op.SourcePath, err)
	}

	return nil
}

func (op *CopyFileOp) Execute(ctx context.Context) error {
	data, err := fs.ReadFile(op.Source, op.SourcePath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", op.SourcePath, err)
	}
	if err := os.MkdirAll(filepath.Dir(op.DestPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(op.DestPath, data, op.Mode)
}

func (op *CopyFileOp) Description() string {
	return fmt.Sprintf("Create %s", op.DestPath)
}

func (op *CopyFileOp) Path() string { return op.DestPath }

// SubstituteOp rewrites a file's content through the variable mapping.
// The rewrite goes to a temporary file in the same directory and is moved
// over the destination atomically, so a crash mid-write never leaves a
// half-written file. The temporary file is removed on every error path.
type SubstituteOp struct {
	FilePath string
	Vars     *tmpl.Variables
}

func (op *SubstituteOp) Validate(ctx context.Context, force bool) error {
	if op.Vars == nil {
		return fmt.Errorf("no variables for substitution in %s", op.FilePath)
	}
	return nil
}

func (op *SubstituteOp) Execute(ctx context.Context) error {
	data, err := os.ReadFile(op.FilePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", op.FilePath, err)
	}

	info, err := os.Stat(op.FilePath)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(op.FilePath), ".pydev-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", op.FilePath, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(op.Vars.Substitute(string(data))); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, info.Mode().Perm()); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, op.FilePath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", op.FilePath, err)
	}
	return nil
}

func (op *SubstituteOp) Description() string {
	return fmt.Sprintf("Render %s", op.FilePath)
}

func (op *SubstituteOp) Path() string { return op.FilePath }

// RemoveFileOp deletes a file. A missing file is not an error.
type RemoveFileOp struct {
	FilePath string
}

func (op *RemoveFileOp) Validate(ctx context.Context, force bool) error {
	return nil
}

func (op *RemoveFileOp) Execute(ctx context.Context) error {
	if err := os.Remove(op.FilePath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (op *RemoveFileOp) Description() string {
	return fmt.Sprintf("Remove %s", op.FilePath)
}

func (op *RemoveFileOp) Path() string { return op.FilePath }
