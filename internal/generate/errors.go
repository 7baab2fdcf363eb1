package generate

import "fmt"

// AmbiguousModeError reports that the working context does not determine
// whether to generate or run in place, and no override was given.
type AmbiguousModeError struct {
	Reason string
}

func (e *AmbiguousModeError) Error() string {
	return fmt.Sprintf("cannot determine mode: %s (supply a project name or --mode)", e.Reason)
}

// TargetExistsError reports a generate-mode target root that already
// exists. Nothing has been written when this is returned.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target directory already exists: %s", e.Path)
}

// RenameCollisionError reports a template tree that contains both a
// sample file and the file its rename rule would produce. This is a
// template authoring bug and is never resolved silently.
type RenameCollisionError struct {
	Path    string // the sample path
	Renamed string // the colliding destination path
}

func (e *RenameCollisionError) Error() string {
	return fmt.Sprintf("rename collision: %s and %s both exist in the template", e.Path, e.Renamed)
}

// MaterializationError reports a failed copy or substitution step, and
// states whether the target root was rolled back.
type MaterializationError struct {
	Err        error
	RolledBack bool
}

func (e *MaterializationError) Error() string {
	if e.RolledBack {
		return fmt.Sprintf("materialization failed: %v (target directory removed)", e.Err)
	}
	return fmt.Sprintf("materialization failed: %v (no rollback; inspect the directory manually)", e.Err)
}

func (e *MaterializationError) Unwrap() error {
	return e.Err
}
