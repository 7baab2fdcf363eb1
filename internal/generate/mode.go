package generate

import (
	"fmt"
	"os"
	"path/filepath"
)

// Mode selects where a run writes its output.
type Mode int

const (
	// ModeUnknown means no explicit override was given.
	ModeUnknown Mode = iota
	// ModeGenerate creates a new directory for the output tree.
	ModeGenerate
	// ModeInPlace rewrites the current directory as the output tree.
	ModeInPlace
)

func (m Mode) String() string {
	switch m {
	case ModeGenerate:
		return "generate"
	case ModeInPlace:
		return "in_place"
	default:
		return "unknown"
	}
}

// ParseMode parses the --mode flag value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "":
		return ModeUnknown, nil
	case "generate":
		return ModeGenerate, nil
	case "in_place":
		return ModeInPlace, nil
	default:
		return ModeUnknown, fmt.Errorf("invalid mode %q: must be in_place or generate", s)
	}
}

// Snapshot captures the read-only existence checks mode detection needs,
// so DetectMode itself stays pure and testable without a filesystem.
type Snapshot struct {
	Cwd               string
	CwdBase           string
	CwdIsTemplateRoot bool // the working directory is the template source root
	HasProjectMarkers bool // pyproject.toml + Makefile + src/ are present
}

// TakeSnapshot performs the existence checks for the working directory.
// templateDir is the on-disk template root, or "" when the embedded
// template is in use.
func TakeSnapshot(cwd, templateDir string) Snapshot {
	snap := Snapshot{
		Cwd:     cwd,
		CwdBase: filepath.Base(cwd),
	}

	if templateDir != "" {
		snap.CwdIsTemplateRoot = samePath(cwd, templateDir)
	}

	snap.HasProjectMarkers = isRegularFile(filepath.Join(cwd, "pyproject.toml")) &&
		isRegularFile(filepath.Join(cwd, "Makefile")) &&
		isDir(filepath.Join(cwd, "src"))

	return snap
}

// Decision is the outcome of mode detection.
type Decision struct {
	Mode       Mode
	Name       string // resolved project name (may be inferred)
	TargetRoot string
}

// DetectMode chooses between generate and in-place from the snapshot, an
// optional explicit override, the supplied name, and the --target flag.
// It is a pure decision procedure.
func DetectMode(snap Snapshot, override Mode, name, targetDir string) (Decision, error) {
	generateRoot := func(n string) string {
		parent := targetDir
		if parent == "" {
			parent = snap.Cwd
		}
		return filepath.Join(parent, n)
	}

	switch override {
	case ModeGenerate:
		if name == "" {
			return Decision{}, &AmbiguousModeError{Reason: "generate mode requires a project name"}
		}
		return Decision{Mode: ModeGenerate, Name: name, TargetRoot: generateRoot(name)}, nil

	case ModeInPlace:
		if targetDir != "" {
			return Decision{}, fmt.Errorf("--target is only valid in generate mode")
		}
		if name == "" {
			name = snap.CwdBase
		}
		return Decision{Mode: ModeInPlace, Name: name, TargetRoot: snap.Cwd}, nil
	}

	switch {
	case snap.CwdIsTemplateRoot:
		// The template root has no project name of its own to infer.
		if name == "" {
			return Decision{}, &AmbiguousModeError{Reason: "running from the template root requires a project name"}
		}
		return Decision{Mode: ModeGenerate, Name: name, TargetRoot: generateRoot(name)}, nil

	case snap.HasProjectMarkers:
		if targetDir != "" {
			return Decision{}, fmt.Errorf("--target is only valid in generate mode")
		}
		if name == "" {
			name = snap.CwdBase
		}
		return Decision{Mode: ModeInPlace, Name: name, TargetRoot: snap.Cwd}, nil

	case name != "":
		return Decision{Mode: ModeGenerate, Name: name, TargetRoot: generateRoot(name)}, nil
	}

	return Decision{}, &AmbiguousModeError{Reason: "the current directory is neither a template root nor a generated project"}
}

func samePath(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func isRegularFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
