package generate

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jag-main/python-dev-template/internal/execx"
	"github.com/jag-main/python-dev-template/internal/fsutil"
	"github.com/jag-main/python-dev-template/internal/output"
	"github.com/jag-main/python-dev-template/internal/project"
	"github.com/jag-main/python-dev-template/internal/tmpl"
)

// Options configures one generation run.
type Options struct {
	Name          string // project name; may be empty when inferable
	PythonVersion string
	Author        string
	TargetDir     string // parent directory for generate mode ("" = cwd)
	ModeOverride  Mode

	Source    fs.FS  // template tree
	SourceDir string // on-disk template root, "" for the embedded template

	Cwd     string // working directory ("" = os.Getwd)
	DryRun  bool
	SkipGit bool
	Out     io.Writer // progress output (nil = stderr)
}

// Result describes a completed run.
type Result struct {
	Mode           Mode
	Name           string
	TargetRoot     string
	Created        []string // every path written, in write order
	GitInitialized bool
}

// Run sequences one generation: validate, resolve variables, detect mode,
// materialize, post-steps, git initialization. No filesystem mutation
// happens before validation and mode detection succeed. A generate-mode
// failure after the first write removes the target root; an in-place
// failure is fatal with no rollback.
func Run(ctx context.Context, opts Options) (*Result, error) {
	cwd := opts.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cwd = wd
	}

	version := opts.PythonVersion
	if version == "" {
		version = project.DefaultPythonVersion
	}
	if err := project.ValidateVersion(version); err != nil {
		return nil, err
	}
	if opts.Name != "" {
		if err := project.ValidateProjectName(opts.Name); err != nil {
			return nil, err
		}
	}

	snap := TakeSnapshot(cwd, opts.SourceDir)
	decision, err := DetectMode(snap, opts.ModeOverride, opts.Name, opts.TargetDir)
	if err != nil {
		return nil, err
	}
	// The inferred name (directory base name) still has to be a valid
	// project name.
	if err := project.ValidateProjectName(decision.Name); err != nil {
		return nil, err
	}
	output.Verbose(fmt.Sprintf("mode: %s, project: %s, target: %s", decision.Mode, decision.Name, decision.TargetRoot))

	identity := project.DeriveIdentity(decision.Name, version, opts.Author)
	vars := tmpl.NewVariables(identity)

	src := opts.Source
	inPlace := decision.Mode == ModeInPlace
	if inPlace {
		// In place, the working directory itself is the template copy.
		src = os.DirFS(cwd)
	}

	rules, err := tmpl.LoadRules(src)
	if err != nil {
		return nil, err
	}

	ops, err := NewMaterializer(rules, vars).Plan(src, decision.TargetRoot, inPlace)
	if err != nil {
		return nil, err
	}
	if inPlace {
		cleanup, err := planCleanup(src, decision.TargetRoot, rules)
		if err != nil {
			return nil, err
		}
		ops = append(ops, cleanup...)
	}

	result := &Result{
		Mode:       decision.Mode,
		Name:       decision.Name,
		TargetRoot: decision.TargetRoot,
	}

	if !inPlace {
		if _, err := os.Stat(decision.TargetRoot); err == nil {
			return nil, &TargetExistsError{Path: decision.TargetRoot}
		}
		if !opts.DryRun {
			if err := os.MkdirAll(decision.TargetRoot, 0755); err != nil {
				return nil, fmt.Errorf("creating %s: %w", decision.TargetRoot, err)
			}
			result.Created = append(result.Created, decision.TargetRoot)
		}
	}

	execOpts := ExecuteOptions{
		DryRun: opts.DryRun,
		Force:  inPlace,
		Writer: opts.Out,
		Observer: func(op Operation) {
			result.Created = append(result.Created, op.Path())
		},
	}
	if err := Execute(ctx, ops, execOpts); err != nil {
		return nil, fail(result, err)
	}

	if !opts.DryRun && !opts.SkipGit {
		initialized, err := initGit(ctx, decision.TargetRoot)
		if err != nil {
			return nil, fail(result, err)
		}
		result.GitInitialized = initialized
	}

	return result, nil
}

// fail converts an execution error into the reported failure, rolling
// back a generate-mode target root when it is safe to remove.
func fail(result *Result, err error) error {
	if result.Mode != ModeGenerate {
		return &MaterializationError{Err: err, RolledBack: false}
	}
	if !safeToRemove(result.TargetRoot) {
		return &MaterializationError{Err: err, RolledBack: false}
	}
	if rmErr := os.RemoveAll(result.TargetRoot); rmErr != nil {
		return &MaterializationError{Err: err, RolledBack: false}
	}
	return &MaterializationError{Err: err, RolledBack: true}
}

// safeToRemove guards rollback against destroying the home directory or
// the filesystem root.
func safeToRemove(path string) bool {
	if path == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if abs == string(filepath.Separator) || abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return false
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return false
	}
	return true
}

// planCleanup builds the in-place post-step operations: remove sample
// originals that were rewritten under their final name, and remove
// generator-only files.
func planCleanup(src fs.FS, root string, rules *tmpl.Rules) ([]Operation, error) {
	var ops []Operation

	err := fsutil.WalkAll(src, func(relPath string, d fs.DirEntry) error {
		entry := tmpl.Classify(relPath, d.IsDir(), rules)
		if d.IsDir() {
			if entry.Excluded {
				return fs.SkipDir
			}
			return nil
		}

		// A file-level exclusion here means a generator-only file: paths
		// under excluded directories are never visited.
		if entry.Excluded || entry.NeedsRename {
			ops = append(ops, &RemoveFileOp{FilePath: filepath.Join(root, filepath.FromSlash(relPath))})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return ops, nil
}

// initGit initializes a git repository with an initial commit containing
// the full generated tree. An existing repository is left untouched.
func initGit(ctx context.Context, root string) (bool, error) {
	if _, err := os.Stat(filepath.Join(root, ".git")); err == nil {
		output.Verbose("git repository already present, skipping init")
		return false, nil
	}

	ex := execx.NewExecutor(&execx.Options{Dir: root})
	if err := ex.RunWithSpinner(ctx, "Initializing git repository", "git", "init", "-q"); err != nil {
		return false, err
	}
	if err := ex.Run(ctx, "git", "add", "-A"); err != nil {
		return false, err
	}
	if err := ex.Run(ctx, "git", "commit", "-q", "-m", "Initial commit"); err != nil {
		return false, err
	}
	return true, nil
}
