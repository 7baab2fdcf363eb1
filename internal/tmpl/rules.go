package tmpl

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// ManifestName is the optional per-template rule manifest. Templates that
// need different exclusion, rename, or substitution rules place this file
// at their root; it is itself generator-only and never materialized.
const ManifestName = ".pydev.yml"

// RenameRule maps a template base name to the base name it is written as.
type RenameRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Rules is the static rule set the classifier evaluates. A zero list in
// the manifest keeps the corresponding default.
type Rules struct {
	// ExcludeDirs are directory base names skipped wherever they occur.
	ExcludeDirs []string `yaml:"exclude_dirs"`
	// ExcludeFiles are glob patterns for generator-only or stale files.
	ExcludeFiles []string `yaml:"exclude_files"`
	// Renames are applied to matching base names.
	Renames []RenameRule `yaml:"renames"`
	// SubstituteTargets are root-relative paths (or path suffixes) whose
	// content is rewritten through the variable mapping.
	SubstituteTargets []string `yaml:"substitute_targets"`
}

// DefaultRules returns the rule set for the built-in template layout.
func DefaultRules() *Rules {
	return &Rules{
		ExcludeDirs: []string{
			"__pycache__", ".git", ".hg", ".svn",
			".venv", "venv",
			".mypy_cache", ".pytest_cache", ".ruff_cache",
			"build", "dist", ".idea", ".vscode",
		},
		ExcludeFiles: []string{
			"*.pyc", "*.pyo", ".coverage", ManifestName,
		},
		Renames: []RenameRule{
			{From: ".envrc-sample", To: ".envrc"},
		},
		SubstituteTargets: []string{
			"pyproject.toml",
			"Makefile",
			"README.md",
			".envrc-sample",
			"src/main.py",
			"tests/test_main.py",
		},
	}
}

// LoadRules reads the optional manifest from the template root, merging it
// over the defaults. A missing manifest yields the defaults unchanged.
func LoadRules(fsys fs.FS) (*Rules, error) {
	rules := DefaultRules()

	data, err := fs.ReadFile(fsys, ManifestName)
	if err != nil {
		return rules, nil
	}

	var manifest Rules
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ManifestName, err)
	}

	if len(manifest.ExcludeDirs) > 0 {
		rules.ExcludeDirs = manifest.ExcludeDirs
	}
	if len(manifest.ExcludeFiles) > 0 {
		rules.ExcludeFiles = manifest.ExcludeFiles
	}
	if len(manifest.Renames) > 0 {
		rules.Renames = manifest.Renames
	}
	if len(manifest.SubstituteTargets) > 0 {
		rules.SubstituteTargets = manifest.SubstituteTargets
	}

	return rules, nil
}
