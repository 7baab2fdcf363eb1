package tmpl_test

import (
	"testing"

	"github.com/jag-main/python-dev-template/internal/tmpl"
	"github.com/stretchr/testify/assert"
)

func TestClassify_ExcludedDirs(t *testing.T) {
	rules := tmpl.DefaultRules()

	tests := []struct {
		path  string
		isDir bool
	}{
		{"__pycache__", true},
		{".git", true},
		{".venv", true},
		// Excluded directory names match anywhere in the path.
		{"src/__pycache__", true},
		{"src/__pycache__/main.cpython-312.pyc", false},
		{".git/config", false},
	}
	for _, tt := range tests {
		entry := tmpl.Classify(tt.path, tt.isDir, rules)
		assert.True(t, entry.Excluded, "path %q", tt.path)
	}
}

func TestClassify_ExcludedFiles(t *testing.T) {
	rules := tmpl.DefaultRules()

	for _, p := range []string{"main.pyc", "src/util.pyo", ".coverage", ".pydev.yml"} {
		entry := tmpl.Classify(p, false, rules)
		assert.True(t, entry.Excluded, "path %q", p)
	}

	// Dotfiles that are not generator-only are kept.
	entry := tmpl.Classify(".gitignore", false, rules)
	assert.False(t, entry.Excluded)
}

func TestClassify_Rename(t *testing.T) {
	rules := tmpl.DefaultRules()

	entry := tmpl.Classify(".envrc-sample", false, rules)
	assert.True(t, entry.NeedsRename)
	assert.Equal(t, ".envrc", entry.RenamedBase)
	// The sample file is also a substitution target.
	assert.True(t, entry.NeedsSubstitution)

	entry = tmpl.Classify(".envrc", false, rules)
	assert.False(t, entry.NeedsRename)
}

func TestClassify_SubstitutionTargets(t *testing.T) {
	rules := tmpl.DefaultRules()

	targeted := []string{
		"pyproject.toml", "Makefile", "README.md",
		"src/main.py", "tests/test_main.py",
	}
	for _, p := range targeted {
		entry := tmpl.Classify(p, false, rules)
		assert.True(t, entry.NeedsSubstitution, "path %q", p)
		assert.False(t, entry.Excluded, "path %q", p)
	}

	// Directories are never substitution targets, even on a name match.
	entry := tmpl.Classify("Makefile", true, rules)
	assert.False(t, entry.NeedsSubstitution)

	// Unmatched paths are copied verbatim.
	entry = tmpl.Classify("docs/guide.md", false, rules)
	assert.Equal(t, tmpl.Entry{}, entry)
}

func TestClassify_SuffixMatch(t *testing.T) {
	rules := tmpl.DefaultRules()

	// Targets match as path suffixes, not bare base names.
	entry := tmpl.Classify("nested/src/main.py", false, rules)
	assert.True(t, entry.NeedsSubstitution)

	entry = tmpl.Classify("src/other_main.py", false, rules)
	assert.False(t, entry.NeedsSubstitution)
}
