package pydev_test

import (
	"io/fs"
	"strings"
	"testing"

	pydev "github.com/jag-main/python-dev-template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTemplate(t *testing.T) {
	sub, err := fs.Sub(pydev.Templates, pydev.DefaultTemplateRoot)
	require.NoError(t, err)

	// Every substitution target the default rules expect is present.
	for _, name := range []string{
		"pyproject.toml", "Makefile", "README.md", ".envrc-sample",
		".gitignore", "src/main.py", "tests/test_main.py",
	} {
		_, err := fs.Stat(sub, name)
		assert.NoError(t, err, "template file %s", name)
	}

	data, err := fs.ReadFile(sub, "pyproject.toml")
	require.NoError(t, err)
	for _, token := range []string{"{{PROJECT_NAME}}", "{{AUTHOR}}", "{{PYTHON_VERSION}}", "{{PYTHON_VERSION_NODOT}}"} {
		assert.True(t, strings.Contains(string(data), token), "pyproject.toml missing %s", token)
	}

	data, err = fs.ReadFile(sub, "src/main.py")
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hello from {{PROJECT_NAME}}!")
}
