package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jag-main/python-dev-template/internal/commands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Help(t *testing.T) {
	cmd := commands.RootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "pydev [project-name]")
	assert.Contains(t, buf.String(), "--python")
}

func TestRootCmd_GeneratesFromEmbeddedTemplate(t *testing.T) {
	parent := t.TempDir()

	cmd := commands.RootCmd()
	cmd.SetArgs([]string{"my-app", "--target", parent, "--no-git", "--author", "Jane Doe", "--python", "3.13"})
	require.NoError(t, cmd.Execute())

	root := filepath.Join(parent, "my-app")

	data, err := os.ReadFile(filepath.Join(root, "pyproject.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `name = "my-app"`)
	assert.Contains(t, string(data), "Jane Doe")
	assert.Contains(t, string(data), ">=3.13")
	assert.Contains(t, string(data), "py313")
	assert.NotContains(t, string(data), "{{")

	data, err = os.ReadFile(filepath.Join(root, "src", "main.py"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `print("Hello from my-app!")`)

	// The sample environment file materializes under its final name.
	_, err = os.Stat(filepath.Join(root, ".envrc"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, ".envrc-sample"))
	assert.True(t, os.IsNotExist(err))
}

func TestRootCmd_RejectsInvalidName(t *testing.T) {
	parent := t.TempDir()

	cmd := commands.RootCmd()
	cmd.SetArgs([]string{"--target", parent, "--no-git", "--", "-bad"})
	err := cmd.Execute()
	require.Error(t, err)

	entries, readErr := os.ReadDir(parent)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
