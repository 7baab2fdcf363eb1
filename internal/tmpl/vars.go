package tmpl

import (
	"strings"

	"github.com/jag-main/python-dev-template/internal/project"
)

// Literal defaults that templates may embed directly instead of using
// placeholder tokens. The secondary substitution pass rewrites these only
// when the resolved value differs.
const (
	literalProjectName = "python-dev-template"
	literalVersion     = project.DefaultPythonVersion
	literalAuthor      = project.DefaultAuthor
)

// Variable is one placeholder-key/resolved-value pair.
type Variable struct {
	Key   string
	Value string
}

// Variables is the ordered, immutable placeholder mapping for one
// generation run. Keys are mutually non-overlapping once wrapped in the
// {{...}} delimiters, so substitution order does not affect the result;
// the fixed ordering exists to make runs deterministic.
type Variables struct {
	vars []Variable
}

// NewVariables builds the placeholder mapping from a resolved identity.
func NewVariables(id project.Identity) *Variables {
	return &Variables{
		vars: []Variable{
			{Key: "PROJECT_NAME", Value: id.RawName},
			{Key: "PACKAGE_NAME", Value: id.PackageName},
			{Key: "CLASS_NAME", Value: id.ClassName},
			{Key: "PYTHON_VERSION", Value: id.PythonVersion},
			{Key: "PYTHON_VERSION_NODOT", Value: strings.ReplaceAll(id.PythonVersion, ".", "")},
			{Key: "AUTHOR", Value: id.Author},
		},
	}
}

// Lookup returns the resolved value for a placeholder key.
func (v *Variables) Lookup(key string) (string, bool) {
	for _, kv := range v.vars {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Substitute replaces every {{KEY}} token with its resolved value, then
// rewrites the template's literal defaults for any value that differs
// from its default.
func (v *Variables) Substitute(text string) string {
	for _, kv := range v.vars {
		text = strings.ReplaceAll(text, "{{"+kv.Key+"}}", kv.Value)
	}

	literals := []struct {
		literal  string
		key      string
		fallback string
	}{
		{literalProjectName, "PROJECT_NAME", literalProjectName},
		{literalVersion, "PYTHON_VERSION", literalVersion},
		{literalAuthor, "AUTHOR", literalAuthor},
	}
	for _, l := range literals {
		value, ok := v.Lookup(l.key)
		if ok && value != l.fallback {
			text = strings.ReplaceAll(text, l.literal, value)
		}
	}

	return text
}
