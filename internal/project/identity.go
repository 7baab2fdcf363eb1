package project

import (
	"strings"
	"unicode"
)

// DefaultAuthor is the sentinel used when no author is supplied.
const DefaultAuthor = "Your Name"

// DefaultPythonVersion is the version used when --python is not supplied.
const DefaultPythonVersion = "3.12"

// Identity holds the resolved naming forms for one generation run.
// All derived fields are pure functions of RawName, so recomputing an
// Identity from the same inputs is byte-identical.
type Identity struct {
	RawName       string // user-supplied project name, e.g. "my-app"
	PackageName   string // import-safe form, e.g. "my_app"
	ClassName     string // type-style form, e.g. "MyApp"
	PythonVersion string // e.g. "3.12"
	Author        string
}

// DeriveIdentity computes the derived name forms for a validated project name.
// Version and author fall back to their defaults when empty.
func DeriveIdentity(rawName, pythonVersion, author string) Identity {
	if pythonVersion == "" {
		pythonVersion = DefaultPythonVersion
	}
	if author == "" {
		author = DefaultAuthor
	}

	return Identity{
		RawName:       rawName,
		PackageName:   PackageName(rawName),
		ClassName:     ClassName(rawName),
		PythonVersion: pythonVersion,
		Author:        author,
	}
}

// PackageName lowercases the name and replaces hyphens with underscores.
func PackageName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// ClassName splits the name on hyphens and underscores, capitalizes the
// first rune of each non-empty segment, and concatenates the segments.
func ClassName(name string) string {
	segments := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for _, seg := range segments {
		runes := []rune(seg)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}
