// Package pydev scaffolds modern Python projects from a template tree.
//
// The embedded default template carries a uv/ruff/pytest toolchain; external
// template directories can be used via the --template flag.
package pydev

import "embed"

// Version is the current pydev release.
const Version = "0.3.0"

// Templates holds the embedded default template tree under templates/default.
//
//go:embed all:templates/default
var Templates embed.FS

// DefaultTemplateRoot is the path of the default template inside Templates.
const DefaultTemplateRoot = "templates/default"
