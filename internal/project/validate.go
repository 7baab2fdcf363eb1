package project

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	// Names start with a lowercase letter, may contain lowercase letters,
	// digits, hyphens and underscores, and end with a letter or digit.
	// A single lowercase letter is also valid.
	namePattern = regexp.MustCompile(`^[a-z]([a-z0-9_-]*[a-z0-9])?$`)

	// Versions are the two-component form "3.<minor>".
	versionPattern = regexp.MustCompile(`^3\.([0-9]+)$`)
)

// minMinorVersion is the oldest supported Python minor version.
const minMinorVersion = 9

// InvalidNameError reports a project name that fails the format rules.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: must start with a lowercase letter, contain only lowercase letters, digits, '-' or '_', and end with a letter or digit", e.Name)
}

// InvalidVersionError reports a Python version string that fails the
// format rules.
type InvalidVersionError struct {
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid Python version %q: must be 3.%d or newer (e.g. %q)", e.Version, minMinorVersion, DefaultPythonVersion)
}

// ValidateProjectName checks a project name against the format rules.
// It is pure and performs no I/O.
func ValidateProjectName(name string) error {
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name}
	}
	return nil
}

// ValidateVersion checks a Python version string against the format rules.
// It is pure and performs no I/O.
func ValidateVersion(version string) error {
	m := versionPattern.FindStringSubmatch(version)
	if m == nil {
		return &InvalidVersionError{Version: version}
	}

	minor, err := strconv.Atoi(m[1])
	if err != nil || minor < minMinorVersion {
		return &InvalidVersionError{Version: version}
	}
	return nil
}
