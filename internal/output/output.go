// Package output provides styled terminal output for the pydev CLI.
//
// Diagnostics (Error, Info, Verbose) go to stderr so scripted callers can
// consume stdout; Success and Step write the user-facing result and next
// steps to stdout.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool

	// Overridable for tests.
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose output.
// Called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// SetWriters redirects output streams (for tests). Pass nil to keep the
// current writer.
func SetWriters(out, err io.Writer) {
	if out != nil {
		stdout = out
	}
	if err != nil {
		stderr = err
	}
}

// Success prints a completed-operation message in green to stdout.
func Success(msg string) {
	fmt.Fprintln(stdout, successStyle.Render("✨ "+msg))
}

// Step prints an indented next-step line in gray to stdout.
func Step(msg string) {
	fmt.Fprintln(stdout, stepStyle.Render("   "+msg))
}

// Error prints a failure message in red to stderr.
func Error(msg string) {
	fmt.Fprintln(stderr, errorStyle.Render("❌ "+msg))
}

// Info prints a status message in cyan to stderr.
func Info(msg string) {
	fmt.Fprintln(stderr, infoStyle.Render("ℹ️  "+msg))
}

// Verbose prints a debug message to stderr when verbose mode is enabled.
func Verbose(msg string) {
	if verboseMode {
		fmt.Fprintln(stderr, stepStyle.Render("🔍 "+msg))
	}
}
