// Package color provides centralized color profile detection for sysfetch.
//
// It implements the NO_COLOR specification (https://no-color.org/) and
// pipe/redirect detection for the destination writer. When color is
// disabled, lipgloss is set to the Ascii profile so all styled renders
// produce plain text.
package color

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// Disabled returns true if color output to w should be suppressed.
// This happens when:
//   - The NO_COLOR environment variable is set (any value, per https://no-color.org/)
//   - w is not a terminal (pipe, redirect, or an in-memory buffer)
func Disabled(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}

	f, ok := w.(fder)
	if !ok {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// Apply configures the global lipgloss renderer for output to w.
// Returns true if color is enabled, false if disabled.
func Apply(w io.Writer) bool {
	if Disabled(w) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return false
	}
	return true
}
