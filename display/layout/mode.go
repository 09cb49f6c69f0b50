// Package layout provides the geometry behind the responsive dashboard:
// rectangles, a constraint-based region splitter, and the breakpoints that
// pick a layout mode from the terminal size.
//
// Three modes are supported:
//   - Compact: height < 20 or width < 60. One consolidated text panel.
//   - Narrow: width < 100. Art above a system/hardware stack.
//   - Wide: everything else. Art on the left 40%, info stack on the right.
package layout

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
)

// Mode is one of the discrete layout strategies.
type Mode int

const (
	// ModeCompact renders a single text panel with one-line chrome.
	ModeCompact Mode = iota
	// ModeNarrow stacks the art panel above the info panels.
	ModeNarrow
	// ModeWide places the art panel beside the info panels.
	ModeWide
)

// String returns the human-readable name of the layout mode.
func (m Mode) String() string {
	switch m {
	case ModeCompact:
		return "compact"
	case ModeNarrow:
		return "narrow"
	case ModeWide:
		return "wide"
	default:
		return "unknown"
	}
}

// Breakpoints. A dimension equal to a threshold selects the larger mode.
const (
	CompactMinHeight = 20
	CompactMinWidth  = 60
	WideMinWidth     = 100
)

// DetectMode picks the layout mode for a terminal of the given size.
func DetectMode(width, height int) Mode {
	switch {
	case height < CompactMinHeight || width < CompactMinWidth:
		return ModeCompact
	case width < WideMinWidth:
		return ModeNarrow
	default:
		return ModeWide
	}
}

// DetectTerminalSize returns the current terminal dimensions.
// It tries TTY detection first, then environment variables, then defaults.
func DetectTerminalSize() (width, height int) {
	// Try TTY detection first using stdout file descriptor.
	w, h, err := term.GetSize(os.Stdout.Fd())
	if err == nil && w > 0 && h > 0 {
		return w, h
	}

	// Try environment variables.
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			width = w
		}
	}
	if lines := os.Getenv("LINES"); lines != "" {
		if h, err := strconv.Atoi(lines); err == nil && h > 0 {
			height = h
		}
	}

	// Defaults.
	if width == 0 {
		width = 80
	}
	if height == 0 {
		height = 24
	}
	return width, height
}
