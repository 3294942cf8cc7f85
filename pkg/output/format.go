// Package output decides how results and errors are presented: styled
// terminal output or plain text, picked from the environment and the
// destination's capabilities.
package output

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the output rendering mode.
type Format int

const (
	// FormatAuto picks a format from the terminal's capabilities.
	FormatAuto Format = iota
	// FormatTerminal renders styled output with colors.
	FormatTerminal
	// FormatText renders plain text without styling.
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectFormat determines the output format for the given destination.
// NO_COLOR, pipes and color-less terminals all degrade to plain text.
func DetectFormat(out *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return FormatText
	}

	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
