package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks a format from the output's terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders styled output with colors
	FormatTerminal
	// FormatText renders plain text without any styling
	FormatText
)

// String returns the string representation of the format
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

// FormatForColor maps the output.color setting to a format
func FormatForColor(color string) Format {
	switch strings.ToLower(color) {
	case "always":
		return FormatTerminal
	case "never":
		return FormatText
	default:
		return FormatAuto
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Piped or redirected
	if !IsTerminal(output) {
		return FormatText
	}

	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// Resolve turns FormatAuto into a concrete format for output
func Resolve(format Format, output io.Writer) Format {
	if format == FormatAuto {
		return DetectFormat(output)
	}
	return format
}

// IsTerminal reports whether output is an interactive terminal
func IsTerminal(output io.Writer) bool {
	file, ok := output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
