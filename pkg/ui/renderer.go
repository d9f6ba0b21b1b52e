// Package ui renders the outcome of an ayarla run for people.
// It supports styled terminal output and plain text.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/kdrblkbs/ayarla/pkg/types"
	"github.com/kdrblkbs/ayarla/pkg/ui/styles"
)

// Status line icons
const (
	SuccessIcon = "✓"
	WarningIcon = "!"
	FailureIcon = "✗"
)

// Renderer writes run outcomes to an output
type Renderer struct {
	output io.Writer
	format Format
	style  *lipgloss.Renderer
}

// NewRenderer creates a renderer for output. FormatAuto is resolved
// against the output's terminal capabilities.
func NewRenderer(format Format, output io.Writer) *Renderer {
	format = Resolve(format, output)

	style := lipgloss.NewRenderer(output)
	if format == FormatTerminal {
		if style.ColorProfile() == termenv.Ascii {
			style.SetColorProfile(termenv.ANSI256)
		}
	} else {
		style.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{output: output, format: format, style: style}
}

// RenderStatus writes the final status line for an installation
func (r *Renderer) RenderStatus(status types.Status, settingsDir string) error {
	var line string
	switch status {
	case types.StatusOk:
		line = fmt.Sprintf("%s %s %s",
			r.styled("Success", SuccessIcon),
			"Installed everything from",
			r.styled("FilePath", settingsDir))
	case types.StatusWarn:
		line = fmt.Sprintf("%s %s %s %s",
			r.styled("Warning", WarningIcon),
			"Some manifest sources are missing in",
			r.styled("FilePath", settingsDir),
			r.styled("Muted", "(run with -v to see which)"))
	default:
		line = fmt.Sprintf("status %s", status)
	}

	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderError writes err as a failure line
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styled("Error", fmt.Sprintf("%s Error: %v", FailureIcon, err)))
	return werr
}

// Bold returns s in bold when rendering for a terminal
func (r *Renderer) Bold(s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func (r *Renderer) styled(name, s string) string {
	if r.format != FormatTerminal {
		return s
	}
	return styles.GetStyle(name).Renderer(r.style).Render(s)
}
