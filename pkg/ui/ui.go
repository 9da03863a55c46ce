// Package ui decides how styled output reaches the user: whether escape
// sequences are written at all and which color profile encodes them.
package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Profile returns the termenv color profile for format on output.
//
// FormatText yields termenv.Ascii. FormatTerminal uses the best profile
// the environment advertises and falls back to the basic ANSI colors when
// it advertises none. FormatAuto detects the format first; writers that
// are not files are treated as text.
func Profile(format Format, output io.Writer) termenv.Profile {
	switch format {
	case FormatText:
		return termenv.Ascii
	case FormatTerminal:
		p := termenv.NewOutput(output, termenv.WithTTY(true)).ColorProfile()
		if p == termenv.Ascii {
			return termenv.ANSI
		}
		return p
	default:
		if file, ok := output.(*os.File); ok {
			return Profile(DetectFormat(file), output)
		}
		return termenv.Ascii
	}
}

// ResolveProfile parses a color mode and picks the profile for output.
func ResolveProfile(mode string, output io.Writer) (termenv.Profile, error) {
	format, err := ParseColorMode(mode)
	if err != nil {
		return termenv.Ascii, err
	}
	return Profile(format, output), nil
}

// NewLipglossRenderer creates a lipgloss renderer bound to output and
// forced to profile, so string-building helpers agree with the streaming
// renderer.
func NewLipglossRenderer(output io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(output)
	r.SetColorProfile(profile)
	return r
}
