// Package render paints styled runs onto a terminal.
//
// Every run starts from a clean slate: the renderer resets all attributes,
// applies the run's bold, underline and foreground color, writes the text
// and flushes. A final reset after the last run leaves the terminal in its
// default state. Escape sequences are built with termenv, whose color
// profile downgrades 24-bit and 256-color values to what the terminal
// supports. With the Ascii profile only the text is written.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/muesli/termenv"
)

// Renderer writes runs to an output stream.
type Renderer struct {
	out     *bufio.Writer
	profile termenv.Profile
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithProfile sets the color profile used to encode colors.
// The default is termenv.TrueColor.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) {
		r.profile = p
	}
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:     bufio.NewWriter(w),
		profile: termenv.TrueColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the color profile in use.
func (r *Renderer) Profile() termenv.Profile {
	return r.profile
}

// Render writes runs in order. Each run is flushed before the next one
// starts, so a write failure leaves earlier runs visible.
func (r *Renderer) Render(runs []markup.Run) error {
	for i, run := range runs {
		if r.profile != termenv.Ascii {
			r.out.WriteString(termenv.CSI + termenv.ResetSeq + "m")
			if seq := r.Sequence(run.Style); seq != "" {
				r.out.WriteString(termenv.CSI + seq + "m")
			}
		}
		r.out.WriteString(run.Text)
		if err := r.out.Flush(); err != nil {
			return r.writeError(err, i)
		}
	}

	if r.profile != termenv.Ascii {
		r.out.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}
	if err := r.out.Flush(); err != nil {
		return r.writeError(err, len(runs))
	}
	return nil
}

// Sequence returns the SGR parameters for style under the renderer's
// profile, without the CSI prefix and final "m". A plain style yields "".
func (r *Renderer) Sequence(style markup.Style) string {
	var params []string
	if style.Bold {
		params = append(params, termenv.BoldSeq)
	}
	if style.Underline {
		params = append(params, termenv.UnderlineSeq)
	}
	if style.Color.IsSet() {
		if c := r.profile.Convert(TermColor(style.Color)); c != nil {
			if seq := c.Sequence(false); seq != "" {
				params = append(params, seq)
			}
		}
	}
	return strings.Join(params, ";")
}

func (r *Renderer) writeError(err error, run int) error {
	logger := logging.GetLogger("render")
	logger.Error().Err(err).Int("run", run).Msg("Terminal write failed")
	return errors.Wrapf(err, errors.ErrRenderWrite, "failed to write run %d", run)
}

// TermColor maps a markup color onto its termenv equivalent. Named colors
// become the sixteen basic ANSI colors, indexed colors the 256-color
// palette and RGB colors true color.
func TermColor(c markup.Color) termenv.Color {
	switch c.Kind {
	case markup.ColorNamed:
		return termenv.ANSIColor(c.Name.ANSI())
	case markup.ColorIndexed:
		return termenv.ANSI256Color(c.Index)
	case markup.ColorRGB:
		return termenv.RGBColor(c.Hex())
	default:
		return termenv.NoColor{}
	}
}

// Newline writes a line break and flushes it.
func (r *Renderer) Newline() error {
	r.out.WriteByte('\n')
	if err := r.out.Flush(); err != nil {
		logger := logging.GetLogger("render")
		logger.Error().Err(err).Msg("Terminal write failed")
		return errors.Wrap(err, errors.ErrRenderWrite, "failed to write newline")
	}
	return nil
}
