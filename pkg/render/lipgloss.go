package render

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/charmbracelet/lipgloss"
)

// LipglossStyle builds the lipgloss equivalent of a markup style on r.
func LipglossStyle(r *lipgloss.Renderer, s markup.Style) lipgloss.Style {
	st := r.NewStyle()
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Color.IsSet() {
		st = st.Foreground(lipglossColor(s.Color))
	}
	return st
}

// Sprint renders runs into a string instead of streaming them. The
// renderer's color profile decides which escape sequences appear.
func Sprint(r *lipgloss.Renderer, runs []markup.Run) string {
	var b strings.Builder
	for _, run := range runs {
		if run.Style.IsPlain() {
			b.WriteString(run.Text)
			continue
		}
		b.WriteString(LipglossStyle(r, run.Style).Render(run.Text))
	}
	return b.String()
}

func lipglossColor(c markup.Color) lipgloss.TerminalColor {
	switch c.Kind {
	case markup.ColorNamed:
		return lipgloss.Color(strconv.Itoa(int(c.Name.ANSI())))
	case markup.ColorIndexed:
		return lipgloss.Color(strconv.Itoa(int(c.Index)))
	case markup.ColorRGB:
		return lipgloss.Color(c.Hex())
	default:
		return lipgloss.NoColor{}
	}
}
