package render

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestSprint(t *testing.T) {
	runs := markup.Parse("[bold]Hello[/bold], [color=#8FCFFF]world[/color]!")

	t.Run("ascii profile drops styling", func(t *testing.T) {
		r := lipgloss.NewRenderer(&bytes.Buffer{})
		r.SetColorProfile(termenv.Ascii)

		assert.Equal(t, "Hello, world!", Sprint(r, runs))
	})

	t.Run("true color profile styles runs", func(t *testing.T) {
		r := lipgloss.NewRenderer(&bytes.Buffer{})
		r.SetColorProfile(termenv.TrueColor)

		out := Sprint(r, runs)
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "Hello")
		assert.Contains(t, out, "world")
		assert.Contains(t, out, ", ")
	})
}

func TestLipglossStyle(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})

	st := LipglossStyle(r, markup.Style{Bold: true, Underline: true, Color: markup.Named(markup.Red)})
	assert.True(t, st.GetBold())
	assert.True(t, st.GetUnderline())
	assert.Equal(t, lipgloss.Color("9"), st.GetForeground())

	st = LipglossStyle(r, markup.Style{Color: markup.RGB(255, 0, 0)})
	assert.False(t, st.GetBold())
	assert.Equal(t, lipgloss.Color("#ff0000"), st.GetForeground())
}
