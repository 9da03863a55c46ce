package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reset = "\x1b[0m"

func TestRenderer_Render(t *testing.T) {
	tests := []struct {
		name    string
		profile termenv.Profile
		input   string
		want    string
	}{
		{
			name:    "plain text",
			profile: termenv.TrueColor,
			input:   "Hi",
			want:    reset + "Hi" + reset,
		},
		{
			name:    "reset then reapply per run",
			profile: termenv.TrueColor,
			input:   "[bold]A[color=red]B[/color][/bold]C",
			want:    reset + "\x1b[1mA" + reset + "\x1b[1;91mB" + reset + "C" + reset,
		},
		{
			name:    "underline with rgb",
			profile: termenv.TrueColor,
			input:   "[ul][color=#FF0000]x",
			want:    reset + "\x1b[4;38;2;255;0;0mx" + reset,
		},
		{
			name:    "dark named color",
			profile: termenv.ANSI,
			input:   "[color=darkblue]x",
			want:    reset + "\x1b[34mx" + reset,
		},
		{
			name:    "indexed color",
			profile: termenv.ANSI256,
			input:   "[color=42]x",
			want:    reset + "\x1b[38;5;42mx" + reset,
		},
		{
			name:    "ascii writes text only",
			profile: termenv.Ascii,
			input:   "[bold]A[color=red]B[/color][/bold]C",
			want:    "ABC",
		},
		{
			name:    "no runs",
			profile: termenv.TrueColor,
			input:   "",
			want:    reset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := New(&buf, WithProfile(tt.profile))

			err := r.Render(markup.Parse(tt.input))

			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestRenderer_DowngradesColors(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, WithProfile(termenv.ANSI256))

	require.NoError(t, r.Render(markup.Parse("[color=#FF0000]x")))

	assert.Contains(t, buf.String(), "38;5;")
	assert.NotContains(t, buf.String(), "38;2;")
}

func TestRenderer_Sequence(t *testing.T) {
	r := New(&bytes.Buffer{})

	assert.Equal(t, "", r.Sequence(markup.Style{}))
	assert.Equal(t, "1;4", r.Sequence(markup.Style{Bold: true, Underline: true}))
	assert.Equal(t, "38;5;200", r.Sequence(markup.Style{Color: markup.Indexed(200)}))
	assert.Equal(t, "37", r.Sequence(markup.Style{Color: markup.Named(markup.Grey)}))
	assert.Equal(t, "97", r.Sequence(markup.Style{Color: markup.Named(markup.White)}))
}

// failingWriter accepts a fixed number of writes and fails afterwards.
type failingWriter struct {
	bytes.Buffer
	allowed int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.allowed <= 0 {
		return 0, fmt.Errorf("broken pipe")
	}
	w.allowed--
	return w.Buffer.Write(p)
}

func TestRenderer_WriteFailure(t *testing.T) {
	w := &failingWriter{allowed: 1}
	r := New(w, WithProfile(termenv.Ascii))

	err := r.Render(markup.Parse("[bold]first[/bold]second"))

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderWrite))
	assert.Contains(t, err.Error(), "broken pipe")
	// runs flushed before the failure stay written
	assert.Equal(t, "first", w.String())
}

func TestTermColor(t *testing.T) {
	assert.Equal(t, termenv.ANSIColor(9), TermColor(markup.Named(markup.Red)))
	assert.Equal(t, termenv.ANSI256Color(42), TermColor(markup.Indexed(42)))
	assert.Equal(t, termenv.RGBColor("#8fcfff"), TermColor(markup.RGB(0x8f, 0xcf, 0xff)))
	assert.Equal(t, termenv.NoColor{}, TermColor(markup.Color{}))
}
