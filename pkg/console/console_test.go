package console

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/render"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConsole returns a console writing plain text and recording pauses.
func newTestConsole(opts ...Option) (*Console, *bytes.Buffer, *[]time.Duration) {
	var buf bytes.Buffer
	var slept []time.Duration
	base := []Option{
		WithRenderer(render.New(&buf, render.WithProfile(termenv.Ascii))),
		WithSleep(func(d time.Duration) { slept = append(slept, d) }),
	}
	return New(&buf, append(base, opts...)...), &buf, &slept
}

func TestConsole_Emit(t *testing.T) {
	tests := []struct {
		name      string
		emit      func(c *Console) error
		wantText  string
		wantSleep []time.Duration
	}{
		{
			name:     "print",
			emit:     func(c *Console) error { return c.Print("[bold]Hi[/bold]") },
			wantText: "Hi",
		},
		{
			name:     "println",
			emit:     func(c *Console) error { return c.Println("[bold]Hi[/bold]") },
			wantText: "Hi\n",
		},
		{
			name:      "print with explicit delay",
			emit:      func(c *Console) error { return c.PrintDelay(400, "x") },
			wantText:  "x",
			wantSleep: []time.Duration{400 * time.Millisecond},
		},
		{
			name:      "println with explicit delay",
			emit:      func(c *Console) error { return c.PrintlnDelay(50, "x") },
			wantText:  "x\n",
			wantSleep: []time.Duration{50 * time.Millisecond},
		},
		{
			name:     "zero delay does not pause",
			emit:     func(c *Console) error { return c.PrintDelay(0, "x") },
			wantText: "x",
		},
		{
			name:      "paced uses the default",
			emit:      func(c *Console) error { return c.Paced("x") },
			wantText:  "x",
			wantSleep: []time.Duration{DefaultPace},
		},
		{
			name:      "pacedln uses the default",
			emit:      func(c *Console) error { return c.Pacedln("x") },
			wantText:  "x\n",
			wantSleep: []time.Duration{DefaultPace},
		},
		{
			name:     "arguments are formatted before parsing",
			emit:     func(c *Console) error { return c.Println("[bold]%d: %s[/bold]", 1, "Celsius") },
			wantText: "1: Celsius\n",
		},
		{
			name:     "no arguments keeps percent signs",
			emit:     func(c *Console) error { return c.Print("100% done") },
			wantText: "100% done",
		},
		{
			name:     "markup in arguments is interpreted",
			emit:     func(c *Console) error { return c.Print("%s", "[color=red]err") },
			wantText: "err",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, buf, slept := newTestConsole()

			require.NoError(t, tt.emit(c))

			assert.Equal(t, tt.wantText, buf.String())
			if tt.wantSleep == nil {
				assert.Empty(t, *slept)
			} else {
				assert.Equal(t, tt.wantSleep, *slept)
			}
		})
	}
}

func TestConsole_DefaultDelayOption(t *testing.T) {
	c, _, slept := newTestConsole(WithDefaultDelay(75 * time.Millisecond))

	require.NoError(t, c.Paced("x"))
	c.Pause(DefaultDelay)
	c.Pause(NoDelay)

	assert.Equal(t, 75*time.Millisecond, c.DefaultPace())
	assert.Equal(t, []time.Duration{75 * time.Millisecond, 75 * time.Millisecond}, *slept)
}

func TestConsole_NewlineAfterReset(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf,
		WithRenderer(render.New(&buf, render.WithProfile(termenv.TrueColor))),
		WithSleep(func(time.Duration) {}),
	)

	require.NoError(t, c.Println("[bold]x"))

	assert.Equal(t, "\x1b[0m\x1b[1mx\x1b[0m\n", buf.String())
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("closed")
}

func TestConsole_WriteFailure(t *testing.T) {
	paused := false
	c := New(brokenWriter{}, WithSleep(func(time.Duration) { paused = true }))

	err := c.Pacedln("x")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenderWrite))
	assert.False(t, paused, "no pause after a failed write")
}

func TestDelay(t *testing.T) {
	def := 200 * time.Millisecond

	assert.Equal(t, time.Duration(0), NoDelay.Duration(def))
	assert.Equal(t, def, DefaultDelay.Duration(def))
	assert.Equal(t, 30*time.Millisecond, Millis(30).Duration(def))
	assert.Equal(t, NoDelay, Millis(0))
	assert.Equal(t, NoDelay, Millis(-5))

	assert.Equal(t, "none", NoDelay.String())
	assert.Equal(t, "default", DefaultDelay.String())
	assert.Equal(t, "30ms", Millis(30).String())
}
