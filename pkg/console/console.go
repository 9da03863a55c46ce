// Package console formats markup, renders it and paces the output.
//
// Each emission takes a format string, expands it with fmt when arguments
// are given, parses the markup into runs and paints them. An optional
// newline follows the runs and an optional delay follows the newline:
//
//	c := console.New(os.Stdout)
//	c.Println("[bold]Hello[/bold], %s", name)           // no pause
//	c.PrintlnDelay(400, "[color=red]Invalid input")     // 400 ms pause
//	c.Pacedln("[color=#8FCFFF]Available scales:")      // default pause
//
// Without arguments the format string is used as is, so a literal % in
// markup-only text needs no escaping.
package console

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/arthur-debert/tagterm/pkg/render"
)

// Options controls a single emission.
type Options struct {
	Newline bool
	Delay   Delay
}

// Console renders markup to one output stream.
type Console struct {
	mu           sync.Mutex
	renderer     *render.Renderer
	defaultDelay time.Duration
	sleep        func(time.Duration)
}

// Option configures a Console.
type Option func(*Console)

// WithRenderer replaces the renderer built from the output writer.
func WithRenderer(r *render.Renderer) Option {
	return func(c *Console) {
		c.renderer = r
	}
}

// WithDefaultDelay sets the pause used by DefaultDelay.
func WithDefaultDelay(d time.Duration) Option {
	return func(c *Console) {
		c.defaultDelay = d
	}
}

// WithSleep replaces time.Sleep, mostly for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Console) {
		c.sleep = sleep
	}
}

// New creates a Console writing to out.
func New(out io.Writer, opts ...Option) *Console {
	c := &Console{
		defaultDelay: DefaultPace,
		sleep:        time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = render.New(out)
	}
	return c
}

// DefaultPace returns the pause used by DefaultDelay.
func (c *Console) DefaultPace() time.Duration {
	return c.defaultDelay
}

// Emit formats, renders and paces one piece of markup.
func (c *Console) Emit(opts Options, format string, args ...interface{}) error {
	text := format
	if len(args) > 0 {
		text = fmt.Sprintf(format, args...)
	}
	runs := markup.Parse(text)

	logger := logging.GetLogger("console")
	logger.Trace().
		Int("runs", len(runs)).
		Bool("newline", opts.Newline).
		Str("delay", opts.Delay.String()).
		Msg("Emitting markup")

	if err := c.write(runs, opts.Newline); err != nil {
		return err
	}
	c.Pause(opts.Delay)
	return nil
}

func (c *Console) write(runs []markup.Run, newline bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.renderer.Render(runs); err != nil {
		return err
	}
	if newline {
		return c.renderer.Newline()
	}
	return nil
}

// Pause blocks for the given delay.
func (c *Console) Pause(d Delay) {
	if dur := d.Duration(c.defaultDelay); dur > 0 {
		c.sleep(dur)
	}
}

// Print renders markup without a newline or pause.
func (c *Console) Print(format string, args ...interface{}) error {
	return c.Emit(Options{}, format, args...)
}

// Println renders markup followed by a newline.
func (c *Console) Println(format string, args ...interface{}) error {
	return c.Emit(Options{Newline: true}, format, args...)
}

// PrintDelay renders markup and pauses for ms milliseconds.
func (c *Console) PrintDelay(ms int, format string, args ...interface{}) error {
	return c.Emit(Options{Delay: Millis(ms)}, format, args...)
}

// PrintlnDelay renders markup and a newline, then pauses for ms milliseconds.
func (c *Console) PrintlnDelay(ms int, format string, args ...interface{}) error {
	return c.Emit(Options{Newline: true, Delay: Millis(ms)}, format, args...)
}

// Paced renders markup and pauses for the default delay.
func (c *Console) Paced(format string, args ...interface{}) error {
	return c.Emit(Options{Delay: DefaultDelay}, format, args...)
}

// Pacedln renders markup and a newline, then pauses for the default delay.
func (c *Console) Pacedln(format string, args ...interface{}) error {
	return c.Emit(Options{Newline: true, Delay: DefaultDelay}, format, args...)
}
