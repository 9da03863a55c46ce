// Package env carries the runtime state shared by tagterm commands.
package env

import (
	"bufio"
	"io"
	"strings"
	"time"

	"github.com/arthur-debert/tagterm/pkg/config"
	"github.com/arthur-debert/tagterm/pkg/console"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/arthur-debert/tagterm/pkg/prompt"
	"github.com/arthur-debert/tagterm/pkg/render"
	"github.com/arthur-debert/tagterm/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Env holds the streams and settings of one command invocation. Setup must
// run before Console, Prompter or Lipgloss are used.
type Env struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Config  *config.Config
	Profile termenv.Profile

	sleep    func(time.Duration)
	console  *console.Console
	prompter *prompt.Prompter
}

// Option configures an Env
type Option func(*Env)

// WithSleep replaces time.Sleep for pauses.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Env) {
		e.sleep = sleep
	}
}

// New creates an Env over the given streams.
func New(in io.Reader, out, errOut io.Writer, opts ...Option) *Env {
	e := &Env{In: in, Out: out, Err: errOut, Profile: termenv.Ascii}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnnotationDefaultConfig marks commands that must run on the built-in
// configuration, such as those that create or repair the config file.
const AnnotationDefaultConfig = "tagterm/default-config"

// SetupOptions are the global flags.
type SetupOptions struct {
	ConfigPath string
	Verbosity  int
	NoColor    bool
	// DefaultConfig skips the config file, the env file and the environment.
	DefaultConfig bool
}

// Setup loads the configuration, configures logging and picks the color
// profile for Out.
func (e *Env) Setup(opts SetupOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.DefaultConfig {
		cfg, err = config.Defaults()
	} else {
		cfg, err = config.Load(config.LoadOptions{Path: opts.ConfigPath})
	}
	if err != nil {
		return err
	}
	e.Config = cfg

	logging.SetupLogger(logging.Options{
		Verbosity: opts.Verbosity,
		File:      cfg.Log.File,
		Console:   e.Err,
	})

	mode := cfg.Output.Color
	if opts.NoColor {
		mode = config.ColorNever
	}
	profile, err := ui.ResolveProfile(mode, e.Out)
	if err != nil {
		return err
	}
	e.Profile = profile

	logger := logging.GetLogger("env")
	logger.Debug().
		Str("color", mode).
		Int("profile", int(profile)).
		Dur("delay", cfg.Delay.Default).
		Msg("Environment ready")
	return nil
}

// Console returns the markup console writing to Out.
func (e *Env) Console() *console.Console {
	if e.console == nil {
		opts := []console.Option{
			console.WithRenderer(render.New(e.Out, render.WithProfile(e.Profile))),
		}
		if e.Config != nil {
			opts = append(opts, console.WithDefaultDelay(e.Config.Delay.Default))
		}
		if e.sleep != nil {
			opts = append(opts, console.WithSleep(e.sleep))
		}
		e.console = console.New(e.Out, opts...)
	}
	return e.console
}

// Prompter returns the prompt loop reading from In.
func (e *Env) Prompter() *prompt.Prompter {
	if e.prompter == nil {
		var opts []prompt.Option
		if e.Config != nil {
			opts = append(opts, prompt.WithErrorDelay(console.Millis(int(e.Config.Prompt.ErrorDelay/time.Millisecond))))
		}
		e.prompter = prompt.New(e.Console(), e.In, opts...)
	}
	return e.prompter
}

// Lipgloss returns a lipgloss renderer that agrees with Profile.
func (e *Env) Lipgloss() *lipgloss.Renderer {
	return ui.NewLipglossRenderer(e.Out, e.Profile)
}

// Inputs returns the markup to process: the arguments joined by spaces, or
// every line of In when there are no arguments.
func (e *Env) Inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(e.In)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInputRead, "failed to read standard input")
	}
	return lines, nil
}
