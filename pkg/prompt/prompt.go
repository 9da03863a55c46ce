// Package prompt reads typed, validated values from a line-oriented input.
//
// Read renders a markup prompt, reads one line, trims it and parses it
// into the requested kind. Input that does not parse is reported and the
// prompt is shown again. Parsed values go through the validators in
// order: the first validator that does not reject the value accepts it.
// A rejecting validator prints its message and hands the value to the
// next one. When every validator rejects, the prompt is shown again.
// With no validators any parsed value is accepted.
//
// Validators are therefore alternatives. To require several conditions
// at once, combine them with All.
package prompt

import (
	"bufio"
	"io"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/console"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/logging"
)

// TypeErrorMessage is shown when input does not parse into the kind.
const TypeErrorMessage = "[color=red][bold]Incorrect input type. Expected input type: [/bold]%s"

// Validator rejects values with a message.
type Validator[T any] struct {
	// Reject returns true when the value is not acceptable
	Reject  func(T) bool
	Message string
}

// Prompter couples a console with an input stream.
type Prompter struct {
	console    *console.Console
	in         *bufio.Reader
	errorDelay console.Delay
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithErrorDelay sets the pause after each error message.
func WithErrorDelay(d console.Delay) Option {
	return func(p *Prompter) {
		p.errorDelay = d
	}
}

// New creates a Prompter rendering to c and reading lines from in.
func New(c *console.Console, in io.Reader, opts ...Option) *Prompter {
	p := &Prompter{
		console:    c,
		in:         bufio.NewReader(in),
		errorDelay: console.NoDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Console returns the console used for prompts and messages.
func (p *Prompter) Console() *console.Console {
	return p.console
}

// Read prompts until a value of kind is accepted.
//
// It fails only when the input ends, cannot be read or the console cannot
// be written to.
func Read[T any](p *Prompter, kind Kind[T], prompt string, validators ...Validator[T]) (T, error) {
	var zero T
	logger := logging.GetLogger("prompt")

	for attempt := 1; ; attempt++ {
		if err := p.console.Print(prompt); err != nil {
			return zero, err
		}

		line, err := p.readLine()
		if err != nil {
			return zero, err
		}

		value, parseErr := kind.Parse(line)
		if parseErr != nil {
			logger.Debug().
				Str("kind", kind.Name).
				Str("input", line).
				Int("attempt", attempt).
				Msg("Input did not parse")
			if err := p.fail(TypeErrorMessage, kind.Name); err != nil {
				return zero, err
			}
			continue
		}

		if len(validators) == 0 {
			return value, nil
		}

		for i, v := range validators {
			if v.Reject == nil || !v.Reject(value) {
				return value, nil
			}
			logger.Debug().
				Int("validator", i).
				Str("input", line).
				Int("attempt", attempt).
				Msg("Validator rejected input")
			if err := p.fail(v.Message); err != nil {
				return zero, err
			}
		}
	}
}

// Confirm asks a yes/no question. An empty answer selects def.
func Confirm(p *Prompter, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	kind := Kind[bool]{
		Name: YesNo.Name,
		Parse: func(s string) (bool, error) {
			if s == "" {
				return def, nil
			}
			return YesNo.Parse(s)
		},
	}
	return Read(p, kind, question+" "+hint+": ")
}

func (p *Prompter) fail(format string, args ...interface{}) error {
	return p.console.Emit(console.Options{Newline: true, Delay: p.errorDelay}, format, args...)
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return "", errors.Wrap(err, errors.ErrInputRead, "failed to read input")
		}
		if line == "" {
			return "", errors.New(errors.ErrInputClosed, "input closed before a value was accepted")
		}
	}
	return strings.TrimSpace(line), nil
}
