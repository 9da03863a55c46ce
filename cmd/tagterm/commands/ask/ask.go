package ask

import (
	"fmt"
	"math"
	"strings"

	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/prompt"
	"github.com/spf13/cobra"
)

// Value types accepted by --type
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeFloat   = "float"
	TypeBool    = "bool"
	TypeConfirm = "confirm"
)

type options struct {
	kind     string
	prompt   string
	min, max float64
	hasMin   bool
	hasMax   bool
	notEmpty bool
	oneOf    []string
}

// NewCommand creates the ask command
func NewCommand(e *env.Env) *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:     "ask",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.hasMin = cmd.Flags().Changed("min")
			o.hasMax = cmd.Flags().Changed("max")
			if o.kind == TypeConfirm && !cmd.Flags().Changed("prompt") {
				o.prompt = MsgConfirmPrompt
			}
			if err := o.validate(); err != nil {
				return err
			}

			value, err := ask(e.Prompter(), o)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(e.Out, value); err != nil {
				return errors.Wrap(err, errors.ErrRenderWrite, "failed to write answer")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&o.kind, "type", "t", TypeString, MsgFlagType)
	cmd.Flags().StringVarP(&o.prompt, "prompt", "p", "> ", MsgFlagPrompt)
	cmd.Flags().Float64Var(&o.min, "min", 0, MsgFlagMin)
	cmd.Flags().Float64Var(&o.max, "max", 0, MsgFlagMax)
	cmd.Flags().BoolVar(&o.notEmpty, "not-empty", false, MsgFlagNotEmpty)
	cmd.Flags().StringSliceVar(&o.oneOf, "one-of", nil, MsgFlagOneOf)
	_ = cmd.RegisterFlagCompletionFunc("type", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{TypeString, TypeInt, TypeFloat, TypeBool, TypeConfirm}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (o options) validate() error {
	numeric := o.kind == TypeInt || o.kind == TypeFloat
	switch {
	case o.kind != TypeString && !numeric && o.kind != TypeBool && o.kind != TypeConfirm:
		return errors.Newf(errors.ErrInvalidInput, MsgBadType, o.kind).WithDetail("type", o.kind)
	case o.hasMin && !numeric:
		return errors.Newf(errors.ErrInvalidInput, MsgNotTyped, "min", "int or float")
	case o.hasMax && !numeric:
		return errors.Newf(errors.ErrInvalidInput, MsgNotTyped, "max", "int or float")
	case o.notEmpty && o.kind != TypeString:
		return errors.Newf(errors.ErrInvalidInput, MsgNotTyped, "not-empty", TypeString)
	case len(o.oneOf) > 0 && o.kind != TypeString:
		return errors.Newf(errors.ErrInvalidInput, MsgNotTyped, "one-of", TypeString)
	}
	return nil
}

func ask(p *prompt.Prompter, o options) (interface{}, error) {
	switch o.kind {
	case TypeInt:
		return prompt.Read(p, prompt.Int, o.prompt, bounds(o, ceilInt, floorInt)...)
	case TypeFloat:
		return prompt.Read(p, prompt.Float64, o.prompt, bounds(o, identity, identity)...)
	case TypeBool:
		return prompt.Read(p, prompt.Bool, o.prompt)
	case TypeConfirm:
		return prompt.Confirm(p, o.prompt, false)
	default:
		return prompt.Read(p, prompt.String, o.prompt, stringChecks(o)...)
	}
}

// bounds builds the range checks. Validators passed to prompt.Read are
// alternatives, so a closed range becomes a single combined validator.
// lower and upper convert the flag values into the value type.
func bounds[T int | float64](o options, lower, upper func(float64) T) []prompt.Validator[T] {
	switch {
	case o.hasMin && o.hasMax:
		lo, hi := lower(o.min), upper(o.max)
		return []prompt.Validator[T]{
			prompt.All(fmt.Sprintf(MsgRange, lo, hi), prompt.Min(lo), prompt.Max(hi)),
		}
	case o.hasMin:
		return []prompt.Validator[T]{prompt.Min(lower(o.min))}
	case o.hasMax:
		return []prompt.Validator[T]{prompt.Max(upper(o.max))}
	}
	return nil
}

// Integer bounds round inward so fractional limits keep their meaning.
func ceilInt(f float64) int  { return int(math.Ceil(f)) }
func floorInt(f float64) int { return int(math.Floor(f)) }

func identity(f float64) float64 { return f }

func stringChecks(o options) []prompt.Validator[string] {
	var checks []prompt.Validator[string]
	if o.notEmpty {
		checks = append(checks, prompt.NotEmpty())
	}
	if len(o.oneOf) > 0 {
		choices := make([]string, 0, len(o.oneOf))
		for _, choice := range o.oneOf {
			choices = append(choices, strings.TrimSpace(choice))
		}
		checks = append(checks, prompt.OneOf(choices...))
	}
	if len(checks) > 1 {
		return []prompt.Validator[string]{prompt.All(checks[len(checks)-1].Message, checks...)}
	}
	return checks
}
