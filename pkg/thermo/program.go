package thermo

import (
	"fmt"

	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/arthur-debert/tagterm/pkg/prompt"
)

// Messages shown by the conversion program
const (
	MsgAvailable    = "[color=#8FCFFF]Available scales:"
	MsgScaleLine    = "[color=darkblue]%d: [bold][color=blue]%s[/color][/bold] ([bold][color=blue]%s[/color][/bold])[/color]"
	MsgSelectInput  = "[color=#8FCFFF]Select input scale: "
	MsgSelectOutput = "[color=#8FCFFF]Select output scale: "
	MsgEnterValue   = "[color=#8FCFFF]Enter temperature in [bold][color=blue]%s (%s)[/color][/bold]: "
	MsgInvalidScale = "[color=red][bold]Please enter a valid scale (number, name, or symbol)."
	MsgRepeatScale  = "[color=red][bold]Invalid input; cannot repeat selection."
	MsgResult       = "[color=#8FCFFF][bold][color=blue]%.2f%s (%s)[/color][/bold] is equal to [bold][color=blue]%.2f%s (%s)[/color][/bold]."
)

const (
	listDelayMs   = 200
	errorDelayMs  = 400
	resultDelayMs = 400
)

// Program is the interactive temperature converter.
type Program struct {
	prompt *prompt.Prompter
}

// NewProgram creates a Program talking through p.
func NewProgram(p *prompt.Prompter) *Program {
	return &Program{prompt: p}
}

// Run lists the scales, asks for an input scale, a different output scale
// and a temperature, then prints the conversion.
func (p *Program) Run() error {
	logger := logging.GetLogger("thermo")
	done := logging.LogOperationStart(logger, "convert")
	defer done()

	c := p.prompt.Console()

	if err := c.PrintlnDelay(listDelayMs, MsgAvailable); err != nil {
		return err
	}
	for i, s := range Scales() {
		if err := c.PrintlnDelay(listDelayMs, MsgScaleLine, i+1, s.Name(), s.Symbol()); err != nil {
			return err
		}
	}

	in, err := p.chooseScale(MsgSelectInput, nil)
	if err != nil {
		return err
	}
	out, err := p.chooseScale(MsgSelectOutput, &in)
	if err != nil {
		return err
	}

	value, err := prompt.Read(p.prompt, prompt.Float64, fmt.Sprintf(MsgEnterValue, in.Name(), in.Symbol()))
	if err != nil {
		return err
	}

	converted := Convert(value, in, out)
	logger.Info().
		Str("from", in.Name()).
		Str("to", out.Name()).
		Float64("value", value).
		Float64("converted", converted).
		Msg("Converted temperature")

	return c.PrintlnDelay(resultDelayMs, MsgResult,
		value, in.Symbol(), in.Name(),
		converted, out.Symbol(), out.Name())
}

// chooseScale prompts until a scale other than disallow is entered.
func (p *Program) chooseScale(label string, disallow *Scale) (Scale, error) {
	c := p.prompt.Console()
	for {
		input, err := prompt.Read(p.prompt, prompt.String, label)
		if err != nil {
			return 0, err
		}

		s, ok := Resolve(input)
		if !ok {
			if err := c.PrintlnDelay(errorDelayMs, MsgInvalidScale); err != nil {
				return 0, err
			}
			continue
		}
		if disallow != nil && s == *disallow {
			if err := c.PrintlnDelay(errorDelayMs, MsgRepeatScale); err != nil {
				return 0, err
			}
			continue
		}
		return s, nil
	}
}
