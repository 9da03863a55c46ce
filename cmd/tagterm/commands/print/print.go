package print

import (
	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/console"
	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/spf13/cobra"
)

// NewCommand creates the print command
func NewCommand(e *env.Env) *cobra.Command {
	var (
		noNewline bool
		delayMs   int
		paced     bool
	)

	cmd := &cobra.Command{
		Use:     "print [markup...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := e.Inputs(args)
			if err != nil {
				return err
			}

			opts := console.Options{Newline: !noNewline, Delay: delay(delayMs, paced)}
			logger := logging.GetLogger("cmd.print")
			logger.Debug().
				Int("lines", len(inputs)).
				Str("delay", opts.Delay.String()).
				Msg("Printing markup")

			c := e.Console()
			for _, input := range inputs {
				if err := c.Emit(opts, input); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, MsgFlagNoNewline)
	cmd.Flags().IntVar(&delayMs, "delay", 0, MsgFlagDelay)
	cmd.Flags().BoolVar(&paced, "paced", false, MsgFlagPaced)

	return cmd
}

// delay picks the pause: an explicit --delay wins over --paced.
func delay(ms int, paced bool) console.Delay {
	if ms > 0 {
		return console.Millis(ms)
	}
	if paced {
		return console.DefaultDelay
	}
	return console.NoDelay
}
