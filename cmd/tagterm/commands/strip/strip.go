package strip

import (
	"fmt"

	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/spf13/cobra"
)

// NewCommand creates the strip command
func NewCommand(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "strip [markup...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := e.Inputs(args)
			if err != nil {
				return err
			}
			for _, input := range inputs {
				if _, err := fmt.Fprintln(e.Out, markup.Strip(input)); err != nil {
					return errors.Wrap(err, errors.ErrRenderWrite, "failed to write output")
				}
			}
			return nil
		},
	}
}
