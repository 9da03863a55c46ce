package convert

import (
	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/thermo"
	"github.com/spf13/cobra"
)

// NewCommand creates the convert command
func NewCommand(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "convert",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "demo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return thermo.NewProgram(e.Prompter()).Run()
		},
	}
}
