package inspect

import (
	"strings"

	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/inspect"
	"github.com/arthur-debert/tagterm/pkg/markup"
	"github.com/spf13/cobra"
)

// NewCommand creates the inspect command
func NewCommand(e *env.Env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "inspect [markup...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := inspect.ParseFormat(format)
			if err != nil {
				return err
			}
			inputs, err := e.Inputs(args)
			if err != nil {
				return err
			}

			runs := markup.Parse(strings.Join(inputs, "\n"))
			return inspect.Export(e.Out, runs, f, inspect.WithPreview(e.Lipgloss()))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(inspect.FormatTable), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, f := range inspect.Formats() {
			names = append(names, string(f))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
