package topics

import (
	"github.com/arthur-debert/tagterm/pkg/topics"
	"github.com/spf13/cobra"
)

// NewCommand creates the topics command, a shortcut for "help topics".
func NewCommand(m *topics.Manager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			m.WriteIndex(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}
