package configcmd

import (
	"fmt"

	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/config"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/paths"
	"github.com/spf13/cobra"
)

// NewCommand creates the config command and its subcommands
func NewCommand(e *env.Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "config",
	}
	cmd.AddCommand(newInitCmd(e))
	cmd.AddCommand(newShowCmd(e))
	return cmd
}

func newInitCmd(e *env.Env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       MsgInitShort,
		Long:        MsgInitLong,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{env.AnnotationDefaultConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = paths.New().ConfigFile()
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(e.Out, MsgWritten, path)
			return errors.Wrap(err, errors.ErrRenderWrite, "failed to write output")
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, MsgFlagForce)
	return cmd
}

func newShowCmd(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: MsgShowShort,
		Long:  MsgShowLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(e.Config)
			if err != nil {
				return err
			}
			_, err = e.Out.Write(data)
			return errors.Wrap(err, errors.ErrRenderWrite, "failed to write output")
		},
	}
}
