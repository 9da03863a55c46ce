// Package tagterm builds the tagterm command tree.
package tagterm

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/ask"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/completion"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/configcmd"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/convert"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/inspect"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/print"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/scales"
	"github.com/arthur-debert/tagterm/cmd/tagterm/commands/strip"
	topicscmd "github.com/arthur-debert/tagterm/cmd/tagterm/commands/topics"
	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/internal/version"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/arthur-debert/tagterm/pkg/topics"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command bound to the process streams.
func NewRootCmd() *cobra.Command {
	return newRootCmd(env.New(os.Stdin, os.Stdout, os.Stderr))
}

func newRootCmd(e *env.Env) *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		noColor    bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "tagterm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: fmt.Sprintf(MsgVersionDetails, version.Version, version.Commit, version.Date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			err := e.Setup(env.SetupOptions{
				ConfigPath:    configPath,
				Verbosity:     verbosity,
				NoColor:       noColor,
				DefaultConfig: cmd.Annotations[env.AnnotationDefaultConfig] == "true",
			})
			if err != nil {
				return err
			}
			logging.LogCommand(cmd.CommandPath(), args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	rootCmd.SetIn(e.In)
	rootCmd.SetOut(e.Out)
	rootCmd.SetErr(e.Err)
	rootCmd.SetVersionTemplate(MsgVersionTemplate)

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, MsgFlagNoColor)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: MsgGroupCore},
		&cobra.Group{ID: "tools", Title: MsgGroupTools},
		&cobra.Group{ID: "demo", Title: MsgGroupDemo},
		&cobra.Group{ID: "config", Title: MsgGroupConfig},
		&cobra.Group{ID: "misc", Title: MsgGroupMisc},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Topic-based help replaces the default help command
	manager, err := topics.New(TopicFS(), topics.Options{
		Extensions: []string{".md", ".txt"},
		Renderer:   topicRenderer{env: e},
	})
	if err != nil {
		// The topics are embedded, so this only fails on a broken build.
		panic(err)
	}
	manager.Install(rootCmd)
	rootCmd.SetHelpCommandGroupID("misc")

	// Add all commands
	rootCmd.AddCommand(print.NewCommand(e))
	rootCmd.AddCommand(ask.NewCommand(e))
	rootCmd.AddCommand(strip.NewCommand(e))
	rootCmd.AddCommand(inspect.NewCommand(e))
	rootCmd.AddCommand(convert.NewCommand(e))
	rootCmd.AddCommand(scales.NewCommand(e))
	rootCmd.AddCommand(configcmd.NewCommand(e))
	rootCmd.AddCommand(topicscmd.NewCommand(manager))
	rootCmd.AddCommand(completion.NewCommand())

	return rootCmd
}

// ErrorStyle is the style used to report a failed command.
func ErrorStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
}

// FormatError renders err for the terminal behind r.
func FormatError(r *lipgloss.Renderer, err error) string {
	return ErrorStyle(r).Render(MsgErrPrefix + err.Error())
}
