package scales

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/tagterm/cmd/tagterm/internal/env"
	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/thermo"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// NewCommand creates the scales command
func NewCommand(e *env.Env) *cobra.Command {
	return &cobra.Command{
		Use:     "scales",
		Short:   MsgShort,
		Long:    MsgLong,
		GroupID: "demo",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := Table(e.Profile)
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to render scales")
			}
			if _, err := fmt.Fprintln(e.Out, table); err != nil {
				return errors.Wrap(err, errors.ErrRenderWrite, "failed to write scales")
			}
			return nil
		},
	}
}

// Table renders the scale table. Styling is removed for the Ascii profile.
func Table(profile termenv.Profile) (string, error) {
	data := pterm.TableData{{HeaderIndex, HeaderName, HeaderSymbol, HeaderBoiling}}
	for i, s := range thermo.Scales() {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			s.Name(),
			s.Symbol(),
			strconv.FormatFloat(thermo.Convert(100, thermo.Celsius, s), 'f', 2, 64),
		})
	}

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgCyan, pterm.Bold)).
		WithData(data).
		Srender()
	if err != nil {
		return "", err
	}
	if profile == termenv.Ascii {
		out = pterm.RemoveColorFromString(out)
	}
	return out, nil
}
