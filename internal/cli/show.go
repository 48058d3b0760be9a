package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipedeck/internal/display"
)

// NewShowCommand creates the command printing a single recipe.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <id|name>",
		Short: "Print one recipe by id or name",
		Args:  cobra.MinimumNArgs(1),
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			f, err := display.ParseFormat(format)
			if err != nil {
				return err
			}

			eng := opts.newEngine(nil, opts.cfg.Selection())
			r, err := eng.Lookup(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if f == display.FormatJSON {
				return display.WriteJSON(out, display.NewRecipeDoc(r))
			}
			_, err = fmt.Fprintln(out, opts.theme(out).Card(r))
			return err
		}),
	}

	cmd.Flags().StringVar(&format, "format", string(display.FormatText), "output format (text|json)")
	return cmd
}

