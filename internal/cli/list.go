package cli

import (
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipedeck/internal/display"
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/engine"
)

type listOptions struct {
	filter string
	sort   string
	format string
}

// NewListCommand creates the one-shot listing command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the recipes matching a filter, in the chosen order",
		Example: `  recipedeck list --filter easy --sort name
  recipedeck list --filter quick --sort time --format json`,
		Args: cobra.NoArgs,
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			format, err := display.ParseFormat(lo.format)
			if err != nil {
				return err
			}

			// Flags arrive as selection events on top of the configured start.
			sel := opts.cfg.Selection()
			if cmd.Flags().Changed("filter") {
				sel, _ = engine.Reduce(sel, domain.FilterSelected(domain.Filter(lo.filter)))
			}
			if cmd.Flags().Changed("sort") {
				sel, _ = engine.Reduce(sel, domain.SortSelected(domain.Sort(lo.sort)))
			}

			renderer := display.NewWriterRenderer(cmd.OutOrStdout(), opts.theme(cmd.OutOrStdout()), format)
			_, err = opts.newEngine(renderer, sel).Refresh(cmd.Context())
			return err
		}),
	}

	cmd.Flags().StringVarP(&lo.filter, "filter", "f", string(domain.FilterAll), "filter: all, easy, medium, hard, quick")
	cmd.Flags().StringVarP(&lo.sort, "sort", "s", string(domain.SortNone), "sort: none, name, time")
	cmd.Flags().StringVar(&lo.format, "format", string(display.FormatText), "output format (text|json)")

	return cmd
}
