package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipedeck/internal/command"
	"github.com/hammamikhairi/recipedeck/internal/display"
)

// NewBrowseCommand creates the interactive browser command.
func NewBrowseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive recipe browser",
		Args:  cobra.NoArgs,
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		}),
	}
}

func runBrowse(cmd *cobra.Command, opts *RootOptions) error {
	out := cmd.OutOrStdout()
	theme := opts.theme(out)
	screen := display.NewScreen(theme)
	eng := opts.newEngine(screen, opts.cfg.Selection())
	ui := display.NewUI(eng, command.NewKeywordParser(opts.log.Named("parser")), screen, opts.log.Named("ui"))

	fmt.Fprintln(out, theme.Banner(out))

	if err := ui.Run(cmd.Context()); err != nil {
		opts.log.Error("display: %v", err)
		return fmt.Errorf("running browser: %w", err)
	}
	return nil
}
