// Package cli wires the recipedeck commands.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipedeck/internal/browse"
	"github.com/hammamikhairi/recipedeck/internal/config"
	"github.com/hammamikhairi/recipedeck/internal/display"
	"github.com/hammamikhairi/recipedeck/internal/domain"
	"github.com/hammamikhairi/recipedeck/internal/engine"
	"github.com/hammamikhairi/recipedeck/internal/logger"
	"github.com/hammamikhairi/recipedeck/internal/recipe"
)

// RootOptions holds global flags and the state built from them before any
// subcommand runs.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	LogFile    string
	Locale     string
	NoColor    bool

	cfg     *config.Config
	log     *logger.Logger
	logFile *os.File
}

// NewRootCommand creates the root command. Without a subcommand it starts
// the interactive browser.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "recipedeck",
		Short:         "Browse, filter and sort recipes in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: opts.runE(func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, opts)
		}),
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath, "config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose/debug logging")
	cmd.PersistentFlags().BoolVar(&opts.Quiet, "quiet", false, "disable all logging")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", `file to write logs to ("stderr" logs to the console)`)
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "collation locale for name sorting, e.g. en, de, sv")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "render without colours")

	cmd.AddCommand(NewBrowseCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))

	return cmd
}

// setup loads configuration, applies flag overrides and opens the log.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	if o.Verbose {
		cfg.Log.Level = logger.LevelVerbose.String()
	}
	if o.Quiet {
		cfg.Log.Level = logger.LevelOff.String()
	}
	if o.LogFile != "" {
		cfg.Log.File = o.LogFile
	}
	if o.Locale != "" {
		cfg.Browse.Locale = o.Locale
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	// Logs go to a file by default so the screen stays clean.
	var out io.Writer = cmd.ErrOrStderr()
	if cfg.Log.File != "" && cfg.Log.File != "stderr" && cfg.LogLevel() != logger.LevelOff {
		if dir := filepath.Dir(cfg.Log.File); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("creating log dir: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.Log.File, err)
		} else {
			o.logFile = f
			out = f
		}
	}

	o.log = logger.New(cfg.LogLevel(), out)
	o.log.Debug("config loaded (locale=%s, filter=%s, sort=%s)", cfg.Browse.Locale, cfg.Browse.Filter, cfg.Browse.Sort)
	return nil
}

// runE wraps a command body so the log opened by setup is closed however
// the body returns. Cobra skips post-run hooks after an error.
func (o *RootOptions) runE(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if cerr := o.teardown(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, args)
	}
}

func (o *RootOptions) teardown() error {
	if o.logFile == nil {
		return nil
	}
	err := o.logFile.Close()
	o.logFile = nil
	return err
}

// theme picks the coloured or plain theme for output going to w.
func (o *RootOptions) theme(w io.Writer) *display.Theme {
	if o.NoColor {
		return display.PlainTheme()
	}
	return display.NewTheme(lipgloss.NewRenderer(w))
}

// newEngine builds an engine over the built-in recipes.
func (o *RootOptions) newEngine(renderer domain.Renderer, sel domain.Selection) *engine.Engine {
	return engine.New(
		recipe.NewMemorySource(o.log.Named("recipes")),
		renderer,
		o.log.Named("engine"),
		engine.WithSelection(sel),
		engine.WithSorter(browse.NewSorter(o.cfg.Language())),
	)
}
