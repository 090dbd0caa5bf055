// Package cli is the termtour launcher: one cobra subcommand per example.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/termtour/internal/app"
	"github.com/Makepad-fr/termtour/internal/config"
	"github.com/Makepad-fr/termtour/internal/logging"
	"github.com/Makepad-fr/termtour/internal/ui"
)

var version = "0.1.0"

// Options are the root flags. Empty values defer to the config file.
type Options struct {
	ConfigPath  string
	LogFile     string
	LogLevel    string
	Color       string
	NoAltScreen bool
}

// usageError marks errors that exit with code 2.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

var errNoExample = errors.New("no example given")

// Execute runs the launcher and returns an exit code (0 ok, 1 error, 2 usage).
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if errors.Is(err, errNoExample) {
		return 2
	}
	ui.Fail(err.Error())
	var ue usageError
	if errors.As(err, &ue) || strings.HasPrefix(err.Error(), "unknown command") {
		return 2
	}
	return 1
}

func NewRootCommand() *cobra.Command {
	opts := &Options{}
	root := &cobra.Command{
		Use:   "termtour <example>",
		Short: "termtour - a guided tour of terminal UI building blocks",
		Long: `termtour runs small, self-contained terminal UI examples.

Each subcommand starts one example; press q (or ctrl+c) to leave it.

Examples:
  termtour list
  termtour counter
  termtour todo --log-file /tmp/termtour.log --log-level debug`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Help()
			return errNoExample
		},
	}
	root.SetOut(ui.Stdout)
	root.SetErr(ui.Stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := root.PersistentFlags()
	f.StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.Path()+")")
	f.StringVar(&opts.LogFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.LogLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&opts.Color, "color", "", "auto, always or never")
	f.BoolVar(&opts.NoAltScreen, "no-alt-screen", false, "render inline instead of in the alternate screen")

	root.AddCommand(newListCommand())
	for _, ex := range Catalog() {
		root.AddCommand(exampleCommand(ex, opts))
	}
	return root
}

func exampleCommand(ex app.Example, opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   ex.Name,
		Short: ex.Summary,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExample(cmd.Context(), ex, *opts)
		},
	}
}

// loadConfig merges flags over the config file.
func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.NoAltScreen {
		cfg.AltScreen = false
	}
	if _, err := ui.ParseColorMode(cfg.Color); err != nil {
		return cfg, usageError{err}
	}
	return cfg, nil
}

func runExample(ctx context.Context, ex app.Example, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	mode, _ := ui.ParseColorMode(cfg.Color)
	ui.SetColorMode(mode)

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return usageError{err}
	}
	defer closer.Close()
	logger = logger.With("example", ex.Name)
	logger.Info("starting")

	if len(ex.Intro) > 0 {
		ui.Panel(ex.Intro)
	}
	env := app.Env{Logger: logger, NotifyTimeout: cfg.NotifyTimeout}
	if _, err := app.Run(ctx, ex.New(env), app.Options{AltScreen: cfg.AltScreen}); err != nil {
		logger.Error("program failed", "err", err)
		return fmt.Errorf("%s: %w", ex.Name, err)
	}
	logger.Info("finished")
	if ex.Outro != "" {
		ui.OK(ex.Outro)
	}
	return nil
}
