package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Version is the CLI version (set via -ldflags).
var Version = "dev"

// app carries per-invocation state shared by subcommands.
type app struct {
	cfgFile string
	cfg     *Config
	logger  *slog.Logger
}

// newRootCmd builds a fresh command tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "preset-env",
		Short: "Select JavaScript transforms and polyfills for target environments",
		Long: `preset-env computes which syntax transformations and runtime polyfills
a JavaScript build needs, given the environments it must run on.

Configuration is read from .preset-env.{toml,json,yaml} in the working
directory (or --config), from PRESET_ENV_* environment variables, and
from flags, in increasing order of precedence.

Examples:
  preset-env resolve --target chrome=55 --target node=8.9.4
  preset-env resolve --use-built-ins entry --format json
  preset-env check transform-classes --target ie=11
  preset-env diff before.json after.json
  preset-env catalog list built-ins`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./.preset-env.{toml,json,yaml})")
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().BoolP("quiet", "q", false, "suppress warnings")

	root.AddCommand(newResolveCmd(a))
	root.AddCommand(newCheckCmd(a))
	root.AddCommand(newDiffCmd(a))
	root.AddCommand(newCatalogCmd(a))

	return root
}

// init loads configuration and sets up logging for cmd.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if err := applyColorMode(cfg.Color); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Quiet)
	return nil
}

// newLogger returns a slog.Logger backed by charmbracelet/log.
func newLogger(w io.Writer, quiet bool) *slog.Logger {
	level := log.InfoLevel
	if quiet {
		level = log.ErrorLevel
	}
	handler := log.NewWithOptions(w, log.Options{
		Prefix: "preset-env",
		Level:  level,
	})
	return slog.New(handler)
}
