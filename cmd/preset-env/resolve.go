package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	presetenv "github.com/liangklfang/babel-preset-env"
)

// addResolveFlags registers the flags that feed resolution options.
func addResolveFlags(fs *pflag.FlagSet) {
	fs.StringToString("target", nil, "target environment version, e.g. chrome=55 (repeatable)")
	fs.StringSlice("include", nil, "transforms or polyfills to always include")
	fs.StringSlice("exclude", nil, "transforms or polyfills to never include")
	fs.Bool("loose", false, "enable loose mode for module and syntax transforms")
	fs.String("modules", string(presetenv.ModulesCommonJS), "module transform (amd|umd|systemjs|commonjs|cjs|false)")
	fs.String("use-built-ins", presetenv.BuiltInsOff.String(), "polyfill injection mode (false|entry|usage)")
	fs.Bool("use-syntax", true, "filter syntax transforms by targets")
	fs.Bool("debug", false, "log a summary of the resolution")
	fs.String("plugin-catalog", "", "transformation catalog file (.json, .toml, .bzl, .star)")
	fs.String("built-in-catalog", "", "polyfill catalog file (.json, .toml, .bzl, .star)")
}

func newResolveCmd(a *app) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the transforms and polyfills the targets need",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.resolve()
			if err != nil {
				return err
			}

			if output == "" {
				return writeResult(cmd.OutOrStdout(), result, format)
			}
			return writeResultFile(output, result, format)
		},
	}

	addResolveFlags(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|json)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}

// resolve runs a resolution with the loaded configuration.
func (a *app) resolve() (*presetenv.Result, error) {
	resolverOpts, err := a.cfg.resolverOptions(a.logger)
	if err != nil {
		return nil, err
	}
	r, err := presetenv.NewResolver(resolverOpts...)
	if err != nil {
		return nil, err
	}
	opts, err := a.cfg.resolveOptions()
	if err != nil {
		return nil, err
	}
	return r.Resolve(opts...)
}

func writeResult(w io.Writer, result *presetenv.Result, format string) error {
	switch format {
	case "json":
		data, err := result.ToJSON()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "text":
		_, err := result.WriteText(w)
		return err
	default:
		return fmt.Errorf("unknown format %q: expected text or json", format)
	}
}

// writeResultFile writes the rendered result to path, reporting close errors.
func writeResultFile(path string, result *presetenv.Result, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := writeResult(f, result, format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
