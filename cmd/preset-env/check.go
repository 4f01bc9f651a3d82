package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	presetenv "github.com/liangklfang/babel-preset-env"
	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/targets"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <name>...",
		Short: "Explain whether transforms or polyfills are required for the targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.cfg.targetMap()
			if err != nil {
				return err
			}
			t = t.Without(targets.Uglify)

			plugins, builtIns, err := a.catalogs()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, name := range args {
				list := plugins
				if presetenv.IsBuiltIn(name) {
					list = builtIns
				}
				support, ok := list.Lookup(name)
				if !ok {
					return &presetenv.UnknownIdentifierError{Name: name}
				}

				required, err := presetenv.IsPluginRequired(t, support)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				switch {
				case !required:
					fmt.Fprintf(w, "%s: %s\n", name, addedColor.Sprint("not required"))
				case len(t) == 0:
					fmt.Fprintf(w, "%s: %s (no targets)\n", name, removedColor.Sprint("required"))
				default:
					envs, err := presetenv.RequiredBy(t, support)
					if err != nil {
						return fmt.Errorf("%s: %w", name, err)
					}
					fmt.Fprintf(w, "%s: %s by %s\n", name, removedColor.Sprint("required"), strings.Join(envs, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringToString("target", nil, "target environment version, e.g. chrome=55 (repeatable)")
	cmd.Flags().String("plugin-catalog", "", "transformation catalog file")
	cmd.Flags().String("built-in-catalog", "", "polyfill catalog file")

	return cmd
}

// catalogs returns the configured catalogs, falling back to the bundled ones.
func (a *app) catalogs() (plugins, builtIns *catalog.Catalog, err error) {
	plugins, builtIns = catalog.Plugins(), catalog.BuiltIns()
	if a.cfg.PluginCatalog != "" {
		if plugins, err = loadCatalog(a.cfg.PluginCatalog); err != nil {
			return nil, nil, err
		}
	}
	if a.cfg.BuiltInCatalog != "" {
		if builtIns, err = loadCatalog(a.cfg.BuiltInCatalog); err != nil {
			return nil, nil, err
		}
	}
	return plugins, builtIns, nil
}
