package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/liangklfang/babel-preset-env/catalog"
	"github.com/liangklfang/babel-preset-env/internal/compat"
	"github.com/liangklfang/babel-preset-env/version"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate support catalogs",
	}
	cmd.AddCommand(newCatalogListCmd(a))
	cmd.AddCommand(newCatalogValidateCmd())
	return cmd
}

func newCatalogListCmd(a *app) *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:       "list [plugins|built-ins]",
		Short:     "List catalog entries and their support tables",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"plugins", "built-ins"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var list *catalog.Catalog
			switch {
			case file != "":
				var err error
				if list, err = catalog.ReadFile(file); err != nil {
					return err
				}
			default:
				plugins, builtIns, err := a.catalogs()
				if err != nil {
					return err
				}
				list = plugins
				if len(args) == 1 && args[0] == "built-ins" {
					list = builtIns
				}
			}

			w := cmd.OutOrStdout()
			switch format {
			case "json":
				_, err := list.WriteTo(w)
				return err
			case "text":
				for name, support := range list.All() {
					envs := support.Environments()
					parts := make([]string, len(envs))
					for i, env := range envs {
						parts[i] = env + " " + version.Prettify(support[env])
					}
					fmt.Fprintf(w, "%s  %s\n", headerColor.Sprint(name), strings.Join(parts, ", "))
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q: expected text or json", format)
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "catalog file to list instead of the configured catalogs")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text|json)")
	cmd.Flags().String("plugin-catalog", "", "transformation catalog file")
	cmd.Flags().String("built-in-catalog", "", "polyfill catalog file")

	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check that catalog files parse and hold valid versions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, path := range args {
				list, err := loadCatalog(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s %s: %d entries\n", addedColor.Sprint("ok"), path, list.Len())
				for _, warning := range unknownEnvironments(list) {
					fmt.Fprintf(w, "%s %s: %s\n", changedColor.Sprint("warning"), path, warning)
				}
			}
			return nil
		},
	}
}

// unknownEnvironments reports each environment the catalog names that is
// not a known target, once, in first-seen order.
func unknownEnvironments(list *catalog.Catalog) []string {
	seen := make(map[string]bool)
	var warnings []string
	for name, support := range list.All() {
		for _, env := range support.Environments() {
			if seen[env] {
				continue
			}
			seen[env] = true
			if w := compat.CheckTarget(env); w != nil {
				warnings = append(warnings, fmt.Sprintf("%s (first used by %s)", w, name))
			}
		}
	}
	return warnings
}
