package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	presetenv "github.com/liangklfang/babel-preset-env"
)

// errChanges is returned by diff --exit-code when the results differ.
var errChanges = errors.New("results differ")

func newDiffCmd(_ *app) *cobra.Command {
	var (
		asJSON   bool
		exitCode bool
	)

	cmd := &cobra.Command{
		Use:   "diff <old.json> <new.json>",
		Short: "Compare two results written by resolve --format json",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldResult, err := presetenv.ReadResultFile(args[0])
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			newResult, err := presetenv.ReadResultFile(args[1])
			if err != nil {
				return fmt.Errorf("%s: %w", args[1], err)
			}

			d := presetenv.DiffResults(oldResult, newResult)
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(d); err != nil {
					return err
				}
			} else {
				writeDiff(w, d)
			}

			if exitCode && !d.IsEmpty() {
				return errChanges
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the diff as JSON")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with status 1 when the results differ")

	return cmd
}

func writeDiff(w io.Writer, d *presetenv.ResultDiff) {
	if d.IsEmpty() {
		fmt.Fprintln(w, "no changes")
		return
	}

	for _, c := range d.Targets {
		from, to := c.Old, c.New
		if from == "" {
			from = "(none)"
		}
		if to == "" {
			to = "(none)"
		}
		changedColor.Fprintf(w, "~ %s %s -> %s\n", c.Environment, from, to)
	}
	writeNames(w, "transformations", d.AddedTransformations, d.RemovedTransformations)
	writeNames(w, "polyfills", d.AddedPolyfills, d.RemovedPolyfills)
	fmt.Fprintf(w, "%d change(s)\n", d.TotalChanges())
}

func writeNames(w io.Writer, title string, added, removed []string) {
	if len(added) == 0 && len(removed) == 0 {
		return
	}
	headerColor.Fprintf(w, "%s:\n", title)
	for _, name := range added {
		addedColor.Fprintf(w, "+ %s\n", name)
	}
	for _, name := range removed {
		removedColor.Fprintf(w, "- %s\n", name)
	}
}
