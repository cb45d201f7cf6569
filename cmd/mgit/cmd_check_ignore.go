package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newCheckIgnoreCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check-ignore [-v] <path>...",
		Short: "Report which paths are excluded from write-tree",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}
			ic, err := r.IgnoreChecker()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			kept := color.New(color.FgGreen)
			for _, path := range args {
				switch {
				case ic.IsIgnored(path):
					fmt.Fprintln(out, path)
				case verbose:
					fmt.Fprintf(out, "%s %s\n", kept.Sprint("kept"), path)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list paths that are not ignored")
	return cmd
}
