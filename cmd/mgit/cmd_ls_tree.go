package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/odvcencio/mgit/pkg/object"
	"github.com/odvcencio/mgit/pkg/repo"
	"github.com/spf13/cobra"
)

func newLsTreeCmd(a *app) *cobra.Command {
	var nameOnly, recursive bool

	cmd := &cobra.Command{
		Use:   "ls-tree [--name-only] [-r] <hash>",
		Short: "List the entries of a tree object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := object.ParseHash(args[0])
			if err != nil {
				return err
			}
			r, err := a.openRepo()
			if err != nil {
				return err
			}

			var rows []repo.TreeFileEntry
			if recursive {
				rows, err = r.FlattenTree(h)
				if err != nil {
					return err
				}
			} else {
				entries, err := r.ListTree(h)
				if err != nil {
					return err
				}
				for _, e := range entries {
					rows = append(rows, repo.TreeFileEntry{Path: e.Name, Mode: e.Mode, Hash: e.Hash})
				}
			}

			out := cmd.OutOrStdout()
			hashColor := color.New(color.FgYellow)
			for _, row := range rows {
				if nameOnly {
					fmt.Fprintln(out, row.Path)
					continue
				}
				fmt.Fprintf(out, "%s %s %s\n", repo.FormatMode(row.Mode), hashColor.Sprint(row.Hash), row.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&nameOnly, "name-only", "n", false, "list only entry names")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subtrees and list files by full path")
	return cmd
}
