package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootDirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "root",
		Short: "Print the repository root directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.RootDir)
			return nil
		},
	}
}
