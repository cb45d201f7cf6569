package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWriteTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "write-tree",
		Short: "Store the current directory as a tree and print its hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.openRepo()
			if err != nil {
				return err
			}
			h, err := r.WriteTree(".")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}
