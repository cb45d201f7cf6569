package main

import (
	"fmt"

	"github.com/odvcencio/mgit/pkg/object"
	"github.com/spf13/cobra"
)

func newCatFileCmd(a *app) *cobra.Command {
	var pretty, showType, showSize bool

	cmd := &cobra.Command{
		Use:   "cat-file (-p | -t | -s) <hash>",
		Short: "Print an object's content, kind or size",
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
			o, err := r.Store.Read(h)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case showType:
				fmt.Fprintln(out, o.Kind)
			case showSize:
				fmt.Fprintln(out, o.Size)
			default:
				_, err = out.Write(o.Content)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "print the object content")
	cmd.Flags().BoolVarP(&showType, "type", "t", false, "print the object kind")
	cmd.Flags().BoolVarP(&showSize, "size", "s", false, "print the declared object size")
	cmd.MarkFlagsMutuallyExclusive("pretty", "type", "size")
	cmd.MarkFlagsOneRequired("pretty", "type", "size")
	return cmd
}
