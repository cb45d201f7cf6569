package main

import (
	"errors"
	"fmt"

	"github.com/odvcencio/mgit/pkg/object"
	"github.com/odvcencio/mgit/pkg/repo"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(a *app) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "hash-object [-w] <file>",
		Short: "Compute a file's blob hash, optionally storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			r, err := a.openRepo()
			var h object.Hash
			switch {
			case err == nil:
				h, err = r.HashFile(path, write)
			case !write && errors.Is(err, repo.ErrRepositoryNotFound):
				// Hashing alone works outside a repository.
				format, _ := object.ParseFormat(a.cfg.ObjectFormat)
				h, err = repo.BlobHash(path, format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "store the blob in the object store")
	return cmd
}
