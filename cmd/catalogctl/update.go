package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errNothingToUpdate = errors.New("nothing to update: pass at least one field flag")

func newUpdateCmd(root *rootOptions) *cobra.Command {
	var fields productFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a product",
		Long: `Change fields of a product. Fields not given keep their value.

Examples:
  catalogctl update 3 --stock 40
  catalogctl update 3 --code KB-02 --price 44.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			patch := fields.patch(cmd)
			if patch.Empty() {
				return errNothingToUpdate
			}

			store, done, err := root.openForWrite()
			if err != nil {
				return err
			}
			defer done()

			p, err := store.Update(id, patch)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}

	fields.bind(cmd)
	return cmd
}
