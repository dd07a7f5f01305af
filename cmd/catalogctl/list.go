package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(root *rootOptions) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			store, done := root.open()
			defer done()

			products := store.List()
			if limit > 0 && limit < len(products) {
				products = products[:limit]
			}
			return writeProducts(cmd.OutOrStdout(), products, asJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most n products (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "always print JSON")
	return cmd
}
