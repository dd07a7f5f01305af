package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ProductCatalog/internal/seed"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <seed-file>",
		Short: "Add every product listed in a YAML or JSON seed file",
		Long: `Add every product listed in a seed file, in order. Import stops at the
first product that cannot be added; products added before it are kept.

A seed file is either a list of products or a document with a top-level
"products" list. Files ending in .json are read as JSON, others as YAML.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := seed.Load(args[0])
			if err != nil {
				return err
			}

			store, done, err := root.openForWrite()
			if err != nil {
				return err
			}
			defer done()

			added, err := seed.Apply(store, inputs)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d products\n", len(added), len(inputs))
			return err
		},
	}
}
