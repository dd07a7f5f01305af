package main

import (
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAddCmd(root *rootOptions) *cobra.Command {
	var (
		fields       productFlags
		generateCode bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Long: `Add a product to the catalog. The id is assigned automatically.

Examples:
  catalogctl add --title "Keyboard" --description "Mechanical" \
    --price 49.9 --thumbnail kb.png --code KB-01 --stock 10
  catalogctl add --title "Mouse" --description "Wireless" \
    --price 19.9 --thumbnail mouse.png --generate-code --stock 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := fields.input(cmd)
			if in.Code == "" && generateCode {
				in.Code = newCode()
			}

			store, done, err := root.openForWrite()
			if err != nil {
				return err
			}
			defer done()

			p, err := store.Add(in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), p)
		},
	}

	fields.bind(cmd)
	cmd.Flags().BoolVar(&generateCode, "generate-code", false, "generate a random code when --code is not given")
	return cmd
}

// newCode derives a short upper-case product code from a random UUID.
func newCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "P-" + strings.ToUpper(id[:10])
}
