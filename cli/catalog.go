package cli

import (
	"github.com/spf13/cobra"

	"github.com/warp/measure-engine/factory"
)

// NewCatalogCommand prints the loaded catalog, or the built-in tables
// when no --catalog was given.
func NewCatalogCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Print the unit catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := opts.Catalog
			if cat == nil {
				var err error
				if cat, err = factory.BuiltinCatalog(); err != nil {
					return err
				}
			}
			out, err := cat.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
