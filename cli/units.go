package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/warp/measure-engine/generic"
)

// NewUnitsCommand lists registered units, optionally for one category.
func NewUnitsCommand(opts *RootOptions) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List registered units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			units := generic.ListUnits()
			if category != "" {
				units = generic.ListUnitsByCategory(generic.Category(category))
				if len(units) == 0 {
					return fmt.Errorf("%w: no units in category %q", generic.ErrUnknownUnit, category)
				}
			}
			opts.Logger.Debug("listing units", "count", len(units), "category", category)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tUNIT\tARITHMETIC\tALIASES")
			for _, u := range units {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n",
					u.Category(), u.Name(), u.SupportsArithmetic(), strings.Join(generic.Aliases(u), ", "))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only list units of this category")
	return cmd
}
