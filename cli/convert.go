package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/warp/measure-engine/generic"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions
	From string
	To   string
}

// NewConvertCommand converts a number between two registered units.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <value>",
		Short: "Convert a value from one unit to another",
		Example: `  quantity convert 3 --from ft --to in
  quantity convert 100 --from celsius --to fahrenheit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := opts.convert(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVar(&opts.From, "from", "", "source unit name or alias")
	cmd.Flags().StringVar(&opts.To, "to", "", "target unit name or alias")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (o *ConvertOptions) convert(arg string) (generic.Quantity[generic.Unit], error) {
	value, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return generic.Quantity[generic.Unit]{}, fmt.Errorf("%w: value %q is not a number", generic.ErrInvalidArgument, arg)
	}
	from, err := generic.LookupUnit(o.From)
	if err != nil {
		return generic.Quantity[generic.Unit]{}, err
	}
	to, err := generic.LookupUnit(o.To)
	if err != nil {
		return generic.Quantity[generic.Unit]{}, err
	}

	q, err := generic.New(value, from)
	if err != nil {
		return generic.Quantity[generic.Unit]{}, err
	}
	o.Logger.Debug("converting", "quantity", q, "target", to.Name(), "base", q.BaseValue())
	return q.ConvertTo(to)
}
