package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/warp/measure-engine/generic"
	"github.com/warp/measure-engine/length"
	"github.com/warp/measure-engine/temperature"
	"github.com/warp/measure-engine/volume"
	"github.com/warp/measure-engine/weight"
)

// NewDemoCommand prints one line per worked example.
func NewDemoCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print worked examples of equality, conversion and arithmetic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger.Debug("running demo", "sections", len(demoSections()))
			return writeDemo(cmd.OutOrStdout())
		},
	}
}

type scenario struct {
	label string
	run   func() (string, error)
}

type section struct {
	title     string
	scenarios []scenario
}

func writeDemo(w io.Writer) error {
	for i, s := range demoSections() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n", s.title); err != nil {
			return err
		}
		for _, sc := range s.scenarios {
			result, err := sc.run()
			if err != nil {
				result = "error: " + err.Error()
			}
			if _, err := fmt.Fprintf(w, "%s: %s\n", sc.label, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func demoSections() []section {
	feet := generic.MustNew(1.0, length.Feet)
	inches := generic.MustNew(12.0, length.Inch)
	litre := generic.MustNew(1.0, volume.Litre)
	kilogram := generic.MustNew(1.0, weight.Kilogram)
	celsius := generic.MustNew(0.0, temperature.Celsius)

	return []section{
		{title: "Equality", scenarios: []scenario{
			equality(feet, inches),
			equality(litre, generic.MustNew(1000.0, volume.Millilitre)),
			equality(kilogram, generic.MustNew(2.20462, weight.Pound)),
			equality(celsius, generic.MustNew(32.0, temperature.Fahrenheit)),
			{label: fmt.Sprintf("%s == %s", litre, kilogram), run: func() (string, error) {
				return strconv.FormatBool(generic.Equivalent(litre, kilogram)), nil
			}},
		}},
		{title: "Conversion", scenarios: []scenario{
			conversion(generic.MustNew(3.0, length.Feet), length.Inch),
			conversion(generic.MustNew(1.0, volume.Gallon), volume.Litre),
			conversion(celsius, temperature.Kelvin),
			conversion(generic.MustNew(212.0, temperature.Fahrenheit), temperature.Celsius),
		}},
		{title: "Addition", scenarios: []scenario{
			{label: fmt.Sprintf("%s + %s in %s", feet, inches, length.Yards), run: func() (string, error) {
				return stringOf(feet.AddIn(inches, length.Yards))
			}},
			addition(kilogram, generic.MustNew(500.0, weight.Gram)),
			addition(generic.MustNew(100.0, temperature.Celsius), generic.MustNew(50.0, temperature.Celsius)),
		}},
		{title: "Subtraction", scenarios: []scenario{
			subtraction(generic.MustNew(5.0, volume.Litre), generic.MustNew(500.0, volume.Millilitre)),
			subtraction(feet, generic.MustNew(24.0, length.Inch)),
		}},
		{title: "Division", scenarios: []scenario{
			division(generic.MustNew(10.0, length.Feet), generic.MustNew(2.0, length.Feet)),
			division(generic.MustNew(24.0, length.Inch), generic.MustNew(2.0, length.Feet)),
			division(generic.MustNew(10.0, length.Feet), generic.MustNew(0.0, length.Feet)),
		}},
	}
}

func equality[U generic.Measurable](a, b generic.Quantity[U]) scenario {
	return scenario{
		label: fmt.Sprintf("%s == %s", a, b),
		run:   func() (string, error) { return strconv.FormatBool(a.Equal(b)), nil },
	}
}

func conversion[U generic.Measurable](q generic.Quantity[U], target U) scenario {
	return scenario{
		label: fmt.Sprintf("%s -> %s", q, target.Name()),
		run:   func() (string, error) { return stringOf(q.ConvertTo(target)) },
	}
}

func addition[U generic.Measurable](a, b generic.Quantity[U]) scenario {
	return scenario{
		label: fmt.Sprintf("%s + %s", a, b),
		run:   func() (string, error) { return stringOf(a.Add(b)) },
	}
}

func subtraction[U generic.Measurable](a, b generic.Quantity[U]) scenario {
	return scenario{
		label: fmt.Sprintf("%s - %s", a, b),
		run:   func() (string, error) { return stringOf(a.Subtract(b)) },
	}
}

func division[U generic.Measurable](a, b generic.Quantity[U]) scenario {
	return scenario{
		label: fmt.Sprintf("%s / %s", a, b),
		run: func() (string, error) {
			ratio, err := a.Divide(b)
			if err != nil {
				return "", err
			}
			return formatValue(generic.Round(ratio)), nil
		},
	}
}

func stringOf(q fmt.Stringer, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return q.String(), nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
