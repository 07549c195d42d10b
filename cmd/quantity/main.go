/*
main.go - Application entry point

PURPOSE:
  Runs the quantity CLI: worked examples, conversions between registered
  units, and catalog inspection.

EXAMPLES:
  # Print the worked examples
  ./quantity demo

  # Convert 3 feet to inches
  ./quantity convert 3 --from ft --to in

  # Add custom categories from a catalog
  ./quantity units --catalog ./units.yaml --log-level=info

SEE ALSO:
  - cli/root.go: Command definitions
*/
package main

import (
	"fmt"
	"os"

	"github.com/warp/measure-engine/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
