/*
Package cli implements the quantity command-line demo.

COMMANDS:
  demo      Print worked examples of every engine operation
  convert   Convert a value between two registered units
  units     List registered units and their aliases
  catalog   Print the active unit catalog as YAML

GLOBAL FLAGS:
  --catalog    YAML/JSON catalog with extra categories, registered at startup
  --log-level  debug|info|warn|error (default warn), logs go to stderr

SEE ALSO:
  - cmd/quantity/main.go: Entry point
  - factory/catalog.go: Catalog format
*/
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/warp/measure-engine/factory"
)

// RootOptions holds global flags and the state built from them.
type RootOptions struct {
	CatalogPath string
	LogLevel    string

	Logger  *slog.Logger
	Catalog *factory.Catalog
}

// NewRootCommand creates the root command for the quantity CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "quantity",
		Short:         "Compare, convert and combine physical quantities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
				return fmt.Errorf("invalid log level %q: %w", opts.LogLevel, err)
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return opts.loadCatalog()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.CatalogPath, "catalog", "", "unit catalog file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error)")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewUnitsCommand(opts))
	cmd.AddCommand(NewCatalogCommand(opts))

	return cmd
}

func (o *RootOptions) loadCatalog() error {
	if o.CatalogPath == "" {
		return nil
	}
	cat, err := factory.LoadCatalog(o.CatalogPath)
	if err != nil {
		return err
	}
	if err := cat.Register(); err != nil {
		return fmt.Errorf("register catalog %s: %w", o.CatalogPath, err)
	}
	o.Catalog = cat
	o.Logger.Info("catalog loaded",
		"path", o.CatalogPath,
		"categories", len(cat.Categories()),
		"units", len(cat.Units()))
	return nil
}
