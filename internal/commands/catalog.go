package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/go-petr/coa-seeder/internal/catalog"
	"github.com/go-petr/coa-seeder/internal/chartservice"
)

func newIndustriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "industries",
		Short: "List the known industry keys and their extensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.New()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INDUSTRY\tEXTENSION")
			for _, ind := range c.Industries() {
				fmt.Fprintf(w, "%s\t%s\n", ind.Key, ind.Extension)
			}

			return w.Flush()
		},
	}
}

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect account catalogs",
	}

	cmd.AddCommand(newCatalogExportCommand())
	cmd.AddCommand(newCatalogValidateCommand())

	return cmd
}

func newCatalogExportCommand() *cobra.Command {
	var industry string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the assembled catalog of an industry as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.New()
			if err != nil {
				return fmt.Errorf("loading catalog: %w", err)
			}

			return catalog.WriteCSV(cmd.OutOrStdout(), c.Assemble(industry))
		},
	}

	cmd.Flags().StringVar(&industry, "industry", "", "industry key, the base catalog when unset")

	return cmd
}

func newCatalogValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog CSV without seeding it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodes, err := readCatalogFile(args[0])
			if err != nil {
				return err
			}

			if err := chartservice.ValidateNodes(nodes); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d accounts\n", args[0], len(nodes))

			return nil
		},
	}
}
