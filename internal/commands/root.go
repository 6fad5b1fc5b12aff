// Package commands implements the coa-seeder command line interface.
package commands

import (
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "coa-seeder",
		Short: "Seed industry specific charts of accounts",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "directory holding app.env")

	rootCmd.AddCommand(newSeedCommand(&configPath))
	rootCmd.AddCommand(newIndustriesCommand())
	rootCmd.AddCommand(newCatalogCommand())
	rootCmd.AddCommand(newTokenCommand(&configPath))

	return rootCmd
}
