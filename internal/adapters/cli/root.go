package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coffeectl",
		Short: "Coffee machine CLI - drive the brewing decision core",
		Long: `coffeectl drives an in-memory coffee machine: recipe selection,
brew decisions, refills and cleaning.

One-shot commands build a fresh machine from configuration, run a single
operation and print the result. Use the interactive shell to keep machine
state across operations:

  coffeectl status
  coffeectl recipe list
  coffeectl brew --recipe espresso
  coffeectl refill --resource water --amount 200
  coffeectl clean
  coffeectl shell`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/coffeemachine)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewRecipeCommand())
	rootCmd.AddCommand(NewBrewCommand())
	rootCmd.AddCommand(NewRefillCommand())
	rootCmd.AddCommand(NewCleanCommand())
	rootCmd.AddCommand(NewScheduleCleanCommand())
	rootCmd.AddCommand(NewShellCommand())

	return rootCmd
}
