package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
)

// NewBrewCommand creates the brew command
func NewBrewCommand() *cobra.Command {
	var recipeName string

	cmd := &cobra.Command{
		Use:   "brew",
		Short: "Select a recipe and attempt a brew",
		Long: `Select a recipe and attempt a brew.

The brew policy decides whether the brew may proceed; a rejected brew leaves
resources untouched and reports the decision.

Examples:
  coffeectl brew --recipe espresso
  coffeectl brew --recipe americano`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if recipeName == "" {
				return fmt.Errorf("--recipe flag is required")
			}

			app, err := newAppFromFlags()
			if err != nil {
				return err
			}
			ctx := app.Context()

			if _, err := app.Mediator.Send(ctx, &types.SelectRecipeCommand{Name: recipeName}); err != nil {
				return err
			}

			response, err := app.Mediator.Send(ctx, &types.BrewCoffeeCommand{})
			if err != nil {
				return fmt.Errorf("brew failed: %w", err)
			}

			result := response.(*types.BrewCoffeeResponse)
			if result.Decision == "OK" {
				fmt.Println("✓ Brew completed")
			} else {
				fmt.Printf("✗ Brew rejected: %s\n", result.Decision)
			}
			fmt.Printf("  Recipe:      %s\n", result.Recipe)
			fmt.Printf("  State:       %s\n", result.State)
			fmt.Printf("  Dirty count: %d\n", result.DirtyCount)
			printResourceStatus("Water", result.Water)
			printResourceStatus("Beans", result.Beans)
			if result.CleaningScheduled {
				fmt.Println("  Cleaning has been scheduled")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&recipeName, "recipe", "", "Recipe name to brew (required)")

	return cmd
}
