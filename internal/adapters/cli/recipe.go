package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
)

// NewRecipeCommand creates the recipe command group
func NewRecipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Inspect the recipe catalog",
	}

	cmd.AddCommand(newRecipeListCommand())
	cmd.AddCommand(newRecipeShowCommand())

	return cmd
}

func newRecipeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			response, err := app.Mediator.Send(app.Context(), &types.ListRecipesQuery{})
			if err != nil {
				return err
			}

			list := response.(*types.ListRecipesResponse)
			fmt.Println("Available recipes:")
			for _, recipe := range list.Recipes {
				grind := recipe.Grind
				if grind == "" {
					grind = "-"
				}
				fmt.Printf("  %-12s water=%dml beans=%dg grind=%s\n",
					recipe.Name, recipe.WaterML, recipe.BeansG, grind)
			}
			return nil
		},
	}
}

func newRecipeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show one recipe's requirements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			recipe, err := app.Catalog.Get(args[0])
			if err != nil {
				return fmt.Errorf("recipe %q: %w", args[0], err)
			}

			for field, value := range recipe.ToMapping() {
				if value == nil {
					value = "-"
				}
				fmt.Printf("  %-9s %v\n", field+":", value)
			}
			return nil
		},
	}
}
