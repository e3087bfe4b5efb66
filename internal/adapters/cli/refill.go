package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
)

// NewRefillCommand creates the refill command
func NewRefillCommand() *cobra.Command {
	var (
		resource string
		amount   int
	)

	cmd := &cobra.Command{
		Use:   "refill",
		Short: "Refill the water tank or bean container",
		Long: `Refill the water tank or bean container.

With the default capping policy a refill past capacity fills the container
and reports NOW_FULL. With strict_refill configured an overflowing refill is
rejected and the level is unchanged.

Examples:
  coffeectl refill --resource water --amount 200
  coffeectl refill --resource beans --amount 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if resource == "" {
				return fmt.Errorf("--resource flag is required (water or beans)")
			}
			if amount <= 0 {
				return fmt.Errorf("--amount must be greater than zero")
			}

			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			response, err := app.Mediator.Send(app.Context(), &types.RefillResourceCommand{
				Resource: resource,
				Amount:   amount,
			})
			if err != nil {
				return err
			}

			result := response.(*types.RefillResourceResponse)
			fmt.Printf("✓ Refill result: %s\n", result.Result)
			printResourceStatus(result.Resource, result.Status)

			return nil
		},
	}

	cmd.Flags().StringVar(&resource, "resource", "", "Resource to refill: water or beans (required)")
	cmd.Flags().IntVar(&amount, "amount", 0, "Amount to add, ml for water, g for beans (required)")

	return cmd
}
