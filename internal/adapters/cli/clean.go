package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/coffeemachine-go/internal/application/brewing/types"
)

// NewCleanCommand creates the clean command
func NewCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Clean the machine now (resets the dirty count)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			response, err := app.Mediator.Send(app.Context(), &types.CleanMachineCommand{})
			if err != nil {
				return err
			}

			result := response.(*types.CleanMachineResponse)
			fmt.Println("✓ Machine cleaned")
			fmt.Printf("  State:      %s\n", result.State)
			fmt.Printf("  Cleaned at: %s\n", result.CleanedAt.Format("2006-01-02 15:04:05"))

			return nil
		},
	}
}

// NewScheduleCleanCommand creates the schedule-clean command
func NewScheduleCleanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule-clean",
		Short: "Mark cleaning as scheduled without performing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			if _, err := app.Mediator.Send(app.Context(), &types.ScheduleCleaningCommand{}); err != nil {
				return err
			}

			fmt.Println("✓ Cleaning scheduled")
			return nil
		},
	}
}
