package cli

import (
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show machine state and resource levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppFromFlags()
			if err != nil {
				return err
			}

			status, err := fetchStatus(app.Context(), app)
			if err != nil {
				return err
			}

			printMachineStatus(status)
			return nil
		},
	}
}
