package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewCreditsCommand creates the credits command.
func NewCreditsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "credits",
		Short: "Check remaining credits",
		Long:  "Fetch the credit balance available for sending letters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := apiClient.GetCredits(ctx)
			if err != nil {
				return err
			}

			return outputResult(result)
		},
	}
}
