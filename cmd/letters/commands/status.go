package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status LETTER_ID",
		Short: "Check letter status",
		Long:  "Fetch the current status of a previously submitted letter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := apiClient.GetLetter(ctx, args[0])
			if err != nil {
				return err
			}

			return outputResult(result)
		},
	}
}
