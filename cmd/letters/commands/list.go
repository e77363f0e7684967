package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all letters",
		Long:  "List every letter submitted with the current API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := apiClient.ListLetters(ctx)
			if err != nil {
				return err
			}

			return outputResult(result)
		},
	}
}
