package commands

import (
	"fmt"
	"syscall"

	"github.com/agentic-letters/letters-cli/internal/apikey"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Save an Agentic Letters API key to the secrets file for later use",
		RunE: func(cmd *cobra.Command, args []string) error {
			if key == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				fmt.Println()

				key = string(byteKey)
			}

			resolver := apikey.NewResolver()

			err := resolver.Store(key)
			if err != nil {
				return err
			}

			cmd.Printf("API key saved to %s\n", resolver.SecretsFile)

			return nil
		},
	}

	cmd.Flags().StringVar(&key, "api-key", "", "API key (prompted if omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long:  "Delete the API key from the secrets file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := apikey.NewResolver()

			err := resolver.Clear()
			if err != nil {
				return err
			}

			cmd.Println("API key removed")

			return nil
		},
	}
}
