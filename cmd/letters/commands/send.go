package commands

import (
	"context"

	"github.com/agentic-letters/letters-cli/pkg/letters"
	"github.com/spf13/cobra"
)

// NewSendCommand creates the send command.
func NewSendCommand() *cobra.Command {
	request := &letters.LetterRequest{}

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a letter",
		Long:  "Submit a PDF document for printing and physical dispatch",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			result, err := apiClient.SendLetter(ctx, request)
			if err != nil {
				return err
			}

			return outputResult(result)
		},
	}

	cmd.Flags().StringVar(&request.PDFPath, "pdf", "", "path to the PDF file")
	cmd.Flags().StringVar(&request.Name, "name", "", "recipient full name")
	cmd.Flags().StringVar(&request.Street, "street", "", "recipient street and number")
	cmd.Flags().StringVar(&request.Zip, "zip", "", "recipient postal code")
	cmd.Flags().StringVar(&request.City, "city", "", "recipient city")
	cmd.Flags().StringVar(&request.Country, "country", letters.DefaultCountry, "recipient country code")
	cmd.Flags().StringVar(&request.Type, "type", letters.DefaultLetterType, "letter type")
	cmd.Flags().StringVar(&request.Label, "label", "", "optional label for your reference")

	_ = cmd.MarkFlagRequired("pdf")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("street")
	_ = cmd.MarkFlagRequired("zip")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}
