// Package commands implements the letters CLI subcommands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/agentic-letters/letters-cli/internal/apikey"
	"github.com/agentic-letters/letters-cli/internal/client"
	"github.com/agentic-letters/letters-cli/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// createClient builds an API client from the resolved key and endpoint.
// The --api-key flag wins over the environment and the secrets file.
func createClient() (*client.Client, error) {
	apiKey := viper.GetString("api-key")
	if apiKey == "" {
		key, err := apikey.NewResolver().Resolve()
		if err != nil {
			return nil, err
		}

		apiKey = key
	}

	baseURL := viper.GetString("api")
	if baseURL == "" {
		baseURL = constants.DefaultAPIBase
	}

	return client.New(baseURL, apiKey), nil
}

// outputResult renders an API response in the configured output format.
func outputResult(result map[string]any) error {
	switch viper.GetString("output") {
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(result)
	case constants.FormatTable:
		return renderResultTable(result)
	default:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	}
}

// renderResultTable prints the response as a two-column field/value
// table with keys in stable order.
func renderResultTable(result map[string]any) error {
	keys := make([]string, 0, len(result))
	for key := range result {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Field", "Value")

	for _, key := range keys {
		_ = table.Append(key, formatTableValue(result[key]))
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// formatTableValue flattens a JSON value into a single table cell.
func formatTableValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return fmt.Sprintf("%t", typed)
	case float64:
		return fmt.Sprintf("%g", typed)
	default:
		encoded, err := json.Marshal(typed)
		if err != nil {
			return fmt.Sprintf("%v", typed)
		}

		return string(encoded)
	}
}
