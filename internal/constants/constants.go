// Package constants holds the process-wide constants of the letters CLI.
// The API base and client identifier are fixed properties of the tool, not
// mutable state.
package constants

import "time"

// API surface.
const (
	// DefaultAPIBase is the fixed base endpoint of the AgenticLetters API.
	DefaultAPIBase = "https://agentic-letters.com/api"

	// UserAgent is the fixed client identifier sent on every request.
	UserAgent = "agentic-letters-skill/1.0"

	// SignupURL is where a caller without a key can obtain one.
	SignupURL = "https://agentic-letters.com/buy"
)

// Credential resolution.
const (
	// EnvAPIKey is the environment variable holding the API key. It doubles
	// as the variable name looked up inside the secrets file.
	EnvAPIKey = "AGENTIC_LETTERS_API_KEY"

	// SecretsFileRelPath is the secrets file location relative to the user's
	// home directory.
	SecretsFileRelPath = ".openclaw/secrets/agentic_letters.env"
)

// HTTP and network timeouts.
const (
	// RequestTimeout bounds every API call. Expiry is treated the same as a
	// transport failure.
	RequestTimeout = 60 * time.Second
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration and secrets directories.
	ConfigDirPerm = 0750

	// SecretsFilePerm is the permission for the secrets file.
	SecretsFilePerm = 0600
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
