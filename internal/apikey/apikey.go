// Package apikey resolves and stores the Agentic Letters API key.
package apikey

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentic-letters/letters-cli/internal/constants"
	"github.com/agentic-letters/letters-cli/pkg/letters"
	"github.com/joho/godotenv"
)

// Resolver looks up the API key from the environment first, then from
// the secrets file.
type Resolver struct {
	EnvVar      string
	SecretsFile string
}

// NewResolver builds a resolver pointing at the standard locations.
func NewResolver() *Resolver {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Resolver{
		EnvVar:      constants.EnvAPIKey,
		SecretsFile: filepath.Join(home, constants.SecretsFileRelPath),
	}
}

// Resolve returns the API key, or a local error naming every place it
// was looked for.
func (r *Resolver) Resolve() (string, error) {
	if key := strings.TrimSpace(os.Getenv(r.EnvVar)); key != "" {
		return key, nil
	}

	values, err := godotenv.Read(r.SecretsFile)
	if err == nil {
		if key := strings.TrimSpace(values[r.EnvVar]); key != "" {
			return key, nil
		}
	}

	detail := fmt.Sprintf("Set %s in environment or in %s. Get a key at %s",
		r.EnvVar, r.SecretsFile, constants.SignupURL)

	return "", letters.LocalError("No API key found", detail)
}

// Store writes the key to the secrets file, creating parent
// directories as needed.
func (r *Resolver) Store(key string) error {
	dir := filepath.Dir(r.SecretsFile)

	err := os.MkdirAll(dir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating secrets directory: %w", err)
	}

	line := fmt.Sprintf("%s=%s\n", r.EnvVar, key)

	err = os.WriteFile(r.SecretsFile, []byte(line), constants.SecretsFilePerm)
	if err != nil {
		return fmt.Errorf("writing secrets file: %w", err)
	}

	return nil
}

// Clear removes the stored key. A missing file is not an error.
func (r *Resolver) Clear() error {
	err := os.Remove(r.SecretsFile)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing secrets file: %w", err)
	}

	return nil
}
