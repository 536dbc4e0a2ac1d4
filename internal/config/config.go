// Package config defines the validated runtime configuration for the CLI.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds the settings shared by the cipher-using commands. Values
// come from flags; Validate is called before any key material is derived.
type Config struct {
	// Common flags
	Cipher     string `validate:"required"`
	Passphrase string `validate:"required"`
	Parallel   int    `validate:"min=1"`

	// Suffix appended to sealed files and stripped when opening.
	Suffix string `validate:"required"`

	// Command-specific
	Decrypt bool

	// Positional arguments
	Files []string
}

// Validate checks the configuration against the struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}
