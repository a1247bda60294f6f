// Package validation provides struct-tag based validation of
// configuration values using go-playground/validator.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
)

// Ensure Validator implements the interface.
var _ driven.ConfigValidator = (*Validator)(nil)

// Validator validates configuration structs against their tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a new configuration validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateRetrieval checks retrieval tuning for invalid combinations.
// The ltfield tag on ChunkOverlap rejects an overlap that meets or
// exceeds the chunk size, which would stall the chunking window.
func (v *Validator) ValidateRetrieval(cfg *domain.RetrievalConfig) error {
	if err := v.validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
	}
	return nil
}
