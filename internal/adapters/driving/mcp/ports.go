package mcp

import (
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Context serves background-document context.
	Context driving.ContextService

	// Settings exposes configuration to the stats surfaces. Optional.
	Settings driving.SettingsService

	// Source gives resource handlers access to the raw document. Optional.
	Source driven.DocumentSource
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Context == nil {
		return ErrMissingContextService
	}
	// Settings and Source are optional
	return nil
}
