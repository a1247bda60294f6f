// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Backdrop. It lets AI assistants pull background context blocks for the
// questions they are answering.
package mcp

import "errors"

// ErrMissingContextService is returned when the context service is not provided.
var ErrMissingContextService = errors.New("mcp: context service is required")
