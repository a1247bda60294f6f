package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Backdrop resources.
const uriScheme = "backdrop://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// The raw background document.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "document",
		Name:        "document",
		Description: "The user's background document, verbatim",
		MIMEType:    "text/plain",
	}, s.handleDocumentResource)

	// Retrieval state.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "stats",
		Name:        "stats",
		Description: "Background document availability and chunk statistics",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// handleDocumentResource returns the raw background document text.
func (s *Server) handleDocumentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Source == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	if !s.ports.Source.Exists(ctx) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	text, err := s.ports.Source.ReadText(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     text,
		}},
	}, nil
}

// handleStatsResource returns retrieval state as JSON.
func (s *Server) handleStatsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	s.mu.Lock()
	s.ports.Context.Initialize(ctx)
	stats := s.ports.Context.Stats()
	s.mu.Unlock()

	info := StatsOutput{
		Available:  stats.Available,
		ChunkCount: stats.ChunkCount,
		SizeBytes:  stats.SizeBytes,
		Source:     stats.Source,
	}
	if !stats.ModifiedAt.IsZero() {
		info.ModifiedAt = stats.ModifiedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if !stats.LastRefreshed.IsZero() {
		info.LastRefreshed = stats.LastRefreshed.Format("2006-01-02T15:04:05Z07:00")
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling stats: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
