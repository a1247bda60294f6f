package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// QueryContextInput is the input schema for the query_context tool.
type QueryContextInput struct {
	Query string `json:"query" jsonschema:"the question to retrieve background context for"`
}

// QueryContextOutput is the output schema for the query_context tool.
type QueryContextOutput struct {
	Context   string `json:"context"`
	Available bool   `json:"available"`
}

// RefreshInput is the input schema for the refresh_document tool.
// The tool takes no arguments.
type RefreshInput struct{}

// RefreshOutput is the output schema for the refresh_document tool.
type RefreshOutput struct {
	Available  bool `json:"available"`
	ChunkCount int  `json:"chunk_count"`
}

// StatsInput is the input schema for the context_stats tool.
// The tool takes no arguments.
type StatsInput struct{}

// StatsOutput is the output schema for the context_stats tool.
type StatsOutput struct {
	Available     bool   `json:"available"`
	ChunkCount    int    `json:"chunk_count"`
	SizeBytes     int64  `json:"size_bytes"`
	ModifiedAt    string `json:"modified_at,omitempty"`
	LastRefreshed string `json:"last_refreshed,omitempty"`
	Source        string `json:"source,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_context",
		Description: "Retrieve relevant background context for a question",
	}, s.handleQueryContext)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "refresh_document",
		Description: "Reload the background document and rebuild its chunks",
	}, s.handleRefresh)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "context_stats",
		Description: "Report background document availability and chunk statistics",
	}, s.handleStats)
}

// handleQueryContext handles the query_context tool invocation.
// An unavailable document is a normal outcome, not a tool error.
func (s *Server) handleQueryContext(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryContextInput,
) (*mcp.CallToolResult, QueryContextOutput, error) {
	s.mu.Lock()
	block, ok := s.ports.Context.QueryContext(ctx, input.Query)
	s.mu.Unlock()

	return nil, QueryContextOutput{
		Context:   block,
		Available: ok,
	}, nil
}

// handleRefresh handles the refresh_document tool invocation.
func (s *Server) handleRefresh(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ RefreshInput,
) (*mcp.CallToolResult, RefreshOutput, error) {
	s.mu.Lock()
	available := s.ports.Context.ForceRefresh(ctx)
	stats := s.ports.Context.Stats()
	s.mu.Unlock()

	return nil, RefreshOutput{
		Available:  available,
		ChunkCount: stats.ChunkCount,
	}, nil
}

// handleStats handles the context_stats tool invocation.
func (s *Server) handleStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	s.mu.Lock()
	s.ports.Context.Initialize(ctx)
	stats := s.ports.Context.Stats()
	s.mu.Unlock()

	out := StatsOutput{
		Available:  stats.Available,
		ChunkCount: stats.ChunkCount,
		SizeBytes:  stats.SizeBytes,
		Source:     stats.Source,
	}
	if !stats.ModifiedAt.IsZero() {
		out.ModifiedAt = stats.ModifiedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if !stats.LastRefreshed.IsZero() {
		out.LastRefreshed = stats.LastRefreshed.Format("2006-01-02T15:04:05Z07:00")
	}

	return nil, out, nil
}
