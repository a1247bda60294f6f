package mcp

import (
	"context"
	"time"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driving"
)

// mockContextService is a mock implementation of driving.ContextService.
type mockContextService struct {
	available    bool
	contextBlock string
	contextOK    bool
	stats        domain.ContextStats

	initializeCalls int
	refreshCalls    int
}

var _ driving.ContextService = (*mockContextService)(nil)

func (m *mockContextService) Initialize(_ context.Context) bool {
	m.initializeCalls++
	return m.available
}

func (m *mockContextService) QueryContext(_ context.Context, _ string) (string, bool) {
	return m.contextBlock, m.contextOK
}

func (m *mockContextService) IsAvailable() bool {
	return m.available
}

func (m *mockContextService) Refresh(_ context.Context) bool {
	m.refreshCalls++
	return m.available
}

func (m *mockContextService) ForceRefresh(ctx context.Context) bool {
	return m.Refresh(ctx)
}

func (m *mockContextService) Stats() domain.ContextStats {
	return m.stats
}

func (m *mockContextService) Cleanup() {}

// mockDocumentSource is a mock implementation of driven.DocumentSource.
type mockDocumentSource struct {
	exists  bool
	text    string
	readErr error
}

func (m *mockDocumentSource) Exists(_ context.Context) bool {
	return m.exists
}

func (m *mockDocumentSource) ReadText(_ context.Context) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

func (m *mockDocumentSource) StatMeta(_ context.Context) (int64, time.Time, error) {
	return int64(len(m.text)), time.Time{}, nil
}

func (m *mockDocumentSource) Describe() string {
	return "mock"
}
