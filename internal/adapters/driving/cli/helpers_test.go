package cli

import (
	"context"
	"testing"

	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/storage/memory"
	"github.com/backdrop-labs/backdrop-cli/internal/adapters/driven/validation"
	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driving"
	"github.com/backdrop-labs/backdrop-cli/internal/core/services"
)

// mockContextService is a canned-response driving.ContextService.
type mockContextService struct {
	available    bool
	contextBlock string
	contextOK    bool
	stats        domain.ContextStats

	refreshCalls int
	cleanupCalls int
	lastQuery    string
}

var _ driving.ContextService = (*mockContextService)(nil)

func (m *mockContextService) Initialize(_ context.Context) bool {
	return m.available
}

func (m *mockContextService) QueryContext(_ context.Context, query string) (string, bool) {
	m.lastQuery = query
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

func (m *mockContextService) Cleanup() {
	m.cleanupCalls++
}

// mockSettingsService is a canned-response driving.SettingsService.
type mockSettingsService struct {
	settings     domain.AppSettings
	retrievalErr error
	setPathErr   error

	lastDocumentPath string
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	settings := m.settings
	return &settings, nil
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error {
	return nil
}

func (m *mockSettingsService) SetDocumentPath(path string) error {
	if m.setPathErr != nil {
		return m.setPathErr
	}
	m.lastDocumentPath = path
	m.settings.Document.Path = path
	return nil
}

func (m *mockSettingsService) SetSourceBackend(_ domain.SourceBackend) error {
	return nil
}

func (m *mockSettingsService) Retrieval() (domain.RetrievalConfig, error) {
	if m.retrievalErr != nil {
		return domain.RetrievalConfig{}, m.retrievalErr
	}
	return m.settings.Retrieval, nil
}

func (m *mockSettingsService) Validate() error {
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) GetPipelineConfig() domain.PipelineConfig {
	return domain.DefaultPipelineConfig()
}

// setupTestServices installs mocks into the package-level service vars
// so commands run without touching disk. The returned cleanup restores
// the previous wiring.
func setupTestServices() func() {
	prevConfig := configStore
	prevContext := contextService
	prevSettings := settingsService
	prevSource := documentSource

	configStore = memory.NewConfigStore()
	contextService = &mockContextService{
		available:    true,
		contextBlock: "Background:\n\nTest context block.",
		contextOK:    true,
		stats: domain.ContextStats{
			Available:  true,
			ChunkCount: 3,
			SizeBytes:  120,
			Source:     "memory",
		},
	}
	settingsService = &mockSettingsService{settings: domain.DefaultAppSettings()}
	documentSource = memory.NewDocumentSource()

	return func() {
		configStore = prevConfig
		contextService = prevContext
		settingsService = prevSettings
		documentSource = prevSource
	}
}

// setupRealServices wires the actual service graph over an in-memory
// config store, leaving the context service for initServices to build.
// The returned cleanup restores the previous wiring.
func setupRealServices(t *testing.T) func() {
	t.Helper()

	prevConfig := configStore
	prevContext := contextService
	prevSettings := settingsService
	prevSource := documentSource

	t.Setenv(envConfigDir, t.TempDir())
	t.Setenv(envDocument, "")
	configStore = memory.NewConfigStore()
	settingsService = services.NewSettingsService(configStore, validation.New())
	contextService = nil
	documentSource = nil

	return func() {
		configStore = prevConfig
		contextService = prevContext
		settingsService = prevSettings
		documentSource = prevSource
	}
}
