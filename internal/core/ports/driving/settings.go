package driving

import "github.com/backdrop-labs/backdrop-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetDocumentPath updates the background document location.
	SetDocumentPath(path string) error

	// SetSourceBackend selects the document source backend.
	SetSourceBackend(backend domain.SourceBackend) error

	// Retrieval returns the current retrieval tuning after validation.
	Retrieval() (domain.RetrievalConfig, error)

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// GetPipelineConfig returns the post-processor pipeline configuration.
	GetPipelineConfig() domain.PipelineConfig
}
