package services

import (
	"fmt"
	"strings"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDocumentSource = "document.source"
	keyDocumentPath   = "document.path"

	keyChunkSize      = "retrieval.chunk_size"
	keyChunkOverlap   = "retrieval.chunk_overlap"
	keyScoreThreshold = "retrieval.score_threshold"
	keyTopChunks      = "retrieval.top_k"
	keyFallbackChunks = "retrieval.fallback_count"

	keyMaxKeywords   = "keywords.max"
	keyMinWordLength = "keywords.min_word_length"

	keyPipelineProcessors = "pipeline.processors"
	pipelineConfigPrefix  = "pipeline."
)

// SettingsService maps the flat config store onto typed settings.
type SettingsService struct {
	configStore driven.ConfigStore
	validator   driven.ConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, validator driven.ConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		validator:   validator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Document: domain.DocumentSettings{
			Backend: s.getBackend(defaults.Document.Backend),
			Path:    s.configStore.GetString(keyDocumentPath),
		},
		Retrieval: domain.RetrievalConfig{
			ChunkSize:      s.getInt(keyChunkSize, defaults.Retrieval.ChunkSize),
			ChunkOverlap:   s.getIntAllowZero(keyChunkOverlap, defaults.Retrieval.ChunkOverlap),
			MaxKeywords:    s.getInt(keyMaxKeywords, defaults.Retrieval.MaxKeywords),
			MinWordLength:  s.getInt(keyMinWordLength, defaults.Retrieval.MinWordLength),
			ScoreThreshold: s.getFloat(keyScoreThreshold, defaults.Retrieval.ScoreThreshold),
			TopChunks:      s.getInt(keyTopChunks, defaults.Retrieval.TopChunks),
			FallbackChunks: s.getIntAllowZero(keyFallbackChunks, defaults.Retrieval.FallbackChunks),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDocumentSource, settings.Document.Backend.String()); err != nil {
		return fmt.Errorf("save document source: %w", err)
	}
	if err := s.configStore.Set(keyDocumentPath, settings.Document.Path); err != nil {
		return fmt.Errorf("save document path: %w", err)
	}

	retrieval := map[string]any{
		keyChunkSize:      settings.Retrieval.ChunkSize,
		keyChunkOverlap:   settings.Retrieval.ChunkOverlap,
		keyScoreThreshold: settings.Retrieval.ScoreThreshold,
		keyTopChunks:      settings.Retrieval.TopChunks,
		keyFallbackChunks: settings.Retrieval.FallbackChunks,
		keyMaxKeywords:    settings.Retrieval.MaxKeywords,
		keyMinWordLength:  settings.Retrieval.MinWordLength,
	}
	for key, value := range retrieval {
		if err := s.configStore.Set(key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}

	return nil
}

// SetDocumentPath updates the background document location.
func (s *SettingsService) SetDocumentPath(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("%w: document path is empty", domain.ErrInvalidInput)
	}
	return s.configStore.Set(keyDocumentPath, path)
}

// SetSourceBackend selects the document source backend.
func (s *SettingsService) SetSourceBackend(backend domain.SourceBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: unknown source backend %q", domain.ErrInvalidInput, backend)
	}
	return s.configStore.Set(keyDocumentSource, backend.String())
}

// Retrieval returns the current retrieval tuning after validation.
func (s *SettingsService) Retrieval() (domain.RetrievalConfig, error) {
	settings, err := s.Get()
	if err != nil {
		return domain.RetrievalConfig{}, err
	}

	cfg := settings.Retrieval
	if s.validator != nil {
		if err := s.validator.ValidateRetrieval(&cfg); err != nil {
			return domain.RetrievalConfig{}, err
		}
	}
	return cfg, nil
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if settings.Document.Backend == domain.SourceFilesystem && settings.Document.Path == "" {
		return fmt.Errorf("%w: no document path configured; run 'backdrop document set <path>'",
			domain.ErrInvalidConfig)
	}

	if s.validator != nil {
		if err := s.validator.ValidateRetrieval(&settings.Retrieval); err != nil {
			return err
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// GetPipelineConfig returns the post-processor pipeline configuration.
//
// Per-processor settings that mirror retrieval keys (chunk size,
// overlap, keyword caps) follow the retrieval settings, so one config
// edit tunes both the pipeline and the scorer. The processor list and
// any extra per-processor keys come from pipeline.* entries.
func (s *SettingsService) GetPipelineConfig() domain.PipelineConfig {
	settings, _ := s.Get() //nolint:errcheck // Get never fails; error kept for the interface
	cfg := domain.DefaultPipelineConfig()

	if processors := s.configStore.GetStringSlice(keyPipelineProcessors); len(processors) > 0 {
		cfg.Processors = processors
	}

	cfg.ProcessorConfigs["chunker"] = map[string]any{
		"chunk_size": settings.Retrieval.ChunkSize,
		"overlap":    settings.Retrieval.ChunkOverlap,
	}
	cfg.ProcessorConfigs["keywords"] = map[string]any{
		"max_keywords":    settings.Retrieval.MaxKeywords,
		"min_word_length": settings.Retrieval.MinWordLength,
	}

	for _, name := range cfg.Processors {
		s.overlayProcessorConfig(&cfg, name)
	}

	return cfg
}

// overlayProcessorConfig applies pipeline.<name>.<key> entries on top
// of the derived processor config.
func (s *SettingsService) overlayProcessorConfig(cfg *domain.PipelineConfig, name string) {
	prefix := pipelineConfigPrefix + name + "."
	for _, key := range []string{"chunk_size", "overlap", "max_keywords", "min_word_length"} {
		if val, ok := s.configStore.Get(prefix + key); ok {
			if cfg.ProcessorConfigs[name] == nil {
				cfg.ProcessorConfigs[name] = make(map[string]any)
			}
			cfg.ProcessorConfigs[name][key] = val
		}
	}
}

// Typed getters with defaults.

func (s *SettingsService) getBackend(defaultVal domain.SourceBackend) domain.SourceBackend {
	str := s.configStore.GetString(keyDocumentSource)
	if str == "" {
		return defaultVal
	}
	backend := domain.SourceBackend(str)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if val := s.configStore.GetInt(key); val > 0 {
		return val
	}
	return defaultVal
}

// getIntAllowZero keeps an explicit zero, which is meaningful for
// overlap and fallback counts.
func (s *SettingsService) getIntAllowZero(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetInt(key)
	}
	return defaultVal
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, ok := s.configStore.Get(key); ok {
		return s.configStore.GetFloat(key)
	}
	return defaultVal
}
