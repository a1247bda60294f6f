package domain

const unknownDescription = "Unknown"

// SourceBackend identifies where the background document is stored.
type SourceBackend string

// Available source backends.
const (
	// SourceFilesystem reads the document from a file path.
	SourceFilesystem SourceBackend = "filesystem"

	// SourceMemory holds the document in process memory.
	SourceMemory SourceBackend = "memory"

	// SourceSQLite reads the document from a local SQLite database.
	SourceSQLite SourceBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b SourceBackend) IsValid() bool {
	switch b {
	case SourceFilesystem, SourceMemory, SourceSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b SourceBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b SourceBackend) Description() string {
	switch b {
	case SourceFilesystem:
		return "Filesystem (plain file on disk)"
	case SourceMemory:
		return "Memory (in-process, non-persistent)"
	case SourceSQLite:
		return "SQLite (local database)"
	default:
		return unknownDescription
	}
}

// AllSourceBackends returns all available source backends.
func AllSourceBackends() []SourceBackend {
	return []SourceBackend{
		SourceFilesystem,
		SourceMemory,
		SourceSQLite,
	}
}

// DocumentSettings holds background document location configuration.
type DocumentSettings struct {
	// Backend selects the document source implementation.
	Backend SourceBackend

	// Path is the document location for the filesystem backend,
	// or the database path for the sqlite backend.
	Path string
}

// Default retrieval tuning values.
const (
	// DefaultChunkSize is the chunk window length in words.
	DefaultChunkSize = 500

	// DefaultChunkOverlap is the word overlap between consecutive windows.
	DefaultChunkOverlap = 50

	// DefaultMaxKeywords caps keywords extracted per text.
	DefaultMaxKeywords = 20

	// DefaultMinWordLength drops shorter tokens during extraction.
	DefaultMinWordLength = 3

	// DefaultScoreThreshold filters chunks scoring at or below it.
	DefaultScoreThreshold = 0.05

	// DefaultTopChunks is the maximum number of chunks per query.
	DefaultTopChunks = 5

	// DefaultFallbackChunks is how many chunks a below-threshold query
	// still returns when the document has content.
	DefaultFallbackChunks = 2
)

// RetrievalConfig tunes the chunking, keyword extraction, and scoring
// stages. Values are fixed when the service is constructed; changing
// them requires building a new service.
type RetrievalConfig struct {
	// ChunkSize is the window length in words.
	ChunkSize int `toml:"chunk_size" validate:"gt=0"`

	// ChunkOverlap is the number of words shared by consecutive
	// windows. Must stay below ChunkSize or the window never advances.
	ChunkOverlap int `toml:"chunk_overlap" validate:"gte=0,ltfield=ChunkSize"`

	// MaxKeywords caps the keywords extracted per text.
	MaxKeywords int `toml:"max_keywords" validate:"gt=0"`

	// MinWordLength drops tokens shorter than this during extraction.
	MinWordLength int `toml:"min_word_length" validate:"gt=0"`

	// ScoreThreshold filters out chunks scoring at or below it.
	ScoreThreshold float64 `toml:"score_threshold" validate:"gte=0,lt=1"`

	// TopChunks is the maximum number of chunks selected per query.
	TopChunks int `toml:"top_k" validate:"gt=0"`

	// FallbackChunks is the number of chunks returned when nothing
	// clears the threshold but the document has content.
	FallbackChunks int `toml:"fallback_count" validate:"gte=0"`
}

// DefaultRetrievalConfig returns retrieval tuning with sensible defaults.
func DefaultRetrievalConfig() RetrievalConfig {
	return RetrievalConfig{
		ChunkSize:      DefaultChunkSize,
		ChunkOverlap:   DefaultChunkOverlap,
		MaxKeywords:    DefaultMaxKeywords,
		MinWordLength:  DefaultMinWordLength,
		ScoreThreshold: DefaultScoreThreshold,
		TopChunks:      DefaultTopChunks,
		FallbackChunks: DefaultFallbackChunks,
	}
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Document holds background document location settings.
	Document DocumentSettings

	// Retrieval holds retrieval tuning.
	Retrieval RetrievalConfig
}

// DefaultAppSettings returns settings with sensible defaults.
// The document path is left empty: users must point Backdrop at a
// document before any context can be served.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Document: DocumentSettings{
			Backend: SourceFilesystem,
		},
		Retrieval: DefaultRetrievalConfig(),
	}
}

// PipelineConfig holds post-processor pipeline configuration.
// Uses generic map-based config for extensibility - new processors can be added
// without modifying this struct.
type PipelineConfig struct {
	// Processors is the ordered list of processor names to run.
	Processors []string

	// ProcessorConfigs holds per-processor configuration as generic maps.
	// Key is processor name, value is processor-specific config.
	ProcessorConfigs map[string]map[string]any
}

// GetProcessorConfig returns config for a specific processor, or nil if not set.
func (c *PipelineConfig) GetProcessorConfig(name string) map[string]any {
	if c.ProcessorConfigs == nil {
		return nil
	}
	return c.ProcessorConfigs[name]
}

// DefaultPipelineConfig returns the default pipeline configuration:
// the section chunker followed by the keyword annotator.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Processors: []string{"chunker", "keywords"},
		ProcessorConfigs: map[string]map[string]any{
			"chunker": {
				"chunk_size": DefaultChunkSize,
				"overlap":    DefaultChunkOverlap,
			},
			"keywords": {
				"max_keywords":    DefaultMaxKeywords,
				"min_word_length": DefaultMinWordLength,
			},
		},
	}
}
