package driven

import "github.com/backdrop-labs/backdrop-cli/internal/core/domain"

// ConfigValidator validates retrieval configurations.
// Implementations check structural constraints before a configuration
// is allowed to reach the pipeline.
type ConfigValidator interface {
	// ValidateRetrieval checks retrieval tuning for invalid combinations,
	// such as an overlap that meets or exceeds the chunk size.
	ValidateRetrieval(cfg *domain.RetrievalConfig) error
}
