package postprocessors

import (
	"fmt"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/postprocessors/chunker"
	"github.com/backdrop-labs/backdrop-cli/internal/postprocessors/keywords"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register("chunker", buildChunker)
	r.Register("keywords", buildKeywords)
}

// BuildPipeline constructs a pipeline from configuration using the
// built-in processors. Processor order follows the config.
func BuildPipeline(cfg domain.PipelineConfig) (*Pipeline, error) {
	registry := NewRegistry()
	RegisterDefaults(registry)

	pipeline := NewPipeline()
	for _, name := range cfg.Processors {
		processor, err := registry.Build(name, cfg.GetProcessorConfig(name))
		if err != nil {
			return nil, fmt.Errorf("build pipeline: %w", err)
		}
		pipeline.Add(processor)
	}

	return pipeline, nil
}

// buildChunker creates a chunker processor from generic config.
// Supported config keys:
//   - chunk_size (int): Words per chunk (default: 500)
//   - overlap (int): Overlapping words between chunks (default: 50)
func buildChunker(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []chunker.Option

	if cfg != nil {
		if size := getIntFromConfig(cfg, "chunk_size"); size > 0 {
			opts = append(opts, chunker.WithChunkSize(size))
		}
		if overlap := getIntFromConfig(cfg, "overlap"); overlap >= 0 {
			opts = append(opts, chunker.WithOverlap(overlap))
		}
	}

	return chunker.New(opts...), nil
}

// buildKeywords creates a keyword annotation processor from generic config.
// Supported config keys:
//   - max_keywords (int): Keywords kept per chunk (default: 20)
//   - min_word_length (int): Minimum token length (default: 3)
func buildKeywords(cfg map[string]any) (driven.PostProcessor, error) {
	var opts []keywords.Option

	if cfg != nil {
		if maxKw := getIntFromConfig(cfg, "max_keywords"); maxKw > 0 {
			opts = append(opts, keywords.WithMaxKeywords(maxKw))
		}
		if minLen := getIntFromConfig(cfg, "min_word_length"); minLen > 0 {
			opts = append(opts, keywords.WithMinWordLength(minLen))
		}
	}

	return keywords.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
