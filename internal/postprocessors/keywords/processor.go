// Package keywords provides a keyword annotation processor.
package keywords

import (
	"context"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
)

// Processor annotates chunks with keywords extracted from their text.
// It implements the PostProcessor interface and must run after a
// chunk-creating processor.
type Processor struct {
	maxKeywords   int
	minWordLength int
}

// Option configures the keywords processor.
type Option func(*Processor)

// WithMaxKeywords caps the number of keywords kept per chunk.
func WithMaxKeywords(maxKeywords int) Option {
	return func(p *Processor) {
		if maxKeywords > 0 {
			p.maxKeywords = maxKeywords
		}
	}
}

// WithMinWordLength sets the minimum token length kept during extraction.
func WithMinWordLength(minWordLength int) Option {
	return func(p *Processor) {
		if minWordLength > 0 {
			p.minWordLength = minWordLength
		}
	}
}

// New creates a new keywords processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{
		maxKeywords:   domain.DefaultMaxKeywords,
		minWordLength: domain.DefaultMinWordLength,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return "keywords"
}

// Process annotates each chunk with keywords from its text.
// The chunk slice is returned with Keywords populated in place.
func (p *Processor) Process(_ context.Context, _ *domain.SourceDocument, chunks []domain.Chunk) ([]domain.Chunk, error) {
	for i := range chunks {
		chunks[i].Keywords = domain.ExtractKeywords(chunks[i].Text, p.maxKeywords, p.minWordLength)
	}
	return chunks, nil
}
