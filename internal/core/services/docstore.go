package services

import (
	"context"
	"strings"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/logger"
)

// DocumentStore loads the background document from its source.
// It folds the source's Exists/ReadText/StatMeta trio into a single
// fail-soft Load: callers receive a snapshot or nil, never an error.
type DocumentStore struct {
	source driven.DocumentSource
}

// NewDocumentStore creates a document store backed by the given source.
func NewDocumentStore(source driven.DocumentSource) *DocumentStore {
	return &DocumentStore{
		source: source,
	}
}

// Source returns the underlying document source.
func (s *DocumentStore) Source() driven.DocumentSource {
	return s.source
}

// Load reads the background document and returns a snapshot of it.
//
// It returns nil when the source reports no document or the text is
// empty after trimming, and a snapshot with Valid=false when the
// document exists but reading or stat fails. Failures are logged, not
// returned: a broken document must never surface as an error to the
// conversation flow.
func (s *DocumentStore) Load(ctx context.Context) *domain.SourceDocument {
	if s.source == nil {
		logger.Warn("Document load skipped: no source configured")
		return nil
	}

	if !s.source.Exists(ctx) {
		logger.Debug("Document not found at %s", s.source.Describe())
		return nil
	}

	text, err := s.source.ReadText(ctx)
	if err != nil {
		logger.Warn("Document read failed: %v", err)
		return &domain.SourceDocument{Valid: false}
	}

	if strings.TrimSpace(text) == "" {
		logger.Debug("Document at %s is empty, treating as absent", s.source.Describe())
		return nil
	}

	size, modified, err := s.source.StatMeta(ctx)
	if err != nil {
		logger.Warn("Document stat failed: %v", err)
		return &domain.SourceDocument{Valid: false}
	}

	logger.Debug("Document loaded: %d bytes, modified %s", size, modified.Format("2006-01-02 15:04:05"))

	return &domain.SourceDocument{
		RawText:    text,
		SizeBytes:  size,
		ModifiedAt: modified,
		Valid:      true,
	}
}
