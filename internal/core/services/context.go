package services

import (
	"context"
	"time"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driving"
	"github.com/backdrop-labs/backdrop-cli/internal/logger"
)

// Ensure ContextService implements the interface.
var _ driving.ContextService = (*ContextService)(nil)

// snapshot is one processed version of the background document.
// A snapshot is built in full and then published with a single pointer
// assignment; its fields are never mutated afterwards, so readers can
// hold a snapshot across a concurrent refresh without seeing chunks
// from two document versions.
type snapshot struct {
	doc    *domain.SourceDocument
	chunks []domain.Chunk
}

// ContextService orchestrates the retrieval pipeline and owns the one
// cached document version. It is the only stateful piece of the engine.
//
// The service starts no goroutines and holds no locks; callers that
// need concurrent mutation serialize Initialize/Refresh/Cleanup
// themselves (spec'd single-writer model, see the driving port).
type ContextService struct {
	docStore *DocumentStore
	pipeline driven.PostProcessorPipeline
	scorer   *RelevanceScorer
	builder  *PromptBuilder
	cfg      domain.RetrievalConfig

	current       *snapshot
	lastRefreshed time.Time
	initialized   bool
}

// NewContextService creates the retrieval orchestrator.
// The service begins uninitialized; the first Initialize or
// QueryContext call loads the document.
func NewContextService(
	docStore *DocumentStore,
	pipeline driven.PostProcessorPipeline,
	scorer *RelevanceScorer,
	builder *PromptBuilder,
	cfg domain.RetrievalConfig,
) *ContextService {
	return &ContextService{
		docStore: docStore,
		pipeline: pipeline,
		scorer:   scorer,
		builder:  builder,
		cfg:      cfg,
	}
}

// Initialize loads the document and builds the first snapshot.
//
// Repeated calls are no-ops: the service stays initialized even when
// the load fails, so a missing document does not trigger a disk read
// on every subsequent query. Returns availability afterwards.
func (s *ContextService) Initialize(ctx context.Context) bool {
	if s.initialized {
		return s.IsAvailable()
	}

	logger.Section("Initializing background context")
	s.rebuild(ctx)
	s.initialized = true
	return s.IsAvailable()
}

// Refresh reloads the document and rebuilds chunks unconditionally.
// The snapshot is replaced in one assignment; a failed reload leaves
// the service unavailable rather than keeping stale content.
func (s *ContextService) Refresh(ctx context.Context) bool {
	logger.Section("Refreshing background context")
	s.rebuild(ctx)
	s.initialized = true
	return s.IsAvailable()
}

// ForceRefresh is Refresh for callers that distinguish manual refreshes.
func (s *ContextService) ForceRefresh(ctx context.Context) bool {
	return s.Refresh(ctx)
}

// IsAvailable reports whether queries can currently produce context:
// a valid document snapshot exists and produced at least one chunk.
func (s *ContextService) IsAvailable() bool {
	return s.current != nil &&
		s.current.doc != nil &&
		s.current.doc.Valid &&
		len(s.current.chunks) > 0
}

// QueryContext returns a formatted context block for the query.
//
// The service lazily initializes on first use. When the document is
// unavailable, or scoring selects nothing, it returns ("", false) and
// the caller proceeds without injected context. This surface never
// returns an error: context augmentation is best-effort and must not
// interrupt the conversation it serves.
func (s *ContextService) QueryContext(ctx context.Context, query string) (string, bool) {
	if !s.initialized {
		s.Initialize(ctx)
	}

	if !s.IsAvailable() {
		logger.Debug("Query skipped: no background context available")
		return "", false
	}

	snap := s.current

	queryKeywords := domain.ExtractKeywords(query, s.cfg.MaxKeywords, s.cfg.MinWordLength)
	logger.Debug("Query keywords: %v", queryKeywords)

	selection := s.scorer.SelectChunks(queryKeywords, snap.chunks)
	if len(selection) == 0 {
		logger.Debug("No chunks selected for query")
		return "", false
	}

	return s.builder.Build(query, selection)
}

// Stats returns a view of the retrieval state without touching the source.
func (s *ContextService) Stats() domain.ContextStats {
	stats := domain.ContextStats{
		Available:     s.IsAvailable(),
		LastRefreshed: s.lastRefreshed,
	}

	if s.docStore != nil && s.docStore.Source() != nil {
		stats.Source = s.docStore.Source().Describe()
	}

	if s.current != nil && s.current.doc != nil {
		stats.ChunkCount = len(s.current.chunks)
		stats.SizeBytes = s.current.doc.SizeBytes
		stats.ModifiedAt = s.current.doc.ModifiedAt
	}

	return stats
}

// Cleanup drops the snapshot and returns the service to its
// uninitialized state. Idempotent; Initialize works again afterwards.
func (s *ContextService) Cleanup() {
	s.current = nil
	s.initialized = false
	s.lastRefreshed = time.Time{}
	logger.Debug("Background context cleaned up")
}

// rebuild loads and processes the document into a fresh snapshot.
// All failures are folded into an unavailable snapshot; nothing
// escapes to the caller.
func (s *ContextService) rebuild(ctx context.Context) {
	snap := &snapshot{}

	doc := s.docStore.Load(ctx)
	if doc == nil {
		logger.Info("No background document available")
		s.publish(snap)
		return
	}

	snap.doc = doc
	if !doc.Valid {
		s.publish(snap)
		return
	}

	chunks, err := s.pipeline.Process(ctx, doc)
	if err != nil {
		logger.Warn("Document processing failed: %v", err)
		invalid := *doc
		invalid.Valid = false
		snap.doc = &invalid
		snap.chunks = nil
		s.publish(snap)
		return
	}

	snap.chunks = chunks
	logger.Info("Background document ready: %d chunks from %d bytes", len(chunks), doc.SizeBytes)
	s.publish(snap)
}

// publish swaps in the new snapshot and stamps the refresh time.
func (s *ContextService) publish(snap *snapshot) {
	s.current = snap
	s.lastRefreshed = time.Now()
}
