package driving

import (
	"context"

	"github.com/backdrop-labs/backdrop-cli/internal/core/domain"
)

// ContextService serves background-document context to external actors.
//
// Read operations are safe at any time; mutating operations (Initialize,
// Refresh, Cleanup) must be serialized by the caller. Implementations
// hold no locks and start no goroutines.
type ContextService interface {
	// Initialize loads the document and builds the first snapshot.
	// Idempotent. Reports availability afterwards.
	Initialize(ctx context.Context) bool

	// QueryContext returns a formatted context block for the query.
	// The boolean is false when no context could be produced, in which
	// case the caller proceeds without injected context. Never errors.
	QueryContext(ctx context.Context, query string) (string, bool)

	// IsAvailable reports whether queries can currently produce context.
	IsAvailable() bool

	// Refresh reloads the document and rebuilds chunks unconditionally,
	// swapping the snapshot in one step. Reports availability afterwards.
	Refresh(ctx context.Context) bool

	// ForceRefresh is Refresh under a name for callers that distinguish
	// manual refreshes from scheduled ones.
	ForceRefresh(ctx context.Context) bool

	// Stats returns a view of the retrieval state without touching the source.
	Stats() domain.ContextStats

	// Cleanup drops the current snapshot. The service reads as
	// unavailable until re-initialized. Idempotent.
	Cleanup()
}
