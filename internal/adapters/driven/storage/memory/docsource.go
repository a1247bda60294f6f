package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
)

// Ensure DocumentSource implements the interfaces.
var (
	_ driven.DocumentSource = (*DocumentSource)(nil)
	_ driven.DocumentWriter = (*DocumentSource)(nil)
)

// DocumentSource holds the background document in process memory.
// Useful for tests and for hosts that embed the engine and feed it
// text directly. Content does not survive a restart.
type DocumentSource struct {
	mu       sync.RWMutex
	text     string
	modified time.Time
	revision string
	present  bool
}

// NewDocumentSource creates an empty in-memory document source.
func NewDocumentSource() *DocumentSource {
	return &DocumentSource{}
}

// Exists reports whether a document has been put.
func (s *DocumentSource) Exists(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.present
}

// ReadText returns the current document text.
func (s *DocumentSource) ReadText(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text, nil
}

// StatMeta returns the document size and last Put time.
func (s *DocumentSource) StatMeta(_ context.Context) (int64, time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.text)), s.modified, nil
}

// Describe returns a label for the source.
func (s *DocumentSource) Describe() string {
	return "memory"
}

// Put replaces the document content and stamps a new revision.
func (s *DocumentSource) Put(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.modified = time.Now()
	s.revision = uuid.NewString()
	s.present = true
	return nil
}

// Clear removes the document.
func (s *DocumentSource) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = ""
	s.modified = time.Time{}
	s.revision = ""
	s.present = false
	return nil
}

// Revision returns the identifier stamped by the latest Put, or ""
// when no document is present.
func (s *DocumentSource) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
