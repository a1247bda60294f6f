// Package filesystem provides a file-backed document source.
// The background document is a plain UTF-8 file at a user-configured path.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/backdrop-labs/backdrop-cli/internal/core/ports/driven"
)

// Ensure DocumentSource implements the interfaces.
var (
	_ driven.DocumentSource = (*DocumentSource)(nil)
	_ driven.DocumentWriter = (*DocumentSource)(nil)
)

// DocumentSource reads the background document from a file path.
type DocumentSource struct {
	path string
}

// NewDocumentSource creates a document source for the given path.
func NewDocumentSource(path string) *DocumentSource {
	return &DocumentSource{path: path}
}

// Path returns the configured document path.
func (s *DocumentSource) Path() string {
	return s.path
}

// Exists reports whether a regular file is present at the path.
func (s *DocumentSource) Exists(_ context.Context) bool {
	if s.path == "" {
		return false
	}
	info, err := os.Stat(s.path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// ReadText returns the full document text.
func (s *DocumentSource) ReadText(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read document %s: %w", s.path, err)
	}
	return string(data), nil
}

// StatMeta returns the document size and modification time.
func (s *DocumentSource) StatMeta(_ context.Context) (int64, time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("stat document %s: %w", s.path, err)
	}
	return info.Size(), info.ModTime(), nil
}

// Describe returns a label for the source.
func (s *DocumentSource) Describe() string {
	return "filesystem:" + s.path
}

// Put replaces the document content, creating the file if needed.
func (s *DocumentSource) Put(_ context.Context, text string) error {
	if err := os.WriteFile(s.path, []byte(text), 0600); err != nil {
		return fmt.Errorf("write document %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the document file. Removing an absent file is not an error.
func (s *DocumentSource) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove document %s: %w", s.path, err)
	}
	return nil
}
