package driven

import (
	"context"
	"time"
)

// DocumentSource provides access to the single background document.
// Implementations decide where the bytes live (file, memory, SQLite);
// the loading service composes these calls into a document snapshot.
type DocumentSource interface {
	// Exists reports whether a document is present at the source.
	// It must not return an error; an unreachable source reads as absent.
	Exists(ctx context.Context) bool

	// ReadText returns the full document text.
	ReadText(ctx context.Context) (string, error)

	// StatMeta returns the document size in bytes and its last
	// modification time without reading the body.
	StatMeta(ctx context.Context) (int64, time.Time, error)

	// Describe returns a short human-readable label for the source,
	// e.g. "filesystem:/home/user/notes.md".
	Describe() string
}

// DocumentWriter is an optional interface for sources that accept new
// document content. Sources that are read-only simply don't implement it.
type DocumentWriter interface {
	// Put replaces the document content at the source.
	Put(ctx context.Context, text string) error

	// Clear removes the document from the source.
	Clear(ctx context.Context) error
}
