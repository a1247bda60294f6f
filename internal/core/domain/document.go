package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// SourceDocument represents a loaded snapshot of the background document.
// It is the canonical representation before chunking.
type SourceDocument struct {
	// RawText is the full document text as read from the source.
	RawText string

	// SizeBytes is the document size reported by the source.
	SizeBytes int64

	// ModifiedAt is the last modification time reported by the source.
	ModifiedAt time.Time

	// Valid is false when the document exists but could not be read
	// or processed. An invalid document never produces context.
	Valid bool
}

// Chunk represents a scoreable unit within the background document.
// The document is split into chunks for granular retrieval.
type Chunk struct {
	// ID is the deterministic identifier for the chunk. Re-chunking
	// an unchanged document yields identical IDs.
	ID string

	// Text is the text content of this chunk.
	Text string

	// Keywords are the normalised terms extracted from Text.
	Keywords []string

	// SectionTitle is the heading the chunk falls under.
	// Empty for text outside any heading.
	SectionTitle string

	// Position is the ordinal position within the document.
	Position int
}

// ScoredChunk pairs a chunk with its relevance to a query.
type ScoredChunk struct {
	// Chunk is the scored chunk.
	Chunk Chunk

	// Score is the relevance score in [0, 1].
	Score float64
}

// ContextStats is a point-in-time view of the retrieval state.
// It is computed from the current snapshot without touching the source.
type ContextStats struct {
	// Available reports whether queries can currently produce context.
	Available bool

	// ChunkCount is the number of chunks in the current snapshot.
	ChunkCount int

	// SizeBytes is the loaded document size.
	SizeBytes int64

	// ModifiedAt is the loaded document's modification time.
	ModifiedAt time.Time

	// LastRefreshed is when the snapshot was last rebuilt.
	LastRefreshed time.Time

	// Source describes the backing document source.
	Source string
}

// DocumentHash returns a short hex digest of document text.
// It keys deterministic chunk IDs: identical text, identical hash.
func DocumentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])[:12]
}

// ChunkIDFor builds the identifier for the chunk at the given position
// within a document with the given hash.
func ChunkIDFor(docHash string, position int) string {
	return docHash + "-" + strconv.Itoa(position)
}
