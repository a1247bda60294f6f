// Package domain defines the core business entities for Backdrop.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceDocument: A loaded snapshot of the background document
//   - Chunk: A scoreable unit within the document
//   - ScoredChunk: A chunk paired with its query relevance
//   - RetrievalConfig: Retrieval tuning fixed at construction
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
