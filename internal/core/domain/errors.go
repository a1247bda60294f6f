package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates retrieval configuration failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Retrieval Errors.

	// ErrDocumentUnavailable indicates no usable background document.
	// The file is missing, unreadable, or produced zero chunks.
	ErrDocumentUnavailable = errors.New("document unavailable")

	// ErrProcessingFailure indicates a pipeline stage failed while
	// building the snapshot. The document is treated as unavailable.
	ErrProcessingFailure = errors.New("processing failure")

	// ErrNoContext indicates a query matched nothing worth returning.
	// Callers proceed without injected context.
	ErrNoContext = errors.New("no context for query")
)
