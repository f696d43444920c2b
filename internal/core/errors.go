// ABOUTME: Sentinel errors for the retrieval core
// ABOUTME: Matched with errors.Is; providers and the core wrap these with %w
package core

import "errors"

var (
	// ErrInvalidConfig reports bad chunking or ranking parameters.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrExtraction reports an unreadable or corrupt source document.
	ErrExtraction = errors.New("document extraction failed")

	// ErrEmbeddingProvider reports a transport or model failure from the
	// embedding provider. Index construction is all-or-nothing, so a single
	// occurrence aborts the whole build.
	ErrEmbeddingProvider = errors.New("embedding provider failed")

	// ErrDimensionMismatch reports vectors of unequal length where one
	// uniform dimensionality is required.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrGenerationProvider reports a failure from the generation provider.
	ErrGenerationProvider = errors.New("generation provider failed")
)
