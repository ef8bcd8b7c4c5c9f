package ingest

import "errors"

var (
	// ErrLoadFailed wraps failures while loading or splitting source
	// documents.
	ErrLoadFailed = errors.New("document load failed")

	// ErrSourceRequired is returned when a document source is not provided.
	ErrSourceRequired = errors.New("document source required")

	// ErrRepositoryRequired is returned when a chunk repository is not provided.
	ErrRepositoryRequired = errors.New("chunk repository required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")
)
