package storage

import (
	"context"

	"github.com/silvannet/docdex/core"
)

// ChunkRepository provides the persistence operations required by the
// incremental sync engine.
type ChunkRepository interface {
	// ListChunkIDs returns the set of all persisted chunk identifiers.
	// Implementations must answer this from keys alone, without reading
	// stored content or vectors.
	ListChunkIDs(ctx context.Context) (map[core.ChunkID]struct{}, error)

	// AddChunks persists new chunks under their caller-supplied
	// identifiers, preserving the given order. Identifiers must already
	// be assigned; an identifier that is already persisted fails the
	// whole batch with ErrDuplicateChunk.
	AddChunks(ctx context.Context, chunks ...*core.Chunk) error

	// CountChunks returns the number of persisted chunks.
	CountChunks(ctx context.Context) (int, error)

	// Sync durably flushes all pending writes to the backing storage.
	Sync(ctx context.Context) error

	// Close closes the repository and releases resources.
	Close() error
}
