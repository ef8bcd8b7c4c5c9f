package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/silvannet/docdex/core"
	"github.com/silvannet/docdex/storage"
)

// ChunkRepository implements storage.ChunkRepository for BadgerDB.
type ChunkRepository struct {
	backend *Backend
}

var _ storage.ChunkRepository = (*ChunkRepository)(nil)

// NewChunkRepository creates a new ChunkRepository.
func NewChunkRepository(backend *Backend) (*ChunkRepository, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend required")
	}
	return &ChunkRepository{backend: backend}, nil
}

// Close releases repository resources. The backend itself is closed by
// its owner.
func (r *ChunkRepository) Close() error {
	if r.backend.IsClosed() {
		return storage.ErrStorageClosed
	}
	return nil
}

// ListChunkIDs returns the set of all persisted chunk identifiers.
// The iteration is key-only: values (content, vectors) are never read.
func (r *ChunkRepository) ListChunkIDs(ctx context.Context) (map[core.ChunkID]struct{}, error) {
	ids := make(map[core.ChunkID]struct{})
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			ids[chunkIDFromKey(iter.Item().Key())] = struct{}{}
		}
		return nil
	}, false)
	if err != nil {
		return nil, fmt.Errorf("listing chunk identifiers: %w", err)
	}
	return ids, nil
}

// AddChunks persists new chunks under their assigned identifiers in a
// single transaction. An identifier collision fails the whole batch
// with storage.ErrDuplicateChunk before anything is committed.
func (r *ChunkRepository) AddChunks(ctx context.Context, chunks ...*core.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	for _, chunk := range chunks {
		if chunk.ID == "" {
			return fmt.Errorf("%w: %q page %d", storage.ErrUnassignedID, chunk.Source, chunk.Page)
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, chunk := range chunks {
			key := makeChunkKey(chunk.ID)

			_, err := tx.Get(key)
			if err == nil {
				return fmt.Errorf("%w: %s", storage.ErrDuplicateChunk, chunk.ID)
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			if err := tx.Set(key, storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// CountChunks returns the number of persisted chunks.
func (r *ChunkRepository) CountChunks(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(chunkRecordPrefix)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetChunk retrieves a single persisted chunk by identifier.
// Used for inspection and tests; the sync path never reads values.
func (r *ChunkRepository) GetChunk(ctx context.Context, id core.ChunkID) (*core.Chunk, error) {
	var result *core.Chunk
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeChunkKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			result, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Sync delegates the durability barrier to the backend.
func (r *ChunkRepository) Sync(ctx context.Context) error {
	return r.backend.Sync()
}
