// Copyright 2025 Silvan Networks
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ingest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/silvannet/docdex/core"
	"github.com/silvannet/docdex/storage"
)

// SyncStats reports what one sync pass did.
type SyncStats struct {
	// Existing is the number of incoming chunks already present in the
	// store and skipped.
	Existing int
	// Added is the number of chunks embedded and inserted.
	Added int
}

// syncer reconciles an identified chunk sequence against the store:
// chunks whose identifiers are already present are skipped, the rest
// are embedded and inserted. Existing entries are never updated or
// deleted.
type syncer struct {
	repo     storage.ChunkRepository
	embedder *batchEmbedder
	logger   *slog.Logger
}

// sync runs one add-only reconciliation pass. When every incoming chunk
// is already stored it returns without calling the embedder or touching
// the write path.
func (s *syncer) sync(ctx context.Context, chunks []*core.Chunk) (SyncStats, error) {
	existing, err := s.repo.ListChunkIDs(ctx)
	if err != nil {
		return SyncStats{}, fmt.Errorf("listing stored chunk ids: %w", err)
	}
	s.logger.Info("existing chunks in store", "count", len(existing))

	var (
		stats SyncStats
		fresh []*core.Chunk
	)
	for _, chunk := range chunks {
		if _, ok := existing[chunk.ID]; ok {
			stats.Existing++
			continue
		}
		fresh = append(fresh, chunk)
	}

	if len(fresh) == 0 {
		s.logger.Info("no new chunks to add")
		return stats, nil
	}
	s.logger.Info("adding new chunks", "count", len(fresh))

	texts := make([]string, len(fresh))
	for i, chunk := range fresh {
		texts[i] = chunk.Text
	}

	vectors, err := s.embedder.embedAll(ctx, texts)
	if err != nil {
		return stats, fmt.Errorf("embedding new chunks: %w", err)
	}
	for i, chunk := range fresh {
		chunk.Vector = vectors[i]
	}

	if err := s.repo.AddChunks(ctx, fresh...); err != nil {
		return stats, fmt.Errorf("inserting new chunks: %w", err)
	}
	if err := s.repo.Sync(ctx); err != nil {
		return stats, fmt.Errorf("syncing store: %w", err)
	}

	stats.Added = len(fresh)
	return stats, nil
}
