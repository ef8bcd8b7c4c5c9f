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
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/silvannet/docdex/ai"
)

const defaultEmbedBatchSize = 32

// batchEmbedder fans embedding work out over a bounded pool. Each batch
// writes into a disjoint range of the result slice, so the output order
// matches the input order regardless of completion order.
type batchEmbedder struct {
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

func newBatchEmbedder(embedder ai.Embedder, pool *ants.Pool, batchSize int, logger *slog.Logger) *batchEmbedder {
	if batchSize <= 0 {
		batchSize = defaultEmbedBatchSize
	}
	return &batchEmbedder{
		embedder:  embedder,
		pool:      pool,
		batchSize: batchSize,
		logger:    logger,
	}
}

// embedAll embeds every text and returns the vectors in input order.
func (b *batchEmbedder) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	vectors := make([][]float32, len(texts))

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for start := 0; start < len(texts); start += b.batchSize {
		end := min(start+b.batchSize, len(texts))

		wg.Add(1)
		task := func(start, end int) func() {
			return func() {
				defer wg.Done()

				got, err := b.embedder.EmbedTexts(ctx, texts[start:end])
				if err == nil && len(got) != end-start {
					err = fmt.Errorf("embedder returned %d vectors for %d texts", len(got), end-start)
				}
				if err != nil {
					mu.Lock()
					errs = append(errs, fmt.Errorf("embedding batch [%d:%d]: %w", start, end, err))
					mu.Unlock()
					return
				}
				copy(vectors[start:end], got)
			}
		}(start, end)

		if err := b.pool.Submit(task); err != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, fmt.Errorf("submitting embedding batch: %w", err))
			mu.Unlock()
			break
		}
	}

	wg.Wait()

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	b.logger.Debug("embedded texts", "count", len(texts), "batch_size", b.batchSize)
	return vectors, nil
}
