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


// Package docdex maintains a persistent, incrementally updated vector
// index over a directory of source documents.
package docdex

import (
	"fmt"
	"log/slog"

	"github.com/silvannet/docdex/ai"
	"github.com/silvannet/docdex/ai/openai"
	"github.com/silvannet/docdex/storage/badger"
)

// Index is an open vector index: a persistent chunk store plus the
// embedding client used to populate it.
type Index struct {
	backend  *badger.Backend
	repo     *badger.ChunkRepository
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures an Index at open time.
type Option func(*indexConfig)

type indexConfig struct {
	aiConfig *ai.Config
	embedder ai.Embedder
}

// WithAIConfig sets the embedding service configuration.
func WithAIConfig(cfg *ai.Config) Option {
	return func(c *indexConfig) {
		c.aiConfig = cfg
	}
}

// WithEmbedder injects an embedder directly, bypassing the OpenAI
// client. Used by tests.
func WithEmbedder(e ai.Embedder) Option {
	return func(c *indexConfig) {
		c.embedder = e
	}
}

// Open opens (or creates) the index at the given directory path.
func Open(path string, opts ...Option) (*Index, error) {
	cfg := &indexConfig{aiConfig: ai.DefaultConfig()}
	for _, opt := range opts {
		opt(cfg)
	}

	backend, err := badger.OpenBackend(path, false)
	if err != nil {
		return nil, fmt.Errorf("opening index store at %s: %w", path, err)
	}

	repo, err := badger.NewChunkRepository(backend)
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("creating chunk repository: %w", err)
	}

	embedder := cfg.embedder
	if embedder == nil {
		embedder, err = openai.NewEmbedder(cfg.aiConfig)
		if err != nil {
			backend.Close()
			return nil, fmt.Errorf("creating embedder: %w", err)
		}
	}

	return &Index{
		backend:  backend,
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default().With("component", "docdex"),
	}, nil
}

// Chunks returns the chunk repository backing the index.
func (ix *Index) Chunks() *badger.ChunkRepository {
	return ix.repo
}

// Embedder returns the embedding client.
func (ix *Index) Embedder() ai.Embedder {
	return ix.embedder
}

// Close flushes and closes the underlying store.
func (ix *Index) Close() error {
	ix.logger.Debug("closing index")
	return ix.backend.Close()
}

// Reset destroys the index at the given path. A missing index is not
// an error. The next Open starts from empty.
func Reset(path string) error {
	return badger.Destroy(path)
}
