package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"

	"github.com/silvannet/docdex/ai"
	"github.com/silvannet/docdex/storage"
)

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithPoolSize sets the embedding worker pool size. Values below 1
// select the default of half the CPU count.
func WithPoolSize(size int) PipelineOption {
	return func(p *Pipeline) {
		p.poolSize = size
	}
}

// WithBatchSize sets how many chunk texts are embedded per pool task.
func WithBatchSize(size int) PipelineOption {
	return func(p *Pipeline) {
		p.batchSize = size
	}
}

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline runs the full index-population job: load, split, identify,
// and sync against the store. One Pipeline owns one worker pool; call
// Release when done with it.
type Pipeline struct {
	source   DocumentSource
	splitter *Splitter
	repo     storage.ChunkRepository
	embedder ai.Embedder

	poolSize  int
	batchSize int
	pool      *ants.Pool
	logger    *slog.Logger
}

// NewPipeline creates a pipeline over the given source, splitter,
// repository and embedder.
func NewPipeline(source DocumentSource, splitter *Splitter, repo storage.ChunkRepository, embedder ai.Embedder, opts ...PipelineOption) (*Pipeline, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}
	if repo == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if splitter == nil {
		splitter = NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
	}

	p := &Pipeline{
		source:   source,
		splitter: splitter,
		repo:     repo,
		embedder: embedder,
		logger:   slog.Default().With("component", "ingest-pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.poolSize < 1 {
		p.poolSize = max(runtime.NumCPU()/2, 1)
	}

	pool, err := ants.NewPool(p.poolSize, ants.WithNonblocking(false))
	if err != nil {
		return nil, fmt.Errorf("creating embedding pool: %w", err)
	}
	p.pool = pool

	return p, nil
}

// Run executes one pass: unchanged documents cost one identifier scan
// of the store and nothing else. Safe to call repeatedly; each run
// reconciles against the store's current contents.
func (p *Pipeline) Run(ctx context.Context) (SyncStats, error) {
	docs, err := p.source.Load(ctx)
	if err != nil {
		return SyncStats{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	chunks, err := p.splitter.Split(docs)
	if err != nil {
		return SyncStats{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	p.logger.Info("split documents", "pages", len(docs), "chunks", len(chunks))

	if err := AssignChunkIDs(chunks); err != nil {
		return SyncStats{}, fmt.Errorf("assigning chunk ids: %w", err)
	}

	s := &syncer{
		repo:     p.repo,
		embedder: newBatchEmbedder(p.embedder, p.pool, p.batchSize, p.logger),
		logger:   p.logger,
	}
	return s.sync(ctx, chunks)
}

// Release shuts down the embedding worker pool.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
