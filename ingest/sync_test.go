package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/tmc/langchaingo/schema"

	"github.com/silvannet/docdex/ai/mock"
	"github.com/silvannet/docdex/storage/badger"
)

// staticSource serves a fixed page sequence, mimicking a document
// directory whose contents do not change between runs.
type staticSource struct {
	docs []schema.Document
}

func (s *staticSource) Load(context.Context) ([]schema.Document, error) {
	out := make([]schema.Document, len(s.docs))
	for i, doc := range s.docs {
		md := make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			md[k] = v
		}
		out[i] = schema.Document{PageContent: doc.PageContent, Metadata: md}
	}
	return out, nil
}

func fixedPages(count int) *staticSource {
	s := &staticSource{}
	for i := 0; i < count; i++ {
		s.docs = append(s.docs, schema.Document{
			PageContent: fmt.Sprintf("page %d body text", i),
			Metadata:    map[string]any{"source": "doc.pdf", "page": i},
		})
	}
	return s
}

func newTestPipeline(t *testing.T, source DocumentSource) (*Pipeline, *badger.ChunkRepository, *mock.MockEmbedder) {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	if err != nil {
		t.Fatalf("NewMemoryRepository() error = %v", err)
	}
	t.Cleanup(func() { backend.Close() })

	embedder := mock.NewMockEmbedder()

	p, err := NewPipeline(source, nil, repo, embedder, WithPoolSize(1))
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	t.Cleanup(p.Release)

	return p, repo, embedder
}

func TestPipelineRunAddsAllChunks(t *testing.T) {
	p, repo, _ := newTestPipeline(t, fixedPages(3))

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Existing != 0 || stats.Added != 3 {
		t.Errorf("stats = %+v, want Existing 0 Added 3", stats)
	}

	count, err := repo.CountChunks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 3 {
		t.Errorf("stored %d chunks, want 3", count)
	}
}

func TestPipelineRunIsIdempotent(t *testing.T) {
	p, repo, embedder := newTestPipeline(t, fixedPages(4))

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	embedder.Reset()

	stats, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run() error = %v", err)
	}
	if stats.Existing != 4 || stats.Added != 0 {
		t.Errorf("second run stats = %+v, want Existing 4 Added 0", stats)
	}
	if embedder.CallCount() != 0 {
		t.Errorf("no-op run called the embedder %d times", embedder.CallCount())
	}

	count, err := repo.CountChunks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("stored %d chunks after two runs, want 4", count)
	}
}

func TestPipelineRunAddsOnlyNewChunks(t *testing.T) {
	p, repo, _ := newTestPipeline(t, fixedPages(2))

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}

	grown, err := NewPipeline(fixedPages(5), nil, repo, mock.NewMockEmbedder(), WithPoolSize(1))
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	defer grown.Release()

	stats, err := grown.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if stats.Existing != 2 || stats.Added != 3 {
		t.Errorf("stats = %+v, want Existing 2 Added 3", stats)
	}
}

func TestPipelineRunStoresVectors(t *testing.T) {
	p, repo, _ := newTestPipeline(t, fixedPages(1))

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	chunk, err := repo.GetChunk(context.Background(), "doc.pdf:0:0")
	if err != nil {
		t.Fatalf("GetChunk() error = %v", err)
	}
	if len(chunk.Vector) == 0 {
		t.Error("stored chunk has no vector")
	}
}

type failingSource struct{ err error }

func (s *failingSource) Load(context.Context) ([]schema.Document, error) {
	return nil, s.err
}

func TestPipelineRunWrapsLoadFailure(t *testing.T) {
	cause := errors.New("unreadable file")
	p, _, _ := newTestPipeline(t, &failingSource{err: cause})

	_, err := p.Run(context.Background())
	if !errors.Is(err, ErrLoadFailed) {
		t.Errorf("Run() error = %v, want ErrLoadFailed", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("Run() error = %v, does not wrap the cause", err)
	}
}

func TestNewPipelineGuards(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	if err != nil {
		t.Fatal(err)
	}
	defer backend.Close()
	embedder := mock.NewMockEmbedder()

	if _, err := NewPipeline(nil, nil, repo, embedder); err != ErrSourceRequired {
		t.Errorf("nil source: got %v, want ErrSourceRequired", err)
	}
	if _, err := NewPipeline(fixedPages(1), nil, nil, embedder); err != ErrRepositoryRequired {
		t.Errorf("nil repository: got %v, want ErrRepositoryRequired", err)
	}
	if _, err := NewPipeline(fixedPages(1), nil, repo, nil); err != ErrEmbedderRequired {
		t.Errorf("nil embedder: got %v, want ErrEmbedderRequired", err)
	}
}
