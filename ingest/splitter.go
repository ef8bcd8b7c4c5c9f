package ingest

import (
	"fmt"
	"strconv"

	"github.com/tmc/langchaingo/schema"
	"github.com/tmc/langchaingo/textsplitter"

	"github.com/silvannet/docdex/core"
)

// Split defaults, in characters.
const (
	DefaultChunkSize    = 800
	DefaultChunkOverlap = 80
)

// Splitter splits ordered page units into overlapping chunks and
// converts them to typed core chunks at the boundary. Split order and
// metadata are preserved: every chunk inherits its page's provenance.
type Splitter struct {
	inner textsplitter.RecursiveCharacter
}

// NewSplitter creates a recursive-character splitter with the given
// chunk size and overlap. Non-positive values fall back to defaults.
func NewSplitter(chunkSize, chunkOverlap int) *Splitter {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkOverlap < 0 {
		chunkOverlap = DefaultChunkOverlap
	}
	return &Splitter{
		inner: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
		),
	}
}

// Split splits the page units and validates provenance on every
// resulting chunk. Pages missing source or page metadata are rejected,
// not tagged with a placeholder.
func (s *Splitter) Split(docs []schema.Document) ([]*core.Chunk, error) {
	split, err := textsplitter.SplitDocuments(s.inner, docs)
	if err != nil {
		return nil, fmt.Errorf("splitting documents: %w", err)
	}

	chunks := make([]*core.Chunk, 0, len(split))
	for _, doc := range split {
		chunk, err := chunkFromDocument(doc)
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// chunkFromDocument converts one split fragment into a typed chunk.
// This is the ingestion boundary: required provenance is enforced here.
func chunkFromDocument(doc schema.Document) (*core.Chunk, error) {
	source, ok := doc.Metadata["source"].(string)
	if !ok || source == "" {
		return nil, fmt.Errorf("%w: source", core.ErrMissingProvenance)
	}

	rawPage, ok := doc.Metadata["page"]
	if !ok {
		return nil, fmt.Errorf("%w: page (source %q)", core.ErrMissingProvenance, source)
	}
	page, err := pageNumber(rawPage)
	if err != nil {
		return nil, fmt.Errorf("%w: page (source %q): %w", core.ErrMissingProvenance, source, err)
	}

	chunk := &core.Chunk{
		Source:   source,
		Page:     page,
		Text:     doc.PageContent,
		Metadata: extraMetadata(doc.Metadata),
	}
	if err := core.ValidateChunk(chunk); err != nil {
		return nil, err
	}
	return chunk, nil
}

// pageNumber coerces the loader-supplied page value to an int.
func pageNumber(v any) (int, error) {
	switch p := v.(type) {
	case int:
		return p, nil
	case int64:
		return int(p), nil
	case float64:
		return int(p), nil
	case string:
		return strconv.Atoi(p)
	default:
		return 0, fmt.Errorf("unsupported page value %v (%T)", v, v)
	}
}

// extraMetadata carries over any additional provenance as strings.
// The source and page keys live in typed fields and are excluded.
func extraMetadata(md map[string]any) map[string]string {
	var extra map[string]string
	for k, v := range md {
		if k == "source" || k == "page" {
			continue
		}
		if extra == nil {
			extra = make(map[string]string)
		}
		extra[k] = fmt.Sprint(v)
	}
	return extra
}
