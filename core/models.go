package core

import "strconv"

// idDelimiter joins the identifier components. Identifiers look like
// "data/monopoly.pdf:6:2" (source, page, chunk index).
const idDelimiter = ":"

// ChunkID is the deterministic identifier of a chunk within the index.
// It is derived purely from the chunk's provenance and its position in
// the split order, so re-running ingestion over unchanged documents
// always reproduces the same identifiers.
type ChunkID string

// NewChunkID builds the identifier for the index-th chunk of a page.
func NewChunkID(source string, page, index int) ChunkID {
	return ChunkID(PageKey(source, page) + idDelimiter + strconv.Itoa(index))
}

// PageKey returns the grouping key shared by all chunks split from the
// same page of the same document.
func PageKey(source string, page int) string {
	return source + idDelimiter + strconv.Itoa(page)
}

// Chunk is a unit of text produced by splitting a document page.
// It is the unit of embedding and storage.
//
// Source and Page are required provenance; chunks missing either are
// rejected at the ingestion boundary rather than tagged with a
// placeholder. ID is empty until the identity pass assigns it, and
// Vector is empty until the sync engine embeds the chunk.
type Chunk struct {
	ID       ChunkID
	Source   string
	Page     int
	Text     string
	Vector   []float32
	Metadata map[string]string // optional extra provenance, opaque to the core
}

// PageKey returns the chunk's page grouping key.
func (c *Chunk) PageKey() string {
	return PageKey(c.Source, c.Page)
}
