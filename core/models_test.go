package core

import (
	"testing"
)

func TestNewChunkID(t *testing.T) {
	tests := []struct {
		name   string
		source string
		page   int
		index  int
		want   ChunkID
	}{
		{
			name:   "pdf page chunk",
			source: "data/monopoly.pdf",
			page:   6,
			index:  2,
			want:   ChunkID("data/monopoly.pdf:6:2"),
		},
		{
			name:   "first chunk of first page",
			source: "doc.pdf",
			page:   0,
			index:  0,
			want:   ChunkID("doc.pdf:0:0"),
		},
		{
			name:   "text file unit",
			source: "notes/readme.md",
			page:   0,
			index:  4,
			want:   ChunkID("notes/readme.md:0:4"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewChunkID(tt.source, tt.page, tt.index)
			if got != tt.want {
				t.Errorf("NewChunkID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewChunkID_Deterministic(t *testing.T) {
	id1 := NewChunkID("a.pdf", 3, 7)
	id2 := NewChunkID("a.pdf", 3, 7)

	if id1 != id2 {
		t.Errorf("NewChunkID() produced different IDs for same input: %q vs %q", id1, id2)
	}
}

func TestChunk_PageKey(t *testing.T) {
	chunk := &Chunk{Source: "data/ticket_to_ride.pdf", Page: 12}

	if got, want := chunk.PageKey(), "data/ticket_to_ride.pdf:12"; got != want {
		t.Errorf("PageKey() = %q, want %q", got, want)
	}

	if chunk.PageKey() != PageKey(chunk.Source, chunk.Page) {
		t.Error("Chunk.PageKey() disagrees with PageKey()")
	}
}
