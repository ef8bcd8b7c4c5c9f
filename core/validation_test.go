package core

import (
	"errors"
	"testing"
)

func TestValidateChunk(t *testing.T) {
	tests := []struct {
		name    string
		chunk   *Chunk
		wantErr error
	}{
		{
			name:  "valid chunk",
			chunk: &Chunk{Source: "data/doc.pdf", Page: 0, Text: "some text"},
		},
		{
			name:  "valid chunk with metadata",
			chunk: &Chunk{Source: "data/doc.pdf", Page: 3, Text: "more text", Metadata: map[string]string{"total_pages": "10"}},
		},
		{
			name:    "nil chunk",
			chunk:   nil,
			wantErr: ErrInvalidChunk,
		},
		{
			name:    "missing source",
			chunk:   &Chunk{Page: 0, Text: "text"},
			wantErr: ErrMissingProvenance,
		},
		{
			name:    "negative page",
			chunk:   &Chunk{Source: "doc.pdf", Page: -1, Text: "text"},
			wantErr: ErrNegativePage,
		},
		{
			name:    "empty text",
			chunk:   &Chunk{Source: "doc.pdf", Page: 0},
			wantErr: ErrEmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateChunk(tt.chunk)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateChunk() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateChunk() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidChunk) {
				t.Fatalf("ValidateChunk() error = %v, should wrap ErrInvalidChunk", err)
			}
		})
	}
}
