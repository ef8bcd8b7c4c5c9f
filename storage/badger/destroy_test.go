package badger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDestroyMissingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never-created")
	if err := Destroy(path); err != nil {
		t.Fatalf("Destroy on missing path should be a no-op, got %v", err)
	}
}

func TestDestroyRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-store")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := Destroy(path); err == nil {
		t.Fatal("Destroy should refuse a non-directory path")
	}
}

func TestDestroyCompleteness(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	ctx := context.Background()

	backend, err := OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	repo, err := NewChunkRepository(backend)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	if err := repo.AddChunks(ctx, testChunk("data/doc.pdf", 0, 0, "doomed")); err != nil {
		t.Fatalf("Failed to add chunk: %v", err)
	}
	if err := repo.Sync(ctx); err != nil {
		t.Fatalf("Failed to sync: %v", err)
	}
	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}

	if err := Destroy(dir); err != nil {
		t.Fatalf("Failed to destroy store: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("Expected store directory to be removed")
	}

	// A fresh store at the same location starts empty.
	backend, err = OpenBackend(dir, false)
	if err != nil {
		t.Fatalf("Failed to reopen backend: %v", err)
	}
	defer backend.Close()
	repo, err = NewChunkRepository(backend)
	if err != nil {
		t.Fatalf("Failed to recreate repository: %v", err)
	}

	ids, err := repo.ListChunkIDs(ctx)
	if err != nil {
		t.Fatalf("Failed to list IDs: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("Expected empty store after destroy, got %d IDs", len(ids))
	}
}
