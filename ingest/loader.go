package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/schema"
)

// DocumentSource produces an ordered sequence of page-like units with
// at least "source" (string) and "page" (int) metadata. The sequence
// must group units by document, then by page, non-interleaved; the
// identity pass depends on it.
type DocumentSource interface {
	Load(ctx context.Context) ([]schema.Document, error)
}

// DirLoader loads every supported document under a directory, in
// lexical path order. PDF files yield one unit per page (1-based, as
// reported by the PDF loader); plain text and markdown files yield a
// single unit with page 0. The "source" metadata is the file path as
// walked, e.g. "data/monopoly.pdf".
type DirLoader struct {
	dir    string
	logger *slog.Logger
}

var _ DocumentSource = (*DirLoader)(nil)

// NewDirLoader creates a loader over the given document directory.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{
		dir:    dir,
		logger: slog.Default().With("component", "dir-loader"),
	}
}

// Load walks the directory and loads every supported file. An empty or
// missing-of-documents directory yields an empty sequence; an
// unreadable file aborts the load.
func (l *DirLoader) Load(ctx context.Context) ([]schema.Document, error) {
	var docs []schema.Document

	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		var loaded []schema.Document
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf":
			loaded, err = l.loadPDF(ctx, path)
		case ".txt", ".md":
			loaded, err = l.loadText(ctx, path)
		default:
			l.logger.Debug("skipping unsupported file", "path", path)
			return nil
		}
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}

		l.logger.Debug("loaded document", "path", path, "pages", len(loaded))
		docs = append(docs, loaded...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.dir, err)
	}

	l.logger.Info("loaded documents", "dir", l.dir, "pages", len(docs))
	return docs, nil
}

// loadPDF loads one unit per PDF page and tags each with its source path.
func (l *DirLoader) loadPDF(ctx context.Context, path string) ([]schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	docs, err := documentloaders.NewPDF(f, info.Size()).Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].Metadata == nil {
			docs[i].Metadata = map[string]any{}
		}
		docs[i].Metadata["source"] = path
	}
	return docs, nil
}

// loadText loads a text-like file as a single page-0 unit.
func (l *DirLoader) loadText(ctx context.Context, path string) ([]schema.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	docs, err := documentloaders.NewText(f).Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range docs {
		if docs[i].Metadata == nil {
			docs[i].Metadata = map[string]any{}
		}
		docs[i].Metadata["source"] = path
		docs[i].Metadata["page"] = 0
	}
	return docs, nil
}
