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

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/silvannet/docdex"
	"github.com/silvannet/docdex/ai"
	"github.com/silvannet/docdex/ingest"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "docdex",
		Usage: "Populate a persistent vector index from a document directory",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"s"},
				Usage:   "Directory containing source documents",
				Value:   "data",
				EnvVars: []string{"DOCDEX_DATA"},
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to the index database directory",
				Value:   "index",
				EnvVars: []string{"DOCDEX_DB"},
			},
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Destroy the index before populating",
			},
			&cli.StringFlag{
				Name:    "embedding-host",
				Usage:   "Embedding service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"DOCDEX_EMBEDDING_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "nomic-embed-text",
				EnvVars: []string{"DOCDEX_EMBEDDING_MODEL"},
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "Chunk size in characters",
				Value: ingest.DefaultChunkSize,
			},
			&cli.IntFlag{
				Name:  "chunk-overlap",
				Usage: "Chunk overlap in characters",
				Value: ingest.DefaultChunkOverlap,
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "Embedding worker pool size (0 = auto)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Action: populateCommand,
	}
}

func populateCommand(c *cli.Context) error {
	ctx := context.Background()
	dbPath := c.String("db")

	if c.Bool("reset") {
		slog.Info("clearing index", "db", dbPath)
		if err := docdex.Reset(dbPath); err != nil {
			return fmt.Errorf("failed to reset index: %w", err)
		}
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	index, err := docdex.Open(dbPath, docdex.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer index.Close()

	pipeline, err := ingest.NewPipeline(
		ingest.NewDirLoader(c.String("data")),
		ingest.NewSplitter(c.Int("chunk-size"), c.Int("chunk-overlap")),
		index.Chunks(),
		index.Embedder(),
		ingest.WithPoolSize(c.Int("pool-size")),
	)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	stats, err := pipeline.Run(ctx)
	if err != nil {
		return fmt.Errorf("population failed: %w", err)
	}

	slog.Info("population complete",
		"existing", stats.Existing,
		"added", stats.Added)
	return nil
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
