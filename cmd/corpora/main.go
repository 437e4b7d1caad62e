// Copyright 2026 Tutoris Labs
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
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tutoris/corpora"
	"github.com/tutoris/corpora/config"
	"github.com/tutoris/corpora/ingestion"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "corpora",
		Usage: "Corpus ingestion pipeline: load, chunk, and persist raw source files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "ingest",
				Usage:  "Run one ingestion pass over the source directory",
				Action: ingestCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to TOML configuration file",
						Value:   "corpora.toml",
					},
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "Source directory (overrides config)",
					},
					&cli.StringFlag{
						Name:  "registry",
						Usage: "Registry file path (overrides config)",
					},
					&cli.StringFlag{
						Name:  "sink",
						Usage: "Chunk sink backend: dir or badger (overrides config)",
					},
					&cli.StringFlag{
						Name:  "chunks-dir",
						Usage: "Output directory for the dir sink (overrides config)",
					},
					&cli.IntFlag{
						Name:  "chunk-size",
						Usage: "Maximum chunk size in characters (overrides config)",
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Overlap between consecutive chunks in characters (overrides config)",
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Number of files processed in parallel (overrides config)",
					},
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Reprocess every file regardless of registry state",
					},
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "Delete the registry and exit without ingesting",
					},
					&cli.BoolFlag{
						Name:  "reset",
						Usage: "Delete the registry and all persisted chunks, then ingest",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func ingestCommand(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.Load(c.String("config"))
	applyFlags(c, &cfg)

	system, err := corpora.NewSystem(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer system.Close()

	if c.Bool("clear") {
		if err := system.ClearRegistry(); err != nil {
			return fmt.Errorf("failed to clear registry: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Registry cleared: %s\n", cfg.Storage.RegistryPath)
		return nil
	}

	if c.Bool("reset") {
		if err := system.Reset(ctx); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Registry and chunk store reset")
	}

	fmt.Fprintf(os.Stderr, "Source: %s\n", cfg.Ingest.SourceDir)
	fmt.Fprintf(os.Stderr, "Chunk size: %d, overlap: %d\n", cfg.Ingest.ChunkSize, cfg.Ingest.ChunkOverlap)
	fmt.Fprintln(os.Stderr)

	report, err := system.Run(ctx,
		ingestion.WithForce(c.Bool("force")),
		ingestion.WithWorkers(cfg.Ingest.Workers),
	)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Done: %d, skipped: %d, failed: %d\n",
		report.Done, report.Skipped, report.Failed)
	for _, failure := range report.Failures() {
		fmt.Fprintf(os.Stderr, "  failed (%s): %s: %v\n", failure.Kind, failure.Path, failure.Err)
	}

	// Per-file failures are reported, not fatal: the run itself completed.
	return nil
}

func applyFlags(c *cli.Context, cfg *config.Config) {
	if v := c.String("source"); v != "" {
		cfg.Ingest.SourceDir = v
	}
	if v := c.String("registry"); v != "" {
		cfg.Storage.RegistryPath = v
	}
	if v := c.String("sink"); v != "" {
		cfg.Storage.Sink = v
	}
	if v := c.String("chunks-dir"); v != "" {
		cfg.Storage.ChunksDir = v
	}
	if v := c.Int("chunk-size"); v > 0 {
		cfg.Ingest.ChunkSize = v
	}
	if c.IsSet("chunk-overlap") {
		cfg.Ingest.ChunkOverlap = c.Int("chunk-overlap")
	}
	if v := c.Int("workers"); v > 0 {
		cfg.Ingest.Workers = v
	}
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
