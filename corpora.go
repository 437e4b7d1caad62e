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

package corpora

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tutoris/corpora/config"
	"github.com/tutoris/corpora/ingestion"
	"github.com/tutoris/corpora/loader"
	"github.com/tutoris/corpora/registry"
	"github.com/tutoris/corpora/splitter"
	"github.com/tutoris/corpora/storage"
	"github.com/tutoris/corpora/storage/badgersink"
	"github.com/tutoris/corpora/storage/chunkdir"
)

// ErrUnknownSink is returned when the configured sink backend name is
// not recognized.
var ErrUnknownSink = errors.New("unknown sink backend")

// System wires the full ingestion stack from a Config: registry, chunk
// sink, loader, and splitter.
type System struct {
	cfg      config.Config
	registry *registry.Registry
	sink     storage.ChunkSink
	loader   *loader.Loader
	splitter *splitter.Splitter
	logger   *slog.Logger
}

// SystemOption configures a System.
type SystemOption func(*systemOptions)

type systemOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the system and its pipelines.
func WithLogger(logger *slog.Logger) SystemOption {
	return func(o *systemOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewSystem builds a System from the given configuration.
func NewSystem(cfg config.Config, opts ...SystemOption) (*System, error) {
	options := &systemOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	reg, err := registry.Open(cfg.Storage.RegistryPath)
	if err != nil {
		return nil, err
	}

	sink, err := openSink(cfg.Storage)
	if err != nil {
		return nil, err
	}

	sp, err := splitter.New(
		splitter.WithChunkSize(cfg.Ingest.ChunkSize),
		splitter.WithChunkOverlap(cfg.Ingest.ChunkOverlap),
	)
	if err != nil {
		sink.Close()
		return nil, err
	}

	return &System{
		cfg:      cfg,
		registry: reg,
		sink:     sink,
		loader:   loader.New(loader.WithLogger(options.logger)),
		splitter: sp,
		logger:   options.logger,
	}, nil
}

func openSink(cfg config.StorageConfig) (storage.ChunkSink, error) {
	switch cfg.Sink {
	case "", "dir":
		return chunkdir.New(cfg.ChunksDir)
	case "badger":
		return badgersink.Open(cfg.BadgerPath)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, cfg.Sink)
	}
}

// NewPipeline creates an ingestion pipeline over the system's components.
func (s *System) NewPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(s.logger)}, opts...)
	return ingestion.NewPipeline(s.loader, s.splitter, s.registry, s.sink, opts...)
}

// Run executes one ingestion pass over the configured source directory.
func (s *System) Run(ctx context.Context, opts ...ingestion.Option) (*ingestion.Report, error) {
	pipeline, err := s.NewPipeline(opts...)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(ctx, s.cfg.Ingest.SourceDir)
}

// Reset wipes the registry and every persisted chunk.
func (s *System) Reset(ctx context.Context) error {
	return ingestion.Reset(ctx, s.registry, s.sink)
}

// ClearRegistry deletes the processed-file state, leaving chunks in
// place. The next run reprocesses everything.
func (s *System) ClearRegistry() error {
	return s.registry.Clear()
}

// Registry returns the system's processed-file registry.
func (s *System) Registry() *registry.Registry {
	return s.registry
}

// Sink returns the system's chunk sink.
func (s *System) Sink() storage.ChunkSink {
	return s.sink
}

func (s *System) Close() error {
	if err := s.sink.Close(); err != nil {
		s.logger.Error("error closing chunk sink", "err", err)
		return err
	}
	return nil
}
