// Package chunkdir implements a filesystem chunk sink: one JSON file
// per chunk, named <source_id>-<chunk_index>.json, containing the
// chunk content and its full metadata. The layout is deliberately
// human-inspectable and trivially consumable by a downstream stage.
package chunkdir

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tutoris/corpora/core"
	"github.com/tutoris/corpora/storage"
)

// Sink persists chunks as JSON files under a single directory.
type Sink struct {
	dir string
}

var _ storage.ChunkSink = (*Sink)(nil)

// unit is the on-disk shape of one chunk.
type unit struct {
	Content    string        `json:"content"`
	Metadata   core.Metadata `json:"metadata"`
	ChunkIndex int           `json:"chunk_index"`
}

// New creates a Sink rooted at dir, creating the directory if needed.
func New(dir string) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	return &Sink{dir: dir}, nil
}

// Dir returns the sink's root directory.
func (s *Sink) Dir() string { return s.dir }

// PutChunks writes one JSON file per chunk. Writing an existing unit
// name overwrites it.
func (s *Sink) PutChunks(ctx context.Context, chunks ...core.Chunk) error {
	for i := range chunks {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk := &chunks[i]
		if err := core.ValidateChunk(chunk); err != nil {
			return err
		}

		data, err := json.MarshalIndent(unit{
			Content:    chunk.Content,
			Metadata:   chunk.Metadata,
			ChunkIndex: chunk.Index,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
		}

		path := filepath.Join(s.dir, chunk.Key()+".json")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
		}
	}
	return nil
}

// DeleteSource removes every unit file belonging to the source digest.
func (s *Sink) DeleteSource(ctx context.Context, source core.Digest) error {
	if source == "" {
		return nil
	}
	matches, err := filepath.Glob(filepath.Join(s.dir, string(source)+"-*.json"))
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
		}
	}
	return nil
}

// Count reports the number of unit files in the sink.
func (s *Sink) Count(_ context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
			count++
		}
	}
	return count, nil
}

// Reset removes the sink directory and recreates it empty.
func (s *Sink) Reset(_ context.Context) error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	return nil
}

// Close is a no-op; the sink holds no open resources.
func (s *Sink) Close() error { return nil }
