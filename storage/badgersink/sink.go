// Package badgersink implements a BadgerDB-backed chunk sink. Units
// are keyed by source digest and chunk index and encoded in the MUS
// binary format, which keeps large corpora compact compared with the
// per-file JSON layout of the chunkdir sink.
package badgersink

import (
	"context"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/tutoris/corpora/core"
	"github.com/tutoris/corpora/storage"
)

// Sink persists chunks in a BadgerDB store it owns.
type Sink struct {
	backend *Backend
}

var _ storage.ChunkSink = (*Sink)(nil)

// Open creates a Sink backed by a BadgerDB database at path. The sink
// owns the database: Close closes it.
func Open(path string) (*Sink, error) {
	backend, err := OpenBackend(path, false)
	if err != nil {
		return nil, err
	}
	return &Sink{backend: backend}, nil
}

// PutChunks writes all chunks in a single transaction.
func (s *Sink) PutChunks(ctx context.Context, chunks ...core.Chunk) error {
	if s.backend.IsClosed() {
		return storage.ErrSinkClosed
	}
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for i := range chunks {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunk := &chunks[i]
			if err := core.ValidateChunk(chunk); err != nil {
				return err
			}
			if err := tx.Set(makeChunkKey(chunk), storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	return nil
}

// GetChunk retrieves one chunk unit by source digest and index.
func (s *Sink) GetChunk(_ context.Context, source core.Digest, index int) (*core.Chunk, error) {
	if s.backend.IsClosed() {
		return nil, storage.ErrSinkClosed
	}
	var chunk *core.Chunk
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		ref := core.Chunk{Metadata: core.Metadata{SourceID: source}, Index: index}
		item, err := tx.Get(makeChunkKey(&ref))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			chunk, err = storage.UnmarshalChunk(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return chunk, nil
}

// DeleteSource removes every unit belonging to the source digest.
func (s *Sink) DeleteSource(_ context.Context, source core.Digest) error {
	if s.backend.IsClosed() {
		return storage.ErrSinkClosed
	}
	if source == "" {
		return nil
	}
	if err := s.backend.DropPrefix(makeSourcePrefix(source)); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	return nil
}

// Count reports the number of persisted units.
func (s *Sink) Count(_ context.Context) (int, error) {
	if s.backend.IsClosed() {
		return 0, storage.ErrSinkClosed
	}
	count := 0
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeScanPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Reset removes every persisted unit.
func (s *Sink) Reset(_ context.Context) error {
	if s.backend.IsClosed() {
		return storage.ErrSinkClosed
	}
	if err := s.backend.DropPrefix(makeScanPrefix()); err != nil {
		return fmt.Errorf("%w: %w", storage.ErrPersistFailed, err)
	}
	return nil
}

// Close closes the owned BadgerDB store.
func (s *Sink) Close() error {
	return s.backend.Close()
}
