package storage

import (
	"context"

	"github.com/tutoris/corpora/core"
)

// ChunkSink persists chunks as discrete, uniquely named units for a
// downstream embedding/indexing stage. Implementations must be
// thread-safe and support concurrent writers.
type ChunkSink interface {
	// PutChunks persists one or more chunks. Unit names derive from
	// Chunk.Key, so writing the same chunk twice overwrites in place.
	PutChunks(ctx context.Context, chunks ...core.Chunk) error

	// DeleteSource removes every unit belonging to a source digest.
	// Used to supersede the chunks of an old content version when a
	// file is reprocessed. Deleting an unknown digest is not an error.
	DeleteSource(ctx context.Context, source core.Digest) error

	// Count reports the number of persisted units.
	Count(ctx context.Context) (int, error)

	// Reset removes every persisted unit. Used only for an explicit
	// full reset, never implicitly.
	Reset(ctx context.Context) error

	// Close releases the backing store.
	Close() error
}
