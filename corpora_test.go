package corpora

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutoris/corpora/config"
	"github.com/tutoris/corpora/ingestion"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	base := t.TempDir()

	cfg := config.Default()
	cfg.Ingest.SourceDir = filepath.Join(base, "raw")
	cfg.Ingest.ChunkSize = 200
	cfg.Ingest.ChunkOverlap = 20
	cfg.Storage.RegistryPath = filepath.Join(base, "processed", "ingestion_state.json")
	cfg.Storage.ChunksDir = filepath.Join(base, "processed", "chunks")
	cfg.Storage.BadgerPath = filepath.Join(base, "processed", "chunks.badger")

	require.NoError(t, os.MkdirAll(cfg.Ingest.SourceDir, 0o755))
	return cfg
}

func TestNewSystem(t *testing.T) {
	t.Run("dir sink", func(t *testing.T) {
		sys, err := NewSystem(testConfig(t))
		require.NoError(t, err)
		require.NotNil(t, sys)
		defer sys.Close()

		assert.NotNil(t, sys.Registry())
		assert.NotNil(t, sys.Sink())
	})

	t.Run("badger sink", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Storage.Sink = "badger"

		sys, err := NewSystem(cfg)
		require.NoError(t, err)
		defer sys.Close()
	})

	t.Run("unknown sink", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Storage.Sink = "postgres"

		sys, err := NewSystem(cfg)
		assert.ErrorIs(t, err, ErrUnknownSink)
		assert.Nil(t, sys)
	})

	t.Run("invalid split config", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Ingest.ChunkOverlap = cfg.Ingest.ChunkSize + 1

		sys, err := NewSystem(cfg)
		assert.Error(t, err)
		assert.Nil(t, sys)
	})
}

func TestSystem_Run(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Ingest.SourceDir, "note.txt"),
		[]byte("a short note\n"), 0o644))

	sys, err := NewSystem(cfg)
	require.NoError(t, err)
	defer sys.Close()

	report, err := sys.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Done)

	// Second pass over unchanged content is a no-op.
	report, err = sys.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)

	// A forced pass reprocesses.
	report, err = sys.Run(context.Background(), ingestion.WithForce(true))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Done)
}

func TestSystem_ResetAndClear(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(cfg.Ingest.SourceDir, "note.txt"),
		[]byte("a short note\n"), 0o644))

	sys, err := NewSystem(cfg)
	require.NoError(t, err)
	defer sys.Close()

	_, err = sys.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, sys.Registry().Len())

	require.NoError(t, sys.ClearRegistry())
	assert.Equal(t, 0, sys.Registry().Len())

	_, err = sys.Run(context.Background())
	require.NoError(t, err)

	require.NoError(t, sys.Reset(context.Background()))
	assert.Equal(t, 0, sys.Registry().Len())
	count, err := sys.Sink().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
