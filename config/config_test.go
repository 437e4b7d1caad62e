package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "data/raw", cfg.Ingest.SourceDir)
	assert.Equal(t, 1000, cfg.Ingest.ChunkSize)
	assert.Equal(t, 200, cfg.Ingest.ChunkOverlap)
	assert.Equal(t, 1, cfg.Ingest.Workers)
	assert.Equal(t, "dir", cfg.Storage.Sink)
	assert.Equal(t, "data/processed/ingestion_state.json", cfg.Storage.RegistryPath)
}

func TestLoad_MissingFileKeepsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpora.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ingest]
source_dir = "/srv/corpus"
chunk_size = 512
workers = 4

[storage]
sink = "badger"
badger_path = "/srv/chunks.badger"
`), 0o644))

	cfg := Load(path)
	assert.Equal(t, "/srv/corpus", cfg.Ingest.SourceDir)
	assert.Equal(t, 512, cfg.Ingest.ChunkSize)
	assert.Equal(t, 200, cfg.Ingest.ChunkOverlap) // untouched default
	assert.Equal(t, 4, cfg.Ingest.Workers)
	assert.Equal(t, "badger", cfg.Storage.Sink)
	assert.Equal(t, "/srv/chunks.badger", cfg.Storage.BadgerPath)
}

func TestLoad_EnvWinsOverTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpora.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[ingest]
chunk_size = 512
`), 0o644))

	t.Setenv("CORPORA_CHUNK_SIZE", "256")
	t.Setenv("CORPORA_CHUNK_OVERLAP", "32")
	t.Setenv("CORPORA_SOURCE_DIR", "/env/corpus")

	cfg := Load(path)
	assert.Equal(t, 256, cfg.Ingest.ChunkSize)
	assert.Equal(t, 32, cfg.Ingest.ChunkOverlap)
	assert.Equal(t, "/env/corpus", cfg.Ingest.SourceDir)
}

func TestLoad_BadEnvValuesIgnored(t *testing.T) {
	t.Setenv("CORPORA_CHUNK_SIZE", "not-a-number")
	t.Setenv("CORPORA_WORKERS", "-3")

	cfg := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, 1000, cfg.Ingest.ChunkSize)
	assert.Equal(t, 1, cfg.Ingest.Workers)
}
