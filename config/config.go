// Package config loads the corpora configuration from a TOML file with
// environment variable overrides.
package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Ingest  IngestConfig  `toml:"ingest"`
	Storage StorageConfig `toml:"storage"`
}

type IngestConfig struct {
	// SourceDir is the root of the raw corpus tree.
	SourceDir    string `toml:"source_dir"`
	ChunkSize    int    `toml:"chunk_size"`
	ChunkOverlap int    `toml:"chunk_overlap"`
	// Workers is the number of files processed in parallel.
	Workers int `toml:"workers"`
}

type StorageConfig struct {
	// RegistryPath is the JSON file recording processed-file state.
	RegistryPath string `toml:"registry_path"`
	// Sink selects the chunk backend: "dir" or "badger".
	Sink string `toml:"sink"`
	// ChunksDir is the output directory for the "dir" sink.
	ChunksDir string `toml:"chunks_dir"`
	// BadgerPath is the database directory for the "badger" sink.
	BadgerPath string `toml:"badger_path"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Ingest: IngestConfig{
			SourceDir:    "data/raw",
			ChunkSize:    1000,
			ChunkOverlap: 200,
			Workers:      1,
		},
		Storage: StorageConfig{
			RegistryPath: "data/processed/ingestion_state.json",
			Sink:         "dir",
			ChunksDir:    "data/processed/chunks",
			BadgerPath:   "data/processed/chunks.badger",
		},
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "corpora.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	// Env overrides
	if v := os.Getenv("CORPORA_SOURCE_DIR"); v != "" {
		cfg.Ingest.SourceDir = v
	}
	if v, err := strconv.Atoi(os.Getenv("CORPORA_CHUNK_SIZE")); err == nil && v > 0 {
		cfg.Ingest.ChunkSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("CORPORA_CHUNK_OVERLAP")); err == nil && v >= 0 {
		cfg.Ingest.ChunkOverlap = v
	}
	if v, err := strconv.Atoi(os.Getenv("CORPORA_WORKERS")); err == nil && v > 0 {
		cfg.Ingest.Workers = v
	}
	if v := os.Getenv("CORPORA_REGISTRY_PATH"); v != "" {
		cfg.Storage.RegistryPath = v
	}
	if v := os.Getenv("CORPORA_SINK"); v != "" {
		cfg.Storage.Sink = v
	}
	if v := os.Getenv("CORPORA_CHUNKS_DIR"); v != "" {
		cfg.Storage.ChunksDir = v
	}
	if v := os.Getenv("CORPORA_BADGER_PATH"); v != "" {
		cfg.Storage.BadgerPath = v
	}

	return cfg
}
