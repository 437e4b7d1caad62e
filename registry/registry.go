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


// Package registry persists the processing state of source files: for
// each file path, the content digest last processed, when, and how many
// chunks resulted. The backing store is a single JSON file so the state
// stays human-inspectable and survives process restarts.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/tutoris/corpora/core"
)

// Entry records one successful processing outcome for a file path.
type Entry struct {
	Digest      core.Digest `json:"digest"`
	ProcessedAt time.Time   `json:"processed_at"`
	Chunks      int         `json:"chunks"`
}

// Registry is a durable path -> Entry map. It is keyed by file path and
// compares digests, so a renamed but unchanged file is treated as new
// content. Safe for concurrent use; every mutation is flushed to disk
// before the call returns.
type Registry struct {
	path string

	mu      sync.Mutex
	entries map[string]Entry
}

// Open loads the registry from its backing file. A missing or malformed
// file is treated as an empty registry (first run), never as a fatal
// error. A file that exists but cannot be read is fatal.
func Open(path string) (*Registry, error) {
	r := &Registry{
		path:    path,
		entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	if err := json.Unmarshal(data, &r.entries); err != nil {
		// Corrupt state file: start over rather than abort. The worst
		// case is re-processing files that were already ingested.
		r.entries = make(map[string]Entry)
	}
	return r, nil
}

// IsProcessed reports whether path was already processed under exactly
// this content digest.
func (r *Registry) IsProcessed(path string, digest core.Digest) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[path]
	return ok && entry.Digest == digest
}

// Entry returns the stored entry for a path, if any.
func (r *Registry) Entry(path string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[path]
	return entry, ok
}

// Len returns the number of registered files.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.entries)
}

// Register inserts or overwrites the entry for path, stamping the
// current time, and flushes the store. On a flush failure the in-memory
// entry is rolled back so a future run retries the file.
func (r *Registry) Register(path string, digest core.Digest, chunkCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prev, hadPrev := r.entries[path]
	r.entries[path] = Entry{
		Digest:      digest,
		ProcessedAt: time.Now().UTC(),
		Chunks:      chunkCount,
	}

	if err := r.flushLocked(); err != nil {
		if hadPrev {
			r.entries[path] = prev
		} else {
			delete(r.entries, path)
		}
		return fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	return nil
}

// Clear removes all entries and deletes the backing file. Used only for
// an explicit full reset.
func (r *Registry) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make(map[string]Entry)
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	return nil
}

// Flush persists the current state. Register already writes through, so
// this exists for callers that mutate nothing but want the file
// materialized (e.g. on first run).
func (r *Registry) Flush() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.flushLocked(); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistFailed, err)
	}
	return nil
}

// flushLocked writes the state atomically: temp file then rename, so a
// crash mid-write never leaves a truncated store behind.
func (r *Registry) flushLocked() error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".registry-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
