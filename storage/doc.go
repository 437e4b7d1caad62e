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


// Package storage defines the chunk sink abstraction: where chunks are
// persisted for a downstream embedding/indexing stage to consume.
//
// Two backends implement ChunkSink:
//
//   - chunkdir: one JSON file per chunk under a directory, named
//     <source_id>-<chunk_index>.json
//   - badgersink: a BadgerDB key-value store keyed the same way
//
// Every unit name is stable and collision-free across files and runs,
// so re-writing an unchanged chunk overwrites rather than duplicates.
//
// All implementations must be safe for concurrent use; the ingestion
// pipeline writes from multiple workers.
package storage
