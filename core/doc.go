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


// Package core defines the domain model shared across the ingestion
// pipeline: content digests, documents, chunks, and their validation
// rules.
//
// A Digest identifies a version of a file's content, never its path.
// Documents are the logical text units a loader extracts from one
// source file; Chunks are the bounded fragments a splitter produces
// from one document. Both are immutable once created.
package core
