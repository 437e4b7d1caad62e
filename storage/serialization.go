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


package storage

import (
	"fmt"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/tutoris/corpora/core"
)

// MarshalChunk serializes a Chunk to bytes using the MUS format.
// Field order: content, source id, file name, file type, parent
// folder, category, index.
func MarshalChunk(chunk *core.Chunk) []byte {
	size := ord.String.Size(chunk.Content) +
		ord.String.Size(string(chunk.Metadata.SourceID)) +
		ord.String.Size(chunk.Metadata.FileName) +
		ord.String.Size(chunk.Metadata.FileType) +
		ord.String.Size(chunk.Metadata.ParentFolder) +
		ord.String.Size(string(chunk.Metadata.Category)) +
		varint.Int.Size(chunk.Index)

	bs := make([]byte, size)
	n := ord.String.Marshal(chunk.Content, bs)
	n += ord.String.Marshal(string(chunk.Metadata.SourceID), bs[n:])
	n += ord.String.Marshal(chunk.Metadata.FileName, bs[n:])
	n += ord.String.Marshal(chunk.Metadata.FileType, bs[n:])
	n += ord.String.Marshal(chunk.Metadata.ParentFolder, bs[n:])
	n += ord.String.Marshal(string(chunk.Metadata.Category), bs[n:])
	varint.Int.Marshal(chunk.Index, bs[n:])
	return bs
}

// UnmarshalChunk deserializes a Chunk from bytes.
func UnmarshalChunk(bs []byte) (*core.Chunk, error) {
	var (
		chunk core.Chunk
		off   int
	)

	content, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return nil, fmt.Errorf("%w: content: %w", ErrSerializationFailed, err)
	}
	chunk.Content = content
	off += n

	fields := []struct {
		name string
		set  func(string)
	}{
		{"source id", func(v string) { chunk.Metadata.SourceID = core.Digest(v) }},
		{"file name", func(v string) { chunk.Metadata.FileName = v }},
		{"file type", func(v string) { chunk.Metadata.FileType = v }},
		{"parent folder", func(v string) { chunk.Metadata.ParentFolder = v }},
		{"category", func(v string) { chunk.Metadata.Category = core.Category(v) }},
	}
	for _, field := range fields {
		v, n, err := ord.String.Unmarshal(bs[off:])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrSerializationFailed, field.name, err)
		}
		field.set(v)
		off += n
	}

	index, _, err := varint.Int.Unmarshal(bs[off:])
	if err != nil {
		return nil, fmt.Errorf("%w: index: %w", ErrSerializationFailed, err)
	}
	chunk.Index = index

	return &chunk, nil
}
