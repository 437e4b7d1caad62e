package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutoris/corpora/core"
)

func TestChunkSerialization_RoundTrip(t *testing.T) {
	original := &core.Chunk{
		Content: "func main() {\n\tprintln(\"hi\")\n}\n",
		Metadata: core.Metadata{
			SourceID:     core.DigestBytes([]byte("whole file")),
			FileName:     "main.go",
			FileType:     ".go",
			ParentFolder: "examples",
			Category:     core.CategoryCodeSnippet,
		},
		Index: 7,
	}

	bs := MarshalChunk(original)
	require.NotEmpty(t, bs)

	got, err := UnmarshalChunk(bs)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestChunkSerialization_EmptyFields(t *testing.T) {
	original := &core.Chunk{
		Metadata: core.Metadata{
			SourceID: "ab",
			Category: core.CategoryDocumentation,
		},
	}

	got, err := UnmarshalChunk(MarshalChunk(original))
	require.NoError(t, err)
	assert.Equal(t, original, got)
}

func TestUnmarshalChunk_Truncated(t *testing.T) {
	chunk := &core.Chunk{
		Content:  "some chunk content that is long enough to truncate",
		Metadata: core.Metadata{SourceID: "cd", FileName: "a.txt"},
		Index:    1,
	}
	bs := MarshalChunk(chunk)

	_, err := UnmarshalChunk(bs[:len(bs)/2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestUnmarshalChunk_Empty(t *testing.T) {
	_, err := UnmarshalChunk(nil)
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
