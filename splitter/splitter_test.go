package splitter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tutoris/corpora/core"
)

func docWithContent(content, fileType string) core.Document {
	return core.Document{
		Content: content,
		Metadata: core.Metadata{
			SourceID: core.DigestBytes([]byte(content)),
			FileName: "test" + fileType,
			FileType: fileType,
			Category: core.CategoryForExtension(fileType),
		},
	}
}

// lined returns n lines of exactly 20 characters each (19 + newline).
func lined(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteString(fmt.Sprintf("line-%02d aaaaaaaaaaa\n", i))
	}
	return b.String()
}

func TestNew_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    []Option
		wantErr error
	}{
		{name: "defaults"},
		{name: "custom valid", opts: []Option{WithChunkSize(200), WithChunkOverlap(20)}},
		{name: "zero size", opts: []Option{WithChunkSize(0)}, wantErr: core.ErrInvalidChunkSize},
		{name: "overlap >= size", opts: []Option{WithChunkSize(100), WithChunkOverlap(100)}, wantErr: core.ErrInvalidChunkOverlap},
		{name: "negative overlap", opts: []Option{WithChunkOverlap(-1)}, wantErr: core.ErrInvalidChunkOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestSplit_ShortDocumentSingleChunk(t *testing.T) {
	s, err := New(WithChunkSize(200), WithChunkOverlap(20))
	require.NoError(t, err)

	chunks, err := s.Split([]core.Document{docWithContent("tiny document", ".txt")})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, "tiny document", chunks[0].Content)
}

func TestSplit_EmptyDocumentNoChunks(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	chunks, err := s.Split([]core.Document{docWithContent("", ".txt")})
	require.NoError(t, err)
	assert.Empty(t, chunks)

	chunks, err = s.Split([]core.Document{docWithContent("   \n\n  ", ".txt")})
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestSplit_ChunkCountForSizedText(t *testing.T) {
	// 500 characters of plain text, size 200, overlap 20: three chunks.
	s, err := New(WithChunkSize(200), WithChunkOverlap(20))
	require.NoError(t, err)

	text := lined(25)
	require.Len(t, text, 500)

	chunks, err := s.Split([]core.Document{docWithContent(text, ".txt")})
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
		assert.LessOrEqual(t, len(chunk.Content), 200)
		assert.Equal(t, core.CategoryDocumentation, chunk.Metadata.Category)
	}
}

func TestSplit_OverlapSharedAcrossBoundary(t *testing.T) {
	s, err := New(WithChunkSize(200), WithChunkOverlap(20))
	require.NoError(t, err)

	chunks, err := s.Split([]core.Document{docWithContent(lined(25), ".txt")})
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	for i := 1; i < len(chunks); i++ {
		prevLines := strings.Split(chunks[i-1].Content, "\n")
		tail := prevLines[len(prevLines)-1]
		assert.True(t, strings.HasPrefix(chunks[i].Content, tail),
			"chunk %d should start with the trailing context of chunk %d", i, i-1)
	}
}

func TestSplit_ChunksAppearInOrder(t *testing.T) {
	s, err := New(WithChunkSize(120), WithChunkOverlap(10))
	require.NoError(t, err)

	text := lined(30)
	chunks, err := s.Split([]core.Document{docWithContent(text, ".txt")})
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	last := 0
	for _, chunk := range chunks {
		pos := strings.Index(text[last:], chunk.Content)
		require.GreaterOrEqual(t, pos, 0, "every chunk must be a fragment of the original text, in order")
		last += pos
	}
}

func TestSplit_CodeBreaksAtFunctionBoundaries(t *testing.T) {
	s, err := New(WithChunkSize(60), WithChunkOverlap(0))
	require.NoError(t, err)

	code := "def alpha():\n    return 1\n\ndef beta():\n    return 2\n\ndef gamma():\n    return 3\n"
	chunks, err := s.Split([]core.Document{docWithContent(code, ".py")})
	require.NoError(t, err)
	require.Greater(t, len(chunks), 1)

	// No chunk should end mid-function-header: breaks happen between
	// definitions, so every chunk past the first starts at a function body.
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index)
		assert.LessOrEqual(t, len(chunk.Content), 60)
	}
}

func TestSplit_TinyCodeFileSingleChunk(t *testing.T) {
	s, err := New(WithChunkSize(200), WithChunkOverlap(20))
	require.NoError(t, err)

	chunks, err := s.Split([]core.Document{docWithContent("x = 1\ny=2\n", ".py")})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, core.CategoryCodeSnippet, chunks[0].Metadata.Category)
}

func TestSplit_IndexesContinueAcrossDocumentsOfOneFile(t *testing.T) {
	s, err := New(WithChunkSize(50), WithChunkOverlap(5))
	require.NoError(t, err)

	meta := core.Metadata{
		SourceID: core.DigestBytes([]byte("whole file")),
		FileName: "paper.pdf",
		FileType: ".pdf",
		Category: core.CategoryDocumentation,
	}
	docs := []core.Document{
		{Content: "page one text", Metadata: meta},
		{Content: "page two text", Metadata: meta},
		{Content: "page three text", Metadata: meta},
	}

	chunks, err := s.Split(docs)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	seen := make(map[string]struct{})
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index, "indexes must be contiguous per source file")
		key := chunk.Key()
		_, dup := seen[key]
		assert.False(t, dup, "chunk keys must be collision-free: %s", key)
		seen[key] = struct{}{}
	}
}

func TestSplit_IndexesRestartPerFile(t *testing.T) {
	s, err := New(WithChunkSize(50), WithChunkOverlap(5))
	require.NoError(t, err)

	chunks, err := s.Split([]core.Document{
		docWithContent("first file", ".txt"),
		docWithContent("second file", ".txt"),
	})
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, 0, chunks[1].Index)
}

func TestSplit_MetadataInheritedVerbatim(t *testing.T) {
	s, err := New(WithChunkSize(100), WithChunkOverlap(10))
	require.NoError(t, err)

	doc := docWithContent(lined(20), ".md")
	doc.Metadata.ParentFolder = "handbook"
	chunks, err := s.Split([]core.Document{doc})
	require.NoError(t, err)
	require.NotEmpty(t, chunks)

	for _, chunk := range chunks {
		assert.Equal(t, doc.Metadata, chunk.Metadata)
	}
}

func TestSeparatorsForType(t *testing.T) {
	assert.Equal(t, languageSeparators[".py"], separatorsForType(".py"))
	assert.Equal(t, languageSeparators[".js"], separatorsForType(".ts"))
	assert.Equal(t, defaultSeparators, separatorsForType(".txt"))
	assert.Equal(t, defaultSeparators, separatorsForType(""))
}
