package splitter

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
	"github.com/tutoris/corpora/core"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// DefaultChunkOverlap is the default number of overlapping characters
// between consecutive chunks of one document.
const DefaultChunkOverlap = 200

// Splitter splits documents into bounded chunks with overlap.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

// Option configures a Splitter.
type Option func(*Splitter)

// WithChunkSize sets the maximum chunk length in characters.
func WithChunkSize(size int) Option {
	return func(s *Splitter) {
		s.chunkSize = size
	}
}

// WithChunkOverlap sets the overlap between consecutive chunks in characters.
func WithChunkOverlap(overlap int) Option {
	return func(s *Splitter) {
		s.chunkOverlap = overlap
	}
}

// New creates a Splitter. The configuration is validated once here so
// Split never runs with a malformed size/overlap pair.
func New(opts ...Option) (*Splitter, error) {
	s := &Splitter{
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := core.ValidateSplitConfig(s.chunkSize, s.chunkOverlap); err != nil {
		return nil, err
	}
	return s, nil
}

// ChunkSize returns the configured maximum chunk length.
func (s *Splitter) ChunkSize() int { return s.chunkSize }

// ChunkOverlap returns the configured overlap.
func (s *Splitter) ChunkOverlap() int { return s.chunkOverlap }

// Split chunks every document in order. Chunk indexes are zero-based
// and contiguous per source file: documents extracted from the same
// file continue the file's sequence, so the sink unit name
// (source digest + index) stays collision-free when a loader emits
// several documents for one file.
//
// An empty document yields no chunks; a document shorter than the
// chunk size yields exactly one.
func (s *Splitter) Split(docs []core.Document) ([]core.Chunk, error) {
	chunks := make([]core.Chunk, 0, len(docs))
	nextIndex := make(map[core.Digest]int)

	for i := range docs {
		doc := &docs[i]
		if err := core.ValidateDocument(doc); err != nil {
			return nil, err
		}

		parts, err := s.splitText(doc.Content, doc.Metadata.FileType)
		if err != nil {
			return nil, err
		}

		index := nextIndex[doc.Metadata.SourceID]
		for _, part := range parts {
			chunks = append(chunks, core.Chunk{
				Content:  part,
				Metadata: doc.Metadata,
				Index:    index,
			})
			index++
		}
		nextIndex[doc.Metadata.SourceID] = index
	}
	return chunks, nil
}

// splitText runs the recursive character splitter with the separator
// list selected for the document's file type.
func (s *Splitter) splitText(content, fileType string) ([]string, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil
	}

	ts := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(s.chunkSize),
		textsplitter.WithChunkOverlap(s.chunkOverlap),
		textsplitter.WithSeparators(separatorsForType(fileType)),
	)

	parts, err := ts.SplitText(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSplitFailed, err)
	}

	// Drop whitespace-only fragments the splitter may leave behind.
	out := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		out = append(out, part)
	}
	return out, nil
}
