package core

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// digestSize is the hash output size in bytes (256 bits).
const digestSize = 32

// Digest is the content identity of a source file: the lowercase hex
// encoding of a BLAKE2b-256 hash over the file's raw bytes. Identical
// bytes always yield an identical digest; the digest identifies a
// version of the content, not the path it was read from.
type Digest string

// DigestBytes computes the content digest of raw bytes.
func DigestBytes(data []byte) Digest {
	h, _ := blake2b.New(digestSize, nil)
	h.Write(data)
	return Digest(hex.EncodeToString(h.Sum(nil)))
}

// DigestFile computes the content digest of a file by streaming its
// contents, so large files are never held in memory for hashing alone.
func DigestFile(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, _ := blake2b.New(digestSize, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return Digest(hex.EncodeToString(h.Sum(nil))), nil
}

// Category classifies a document by the kind of content it holds.
// It drives splitting strategy selection downstream.
type Category string

const (
	// CategoryCodeSnippet marks documents extracted from source code files.
	CategoryCodeSnippet Category = "code_snippet"
	// CategoryDocumentation marks prose, markup, and everything else.
	CategoryDocumentation Category = "documentation"
)

// codeExtensions lists the normalized extensions classified as source code.
var codeExtensions = map[string]struct{}{
	".py":   {},
	".go":   {},
	".js":   {},
	".ts":   {},
	".java": {},
	".c":    {},
	".h":    {},
	".cpp":  {},
	".hpp":  {},
	".rs":   {},
	".rb":   {},
	".sh":   {},
}

// CategoryForExtension derives the document category from a normalized
// (lowercase, dot-prefixed) file extension.
func CategoryForExtension(ext string) Category {
	if _, ok := codeExtensions[strings.ToLower(ext)]; ok {
		return CategoryCodeSnippet
	}
	return CategoryDocumentation
}

// Metadata describes the provenance of a Document and is inherited
// verbatim by every Chunk derived from it.
type Metadata struct {
	SourceID     Digest   `json:"source_id"`     // digest of the owning file's full byte content
	FileName     string   `json:"file_name"`     // base name of the source file
	FileType     string   `json:"file_type"`     // normalized extension, e.g. ".py"
	ParentFolder string   `json:"parent_folder"` // immediate containing directory name
	Category     Category `json:"category"`
}

// Document is one logical text unit extracted from a source file.
// A loader may emit one or several per file (e.g. one per PDF page).
type Document struct {
	Content  string
	Metadata Metadata
}

// Chunk is a bounded fragment of a Document's text, the unit a
// downstream embedding/indexing stage consumes.
type Chunk struct {
	Content  string   `json:"content"`
	Metadata Metadata `json:"metadata"`
	Index    int      `json:"chunk_index"` // zero-based, contiguous within a source file
}

// Key returns the stable, collision-free unit name for the chunk,
// derived from the source digest and the chunk index.
func (c *Chunk) Key() string {
	return fmt.Sprintf("%s-%d", c.Metadata.SourceID, c.Index)
}
