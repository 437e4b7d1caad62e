package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDigestBytes(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same digest",
			content: "test content",
		},
		{
			name:    "empty input",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d1 := DigestBytes([]byte(tt.content))
			d2 := DigestBytes([]byte(tt.content))

			if d1 != d2 {
				t.Errorf("DigestBytes() produced different digests for same content: %s vs %s", d1, d2)
			}
			if len(d1) != 64 {
				t.Errorf("DigestBytes() produced a digest of %d hex chars, want 64", len(d1))
			}
		})
	}
}

func TestDigestBytes_Different(t *testing.T) {
	d1 := DigestBytes([]byte("content1"))
	d2 := DigestBytes([]byte("content2"))

	if d1 == d2 {
		t.Errorf("DigestBytes() produced same digest for different content")
	}
}

func TestDigestFile(t *testing.T) {
	content := []byte("the quick brown fox\njumps over the lazy dog\n")
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile() error = %v", err)
	}
	if want := DigestBytes(content); got != want {
		t.Errorf("DigestFile() = %s, want %s", got, want)
	}
}

func TestDigestFile_Missing(t *testing.T) {
	_, err := DigestFile(filepath.Join(t.TempDir(), "nope.txt"))
	if err == nil {
		t.Error("DigestFile() expected error for missing file")
	}
}

func TestCategoryForExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want Category
	}{
		{".py", CategoryCodeSnippet},
		{".go", CategoryCodeSnippet},
		{".java", CategoryCodeSnippet},
		{".PY", CategoryCodeSnippet},
		{".txt", CategoryDocumentation},
		{".md", CategoryDocumentation},
		{".pdf", CategoryDocumentation},
		{".html", CategoryDocumentation},
		{"", CategoryDocumentation},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := CategoryForExtension(tt.ext); got != tt.want {
				t.Errorf("CategoryForExtension(%q) = %s, want %s", tt.ext, got, tt.want)
			}
		})
	}
}

func TestChunk_Key(t *testing.T) {
	chunk := Chunk{
		Content:  "hello",
		Metadata: Metadata{SourceID: "abc123"},
		Index:    4,
	}

	if got, want := chunk.Key(), "abc123-4"; got != want {
		t.Errorf("Chunk.Key() = %s, want %s", got, want)
	}
}
