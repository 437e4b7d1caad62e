package loader

import (
	"context"
	"unicode/utf8"
)

// TextParser handles plain text and source code files. It always emits
// exactly one segment per file.
type TextParser struct{}

var _ Parser = (*TextParser)(nil)

// Parse decodes the file bytes as UTF-8, falling back to Latin-1 when
// the bytes are not valid UTF-8 so legacy-encoded files load instead of
// failing.
func (*TextParser) Parse(_ context.Context, _ string, data []byte) ([]string, error) {
	return []string{decodeText(data)}, nil
}

func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	// Latin-1: every byte maps to the code point of the same value.
	runes := make([]rune, len(data))
	for i, b := range data {
		runes[i] = rune(b)
	}
	return string(runes)
}
