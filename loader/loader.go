package loader

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tutoris/corpora/core"
)

// Parser extracts the ordered logical text segments of one file.
// Implementations must be stateless and safe for concurrent use.
type Parser interface {
	// Parse returns one string per logical document (e.g. per PDF page).
	// A zero-length file is a legal input and yields one empty segment
	// for text formats.
	Parse(ctx context.Context, path string, data []byte) ([]string, error)
}

// textExtensions lists the extensions handled by the plain text parser.
// Source code extensions are included: code files are loaded as text and
// only split differently downstream.
var textExtensions = []string{
	".txt", ".md", ".tex", ".bib", ".bbl",
	".py", ".go", ".js", ".ts", ".java", ".c", ".h", ".cpp", ".hpp", ".rs", ".rb", ".sh",
	".json", ".html", ".css", ".scss", ".xml", ".yaml", ".yml", ".properties", ".http",
}

// Loader turns source files into enriched documents.
type Loader struct {
	parsers map[string]Parser
	logger  *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// WithParser registers (or overrides) the parser for an extension.
// The extension is normalized to lowercase with a leading dot.
func WithParser(ext string, parser Parser) Option {
	return func(l *Loader) {
		if parser == nil {
			return
		}
		l.parsers[normalizeExt(ext)] = parser
	}
}

// New creates a Loader with the default format table: PDF plus the
// text and source-code extension families.
func New(opts ...Option) *Loader {
	l := &Loader{
		parsers: defaultParsers(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func defaultParsers() map[string]Parser {
	text := &TextParser{}
	parsers := map[string]Parser{
		".pdf": &PDFParser{},
	}
	for _, ext := range textExtensions {
		parsers[ext] = text
	}
	return parsers
}

// Supported reports whether a parser is registered for the file's extension.
func (l *Loader) Supported(path string) bool {
	_, ok := l.parsers[normalizeExt(filepath.Ext(path))]
	return ok
}

// Load reads the file at path and returns its ordered documents, each
// enriched with provenance metadata. All documents from one file share
// the same SourceID: the digest of the whole file's byte content.
//
// Errors are not retried: an unregistered extension returns
// ErrUnsupportedFormat, an unreadable file returns the underlying I/O
// error, and a parser failure is wrapped in ErrLoadFailed.
func (l *Loader) Load(ctx context.Context, path string) ([]core.Document, error) {
	ext := normalizeExt(filepath.Ext(path))
	parser, ok := l.parsers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	l.logger.Debug("loading file", "path", path, "type", ext)

	segments, err := parser.Parse(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadFailed, path, err)
	}

	meta := core.Metadata{
		SourceID:     core.DigestBytes(data),
		FileName:     filepath.Base(path),
		FileType:     ext,
		ParentFolder: filepath.Base(filepath.Dir(path)),
		Category:     core.CategoryForExtension(ext),
	}

	docs := make([]core.Document, 0, len(segments))
	for _, segment := range segments {
		docs = append(docs, core.Document{
			Content:  segment,
			Metadata: meta,
		})
	}
	return docs, nil
}

// normalizeExt lowercases an extension and ensures a leading dot.
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
