package loader

import "errors"

var (
	// ErrUnsupportedFormat is returned when no parser is registered for
	// a file's extension.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrLoadFailed wraps a parser failure on an otherwise readable file.
	ErrLoadFailed = errors.New("load failed")
)
