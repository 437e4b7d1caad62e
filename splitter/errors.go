package splitter

import "errors"

var (
	// ErrSplitFailed wraps a failure inside the text splitting engine.
	ErrSplitFailed = errors.New("split failed")
)
