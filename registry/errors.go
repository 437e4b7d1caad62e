package registry

import "errors"

var (
	// ErrLoadFailed indicates the backing store exists but cannot be read.
	ErrLoadFailed = errors.New("registry load failed")

	// ErrPersistFailed indicates the backing store could not be written.
	ErrPersistFailed = errors.New("registry persist failed")
)
