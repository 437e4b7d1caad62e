package ingestion

import "errors"

var (
	// ErrLoaderRequired is returned when a loader is not provided.
	ErrLoaderRequired = errors.New("loader required")

	// ErrSplitterRequired is returned when a splitter is not provided.
	ErrSplitterRequired = errors.New("splitter required")

	// ErrRegistryRequired is returned when a registry is not provided.
	ErrRegistryRequired = errors.New("registry required")

	// ErrSinkRequired is returned when a chunk sink is not provided.
	ErrSinkRequired = errors.New("chunk sink required")

	// ErrSourceRootInvalid is returned when the source root is missing
	// or not a directory. This is a setup failure, not a per-file one.
	ErrSourceRootInvalid = errors.New("source root missing or not a directory")
)
