package ingestion

import (
	"errors"
	"io/fs"

	"github.com/tutoris/corpora/core"
	"github.com/tutoris/corpora/loader"
	"github.com/tutoris/corpora/registry"
	"github.com/tutoris/corpora/splitter"
	"github.com/tutoris/corpora/storage"
)

// Status is the terminal state of one file within a run.
type Status int

const (
	// StatusSkipped means the file's current digest was already registered.
	StatusSkipped Status = iota + 1
	// StatusDone means the file was processed and registered successfully.
	StatusDone
	// StatusFailed means processing stopped on an error; the registry
	// was not updated, so the next run retries the file.
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusDone:
		return "done"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FailureKind classifies a per-file failure for reporting.
type FailureKind string

const (
	FailureUnsupportedFormat FailureKind = "unsupported_format"
	FailureIO                FailureKind = "io"
	FailureLoad              FailureKind = "load"
	FailureChunk             FailureKind = "chunk"
	FailurePersist           FailureKind = "persist"
	FailureRegistry          FailureKind = "registry"
)

// FileResult is the outcome for one source file.
type FileResult struct {
	Path   string
	Status Status
	Chunks int         // chunk count for StatusDone
	Kind   FailureKind // set for StatusFailed
	Err    error       // set for StatusFailed
}

// Report aggregates per-file outcomes for one run. The run as a whole
// has no single pass/fail: it is exactly these counts.
type Report struct {
	Skipped int
	Done    int
	Failed  int
	Results []FileResult
}

func (r *Report) add(result FileResult) {
	switch result.Status {
	case StatusSkipped:
		r.Skipped++
	case StatusDone:
		r.Done++
	case StatusFailed:
		r.Failed++
	}
	r.Results = append(r.Results, result)
}

// Failures returns the results of files that failed, in processing order.
func (r *Report) Failures() []FileResult {
	var failed []FileResult
	for _, result := range r.Results {
		if result.Status == StatusFailed {
			failed = append(failed, result)
		}
	}
	return failed
}

// classify maps an error from a pipeline stage to its failure kind.
// Stage-specific kinds (chunk, persist, registry) are assigned at the
// call site; this covers the ambiguous digest/load stages.
func classify(err error) FailureKind {
	switch {
	case errors.Is(err, loader.ErrUnsupportedFormat):
		return FailureUnsupportedFormat
	case errors.Is(err, loader.ErrLoadFailed):
		return FailureLoad
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return FailureIO
	case errors.Is(err, core.ErrInvalidChunkSize), errors.Is(err, core.ErrInvalidChunkOverlap),
		errors.Is(err, splitter.ErrSplitFailed):
		return FailureChunk
	case errors.Is(err, storage.ErrPersistFailed):
		return FailurePersist
	case errors.Is(err, registry.ErrPersistFailed):
		return FailureRegistry
	default:
		return FailureIO
	}
}
