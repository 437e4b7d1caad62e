// Package ingestion provides pipeline orchestration for preparing a
// corpus of raw source files.
//
// The Pipeline type walks a source tree and, for each file, runs
// digest -> load -> split -> persist -> register. Files already
// registered under their current content digest are skipped, so
// re-running over an unchanged corpus is a no-op. Every file is
// processed in isolation: a failure is recorded in the run report and
// never aborts the run.
//
// Files are independent units, so the pipeline optionally processes
// them with a bounded worker pool; the registry serializes its own
// mutations.
package ingestion
