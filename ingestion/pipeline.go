package ingestion

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/tutoris/corpora/core"
	"github.com/tutoris/corpora/loader"
	"github.com/tutoris/corpora/registry"
	"github.com/tutoris/corpora/splitter"
	"github.com/tutoris/corpora/storage"
)

// Pipeline orchestrates the ingestion of a source tree: change
// detection against the registry, loading, splitting, and persisting
// chunks to the sink.
type Pipeline struct {
	loader   *loader.Loader
	splitter *splitter.Splitter
	registry *registry.Registry
	sink     storage.ChunkSink
	workers  int
	force    bool
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithWorkers sets the number of files processed in parallel.
// Default is 1 (a single sequential pass).
func WithWorkers(n int) Option {
	return func(p *Pipeline) error {
		if n < 1 {
			n = 1
		}
		p.workers = n
		return nil
	}
}

// WithForce makes the run ignore the registry and reprocess every file.
func WithForce(force bool) Option {
	return func(p *Pipeline) error {
		p.force = force
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates an ingestion pipeline.
func NewPipeline(
	ld *loader.Loader,
	sp *splitter.Splitter,
	reg *registry.Registry,
	sink storage.ChunkSink,
	opts ...Option,
) (*Pipeline, error) {
	if ld == nil {
		return nil, ErrLoaderRequired
	}
	if sp == nil {
		return nil, ErrSplitterRequired
	}
	if reg == nil {
		return nil, ErrRegistryRequired
	}
	if sink == nil {
		return nil, ErrSinkRequired
	}

	p := &Pipeline{
		loader:   ld,
		splitter: sp,
		registry: reg,
		sink:     sink,
		workers:  1,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Run executes one ingestion pass over the source root. Setup problems
// (root missing or unreadable) return an error; per-file problems never
// do — they are recorded in the report and the run continues.
//
// Cancellation is graceful: files already being processed finish,
// remaining files are not started and appear in no count.
func (p *Pipeline) Run(ctx context.Context, root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceRootInvalid, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrSourceRootInvalid, root)
	}

	paths, err := discover(root)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	p.logger.Info("starting ingestion run",
		"root", root, "files", len(paths), "workers", p.workers, "force", p.force)

	report := &Report{}
	if p.workers <= 1 {
		p.runSequential(ctx, paths, report)
	} else {
		if err := p.runPooled(ctx, paths, report); err != nil {
			return nil, err
		}
	}

	p.logSummary(report)
	return report, nil
}

func (p *Pipeline) runSequential(ctx context.Context, paths []string, report *Report) {
	for _, path := range paths {
		if ctx.Err() != nil {
			p.logger.Warn("run cancelled, skipping remaining files")
			return
		}
		report.add(p.processFile(ctx, path))
	}
}

func (p *Pipeline) runPooled(ctx context.Context, paths []string, report *Report) error {
	pool, err := ants.NewPool(p.workers)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, path := range paths {
		if ctx.Err() != nil {
			p.logger.Warn("run cancelled, skipping remaining files")
			break
		}
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return // not started: counts in no bucket
			}
			result := p.processFile(ctx, path)
			mu.Lock()
			report.add(result)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return err
		}
	}
	wg.Wait()
	return nil
}

// processFile runs the per-file state machine. It never lets a panic or
// error escape: the outcome is always a FileResult.
func (p *Pipeline) processFile(ctx context.Context, path string) (result FileResult) {
	defer func() {
		if r := recover(); r != nil {
			// A parser blowing up on malformed input must not take the
			// run down with it.
			result = failed(path, FailureLoad, fmt.Errorf("%w: panic: %v", loader.ErrLoadFailed, r))
		}
	}()

	digest, err := core.DigestFile(path)
	if err != nil {
		return failed(path, FailureIO, err)
	}

	if !p.force && p.registry.IsProcessed(path, digest) {
		return FileResult{Path: path, Status: StatusSkipped}
	}

	docs, err := p.loader.Load(ctx, path)
	if err != nil {
		return failed(path, classify(err), err)
	}

	chunks, err := p.splitter.Split(docs)
	if err != nil {
		return failed(path, FailureChunk, err)
	}

	// Supersede chunks persisted under this path's previous content.
	if prev, ok := p.registry.Entry(path); ok && prev.Digest != digest {
		if err := p.sink.DeleteSource(ctx, prev.Digest); err != nil {
			return failed(path, FailurePersist, err)
		}
	}

	if len(chunks) > 0 {
		if err := p.sink.PutChunks(ctx, chunks...); err != nil {
			return failed(path, FailurePersist, err)
		}
	}

	// Register last: a crash or persist failure before this point
	// leaves no entry, so the next run retries the file.
	if err := p.registry.Register(path, digest, len(chunks)); err != nil {
		return failed(path, FailureRegistry, err)
	}

	p.logger.Info("file processed", "path", path, "chunks", len(chunks))
	return FileResult{Path: path, Status: StatusDone, Chunks: len(chunks)}
}

func failed(path string, kind FailureKind, err error) FileResult {
	return FileResult{Path: path, Status: StatusFailed, Kind: kind, Err: err}
}

// discover enumerates regular files under root in deterministic walk
// order, skipping hidden files and directories.
func discover(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		hidden := strings.HasPrefix(d.Name(), ".") && path != root
		if d.IsDir() {
			if hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden || !d.Type().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (p *Pipeline) logSummary(report *Report) {
	p.logger.Info("ingestion run complete",
		"done", report.Done, "skipped", report.Skipped, "failed", report.Failed)
	for _, failure := range report.Failures() {
		p.logger.Error("file failed",
			"path", failure.Path, "kind", string(failure.Kind), "err", failure.Err)
	}
}

// Reset wipes the registry and removes every persisted chunk unit.
// Used only on explicit request, before a fresh run.
func Reset(ctx context.Context, reg *registry.Registry, sink storage.ChunkSink) error {
	if reg == nil {
		return ErrRegistryRequired
	}
	if sink == nil {
		return ErrSinkRequired
	}
	if err := reg.Clear(); err != nil {
		return err
	}
	return sink.Reset(ctx)
}
