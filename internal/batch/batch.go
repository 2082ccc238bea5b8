// Package batch drives internal/engine over many files concurrently,
// exercising the engine's "multiple threads may call Analyze concurrently"
// guarantee directly: each file gets its own Analyze call against nothing
// but the immutable specdb tables, no shared mutable state between them.
package batch

import (
	"context"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tdl/internal/cache"
	"tdl/internal/diag"
	"tdl/internal/engine"
)

// Stage marks which pipeline stage a Result reached, for the progress UI.
type Stage int

const (
	StageQueued Stage = iota
	StageParsing
	StageValidating
	StageDone
	StageError
)

// Event is one progress notification emitted while a File is processed.
type Event struct {
	Path  string
	Stage Stage
}

// Result is one file's outcome.
type Result struct {
	Path        string
	Diagnostics []diag.Diagnostic
	Cached      bool
	ReadErr     error
}

// Options configures a Run.
type Options struct {
	// Cache, when non-nil, is consulted before re-analyzing a file and
	// populated with every fresh result.
	Cache *cache.Cache
	// Events, when non-nil, receives progress notifications. Run closes
	// it when every file has finished.
	Events chan<- Event
}

// Run analyzes every path in paths concurrently, bounded by GOMAXPROCS,
// and returns one Result per input path in the same order paths was
// given (not completion order). ctx cancellation stops launching new
// file reads but lets in-flight Analyze calls finish, since Analyze
// itself does not accept a context.
func Run(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	results := make([]Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = analyzeOne(path, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	if opts.Events != nil {
		close(opts.Events)
	}
	return results, nil
}

func analyzeOne(path string, opts Options) Result {
	emit := func(s Stage) {
		if opts.Events != nil {
			opts.Events <- Event{Path: path, Stage: s}
		}
	}
	emit(StageQueued)

	content, err := os.ReadFile(path)
	if err != nil {
		emit(StageError)
		return Result{Path: path, ReadErr: err}
	}

	if opts.Cache != nil {
		key := cache.HashContent(string(content))
		if items, ok, err := opts.Cache.Get(key); err == nil && ok {
			emit(StageDone)
			return Result{Path: path, Diagnostics: items, Cached: true}
		}
	}

	emit(StageParsing)
	res := engine.Analyze(string(content))
	emit(StageValidating)

	if opts.Cache != nil {
		key := cache.HashContent(string(content))
		_ = opts.Cache.Put(key, res.Diagnostics)
	}

	emit(StageDone)
	return Result{Path: path, Diagnostics: res.Diagnostics}
}

// HasErrors reports whether any Result carries an error-severity
// diagnostic or a read failure.
func HasErrors(results []Result) bool {
	for _, r := range results {
		if r.ReadErr != nil {
			return true
		}
		for _, d := range r.Diagnostics {
			if d.Severity == diag.SevError {
				return true
			}
		}
	}
	return false
}
