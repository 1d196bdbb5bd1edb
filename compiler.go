package eckfront

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/parser"
	"github.com/ecklang/eckfront/reporter"
	"github.com/ecklang/eckfront/walk"
)

// Compiler handles compilation tasks, turning Eck source files into syntax
// trees.
//
// Each file is scanned and parsed on its own goroutine; several files are
// processed in parallel. Parsing a single file stops at its first error.
type Compiler struct {
	// Resolves path/file names into source code or already parsed trees.
	// This is how the compiler loads the files to be compiled. This field is
	// the only required field.
	Resolver Resolver
	// The maximum parallelism to use when compiling. If unspecified or set to
	// a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error reporter. If unspecified a default reporter is used,
	// which fails the compilation after encountering any error. A reporter
	// that returns nil lets the remaining files be compiled.
	Reporter reporter.Reporter
	// If set, a debug record is logged for each file compiled.
	Logger *slog.Logger
}

// Result is the outcome of compiling one file.
type Result struct {
	Path string
	// AST is nil if the file could not be parsed.
	AST *ast.ClassNode
	// Info is the file's contents and line boundaries. It is nil if the file
	// could not be read, or if the resolver supplied a tree instead of source.
	Info *ast.FileInfo
	// Err is the first error encountered in this file, if any.
	Err error
}

// Results holds one Result per compiled file, in the order the files were
// named.
type Results []Result

// Compile compiles the given files. The returned results are always in the
// same order as files, even when the compilation fails; files that were not
// reached because of an earlier fatal error carry a context error.
//
// The returned error is nil if every file parsed, the reporter's error if it
// returned one, or reporter.ErrInvalidSource if errors were reported but the
// reporter let them pass.
func (c *Compiler) Compile(ctx context.Context, files ...string) (Results, error) {
	if len(files) == 0 {
		return nil, nil
	}

	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := c.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := executor{
		c:      c,
		h:      reporter.NewHandler(c.Reporter),
		s:      semaphore.NewWeighted(int64(par)),
		cancel: cancel,
		log:    logger,
	}

	pending := make([]*result, len(files))
	for i, f := range files {
		pending[i] = e.compile(ctx, f)
	}

	results := make(Results, len(files))
	for i, r := range pending {
		<-r.ready
		results[i] = r.res
	}

	if err := parent.Err(); err != nil {
		return results, err
	}
	return results, e.h.Error()
}

type result struct {
	ready chan struct{}
	res   Result
}

func (r *result) fail(err error) {
	r.res.Err = err
	close(r.ready)
}

func (r *result) complete() {
	close(r.ready)
}

type executor struct {
	c      *Compiler
	h      *reporter.Handler
	s      *semaphore.Weighted
	cancel context.CancelFunc
	log    *slog.Logger
}

func (e *executor) compile(ctx context.Context, file string) *result {
	r := &result{
		ready: make(chan struct{}),
		res:   Result{Path: file},
	}
	go e.doCompile(ctx, file, r)
	return r
}

func (e *executor) doCompile(ctx context.Context, file string, r *result) {
	if err := e.s.Acquire(ctx, 1); err != nil {
		r.fail(err)
		return
	}
	defer e.s.Release(1)
	if err := ctx.Err(); err != nil {
		r.fail(err)
		return
	}

	start := time.Now()
	sr, err := e.c.Resolver.FindFileByPath(file)
	if err != nil {
		r.fail(e.fatal(err))
		return
	}

	defer func() {
		// if results included a result, don't leave it open if it can be closed
		if sr.Source == nil {
			return
		}
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	if sr.AST != nil {
		r.res.AST = sr.AST
		r.complete()
		return
	}

	// Errors pass through a per-file handler so that the file keeps the
	// error itself even when the shared handler swallows it.
	var fileErr error
	fh := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		fileErr = err
		return e.h.HandleError(err)
	}))
	res, err := parser.ParseFile(file, sr.Source, fh)
	r.res.AST, r.res.Info = res.AST, res.Info
	if err != nil {
		if fileErr == nil {
			fileErr = e.fatal(err)
		} else if e.h.ReporterError() != nil {
			e.cancel()
		}
		e.log.DebugContext(ctx, "parse failed", slog.String("path", file), slog.Any("error", fileErr))
		r.fail(fileErr)
		return
	}

	e.log.DebugContext(ctx, "parsed file",
		slog.String("path", file),
		slog.String("class", res.AST.Name),
		slog.Int("nodes", walk.Count(res.AST)),
		slog.Duration("elapsed", time.Since(start)))
	r.complete()
}

// fatal records an error that has no source position, which always stops the
// compilation.
func (e *executor) fatal(err error) error {
	_ = e.h.HandleError(err)
	e.cancel()
	return err
}
