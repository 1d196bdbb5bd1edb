// Package fixtures runs Eck fixture files: each source file foo.eck is
// scanned or parsed, the result is written next to it (foo.parse or
// foo.lexemes by default) and compared with the expected output in
// foo.answer.
package fixtures

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tidwall/btree"
	"golang.org/x/sync/errgroup"

	"github.com/ecklang/eckfront"
	"github.com/ecklang/eckfront/internal/config"
	"github.com/ecklang/eckfront/internal/diff"
	"github.com/ecklang/eckfront/printer"
	"github.com/ecklang/eckfront/reporter"
	"github.com/ecklang/eckfront/scanner"
)

// Status is the result of running one fixture.
type Status int

const (
	// Pass means the output matched the answer.
	Pass Status = iota
	// Mismatch means the output differed from the answer.
	Mismatch
	// NoAnswer means there was no answer file to compare with.
	NoAnswer
	// Failed means the source could not be parsed. Nothing is compared.
	Failed
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "ok"
	case Mismatch:
		return "mismatch"
	case NoAnswer:
		return "no answer"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome describes one fixture run.
type Outcome struct {
	Path   string
	Status Status
	// Output is the file the result was written to.
	Output string
	// Diff is a unified diff from the answer to the output when Status is
	// Mismatch.
	Diff string
	// Err is the scan or parse error, if any. In scanner mode an error is
	// part of the listing and is compared like any other line.
	Err error
}

// Report holds the outcomes of a run, ordered by path.
type Report struct {
	outcomes btree.Map[string, Outcome]
}

func (r *Report) add(o Outcome) {
	r.outcomes.Set(o.Path, o)
}

// Len returns the number of fixtures run.
func (r *Report) Len() int {
	return r.outcomes.Len()
}

// Outcomes returns the outcomes in path order.
func (r *Report) Outcomes() []Outcome {
	out := make([]Outcome, 0, r.outcomes.Len())
	r.outcomes.Scan(func(_ string, o Outcome) bool {
		out = append(out, o)
		return true
	})
	return out
}

// Passed reports whether every fixture matched its answer.
func (r *Report) Passed() bool {
	passed := true
	r.outcomes.Scan(func(_ string, o Outcome) bool {
		passed = o.Status == Pass
		return passed
	})
	return passed
}

// Runner runs fixtures.
type Runner struct {
	Config *config.Config
	// Scanner selects scanner mode: token listings are produced instead of
	// parse dumps.
	Scanner bool
	Logger  *slog.Logger
}

func (r *Runner) config() *config.Config {
	if r.Config == nil {
		return config.Default()
	}
	return r.Config
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// Discover expands args into the list of fixture sources. An argument that
// names a directory is searched with the configured include globs, one that
// contains glob meta characters is matched as a doublestar pattern, and any
// other argument is taken as a file name. The result is sorted and free of
// duplicates.
func (r *Runner) Discover(args []string) ([]string, error) {
	var found btree.Set[string]
	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && info.IsDir():
			for _, pattern := range r.config().Include {
				matches, err := doublestar.Glob(os.DirFS(arg), pattern, doublestar.WithFilesOnly())
				if err != nil {
					return nil, fmt.Errorf("%s: %w", pattern, err)
				}
				for _, m := range matches {
					found.Insert(filepath.Join(arg, filepath.FromSlash(m)))
				}
			}
		case err == nil:
			found.Insert(arg)
		case errors.Is(err, fs.ErrNotExist) && strings.ContainsAny(arg, "*?[{"):
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			for _, m := range matches {
				found.Insert(m)
			}
		default:
			return nil, err
		}
	}
	return found.Keys(), nil
}

// Run runs every fixture in paths. The error is non-nil only if the run
// itself could not be completed, for instance because an output file could
// not be written; fixtures that fail are recorded in the report.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	if r.Scanner {
		return r.runScanner(ctx, paths)
	}
	return r.runParser(ctx, paths)
}

func (r *Runner) runParser(ctx context.Context, paths []string) (*Report, error) {
	cfg := r.config()
	comp := eckfront.Compiler{
		Resolver:       &eckfront.SourceResolver{},
		MaxParallelism: cfg.Parallelism,
		// Every fixture runs, whatever happens to the others.
		Reporter: reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }),
		Logger:   r.logger(),
	}
	results, err := comp.Compile(ctx, paths...)
	if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
		return nil, err
	}

	var (
		mu     sync.Mutex
		report Report
	)
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(r.limit())
	for _, res := range results {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := Outcome{Path: res.Path, Output: outputPath(res.Path, cfg.ParseExt)}
			if res.Err != nil {
				o.Status, o.Err = Failed, res.Err
			} else {
				text := printer.String(res.AST)
				if err := os.WriteFile(o.Output, []byte(text), 0o644); err != nil {
					return err
				}
				var err error
				if o.Status, o.Diff, err = r.compare(res.Path, text, cfg.IgnoreLineNumbers); err != nil {
					return err
				}
			}
			mu.Lock()
			defer mu.Unlock()
			report.add(o)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *Runner) runScanner(ctx context.Context, paths []string) (*Report, error) {
	cfg := r.config()
	var (
		mu     sync.Mutex
		report Report
	)
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(r.limit())
	for _, path := range paths {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			s, err := scanner.New(path, f)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			lexErr := scanner.WriteListing(&buf, s)
			if lexErr != nil && !scanner.IsLexical(lexErr) {
				return lexErr
			}
			r.logger().DebugContext(ctx, "scanned file", slog.String("path", path), slog.Any("error", lexErr))

			o := Outcome{Path: path, Output: outputPath(path, cfg.TokensExt), Err: lexErr}
			if err := os.WriteFile(o.Output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			o.Status, o.Diff, err = r.compare(path, buf.String(), false)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			report.add(o)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *Runner) limit() int {
	if n := r.config().Parallelism; n > 0 {
		return n
	}
	return -1
}

// compare checks got against the answer file of the fixture at path.
func (r *Runner) compare(path, got string, ignoreLines bool) (Status, string, error) {
	data, err := os.ReadFile(outputPath(path, r.config().AnswerExt))
	if errors.Is(err, fs.ErrNotExist) {
		return NoAnswer, "", nil
	} else if err != nil {
		return 0, "", err
	}
	want := string(data)
	if ignoreLines {
		want, got = diff.IgnoreLineNumbers(want), diff.IgnoreLineNumbers(got)
	}
	if d := diff.Unified(want, got); d != "" {
		return Mismatch, d, nil
	}
	return Pass, "", nil
}

// outputPath replaces the extension of path with ext.
func outputPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
