// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package engine applies a license header to every supported file below a set
of root paths.

An [Engine] is built once from a [Config] and never changes afterwards, so
it is shared by all workers without locking. [Engine.Run] walks the roots on
the calling goroutine and feeds discovered files either straight into the
per-file pipeline (one job) or through a shared queue to a pool of workers.

The per-file pipeline resolves the comment style from the file extension,
synthesizes the header, checks whether the file already carries it, and
rewrites the file in place if it does not. Failures on one file are logged
and never affect other files.
*/
package engine

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"unicode/utf8"

	"go.astrophena.name/lice/header"
	"go.astrophena.name/lice/logger"
	"go.astrophena.name/lice/syncx"
	"go.astrophena.name/lice/walk"

	"golang.org/x/sync/errgroup"
)

// Config configures an [Engine].
type Config struct {
	// License is the raw header text, without comment markers.
	License string
	// Roots are the files and directories to process.
	Roots []string
	// Exclude lists path components that are skipped, see [walk.Excluded].
	Exclude []string
	// Jobs is the number of workers. Zero means [DefaultJobs].
	Jobs int
	// DryRun reports changes without writing files.
	DryRun bool
}

// Engine applies a license header to files. It is safe for concurrent use.
type Engine struct {
	license string
	roots   []string
	exclude []string
	jobs    int
	dryRun  bool
}

// New returns an Engine for cfg. The slices of cfg are copied.
func New(cfg Config) (*Engine, error) {
	if len(cfg.Roots) == 0 {
		return nil, errors.New("no target paths")
	}
	if slices.Contains(cfg.Roots, "") {
		return nil, errors.New("empty target path")
	}
	if cfg.Jobs < 0 {
		return nil, fmt.Errorf("invalid number of jobs %d", cfg.Jobs)
	}
	jobs := cfg.Jobs
	if jobs == 0 {
		jobs = DefaultJobs()
	}
	return &Engine{
		license: cfg.License,
		roots:   slices.Clone(cfg.Roots),
		exclude: slices.Clone(cfg.Exclude),
		jobs:    jobs,
		dryRun:  cfg.DryRun,
	}, nil
}

// DefaultJobs returns the number of workers used when none is configured:
// the number of CPUs the process may use.
func DefaultJobs() int { return runtime.GOMAXPROCS(0) }

// Jobs returns the number of workers e runs with.
func (e *Engine) Jobs() int { return e.jobs }

// Run processes every file below the roots of e and reports what happened to
// each of them.
//
// Run returns an error only if ctx is canceled before all files were
// processed. Files already being processed are still finished.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	r := new(Report)
	w := &walk.Walker{
		Exclude: e.exclude,
		Skipped: func(path string) { r.record(path, Excluded) },
	}

	if e.jobs == 1 {
		logger.Info(ctx, "running in single-threaded mode")
		err := w.Walk(ctx, e.roots, func(path string) {
			r.record(path, e.Process(ctx, path))
		})
		return r, err
	}

	logger.Info(ctx, "starting workers", slog.Int("jobs", e.jobs))
	q := syncx.NewQueue[string]()
	var g errgroup.Group
	for range e.jobs {
		g.Go(func() error { return e.work(ctx, q, r) })
	}

	walkErr := w.Walk(ctx, e.roots, func(path string) { q.Push(path) })
	q.Close()
	return r, cmp.Or(walkErr, g.Wait())
}

// work processes paths from q until it is closed and drained. It stops early
// with ctx's error if ctx is canceled.
func (e *Engine) work(ctx context.Context, q *syncx.Queue[string], r *Report) error {
	for {
		path, ok := q.Pop()
		if !ok {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		r.record(path, e.Process(ctx, path))
	}
}

var errNotText = errors.New("file is not valid UTF-8 text")

// Process runs the per-file pipeline on path and returns its outcome.
// Errors are logged, never returned.
func (e *Engine) Process(ctx context.Context, path string) Status {
	p, ok := header.ForPath(path)
	if !ok {
		logger.Info(ctx, "ignoring unsupported file type", slog.String("path", path))
		return Unsupported
	}
	st, err := e.apply(ctx, path, p)
	if err != nil {
		logger.Error(ctx, "failed to process file", slog.String("path", path), logger.Err(err))
		return Failed
	}
	return st
}

func (e *Engine) apply(ctx context.Context, path string, p header.Profile) (Status, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Failed, err
	}
	if !utf8.Valid(b) {
		return Failed, errNotText
	}
	content := string(b)

	hdr := header.Synthesize(e.license, p)
	if header.IsCurrent(content, hdr) {
		logger.Debug(ctx, "license OK", slog.String("path", path))
		return Current, nil
	}

	out, outcome := header.Replace(content, hdr, p)
	st := statusOf(outcome)
	if st == Malformed {
		logger.Warn(ctx, "skipping file with unclosed block comment", slog.String("path", path))
		return st, nil
	}

	if e.dryRun {
		logger.Info(ctx, "would update license", slog.String("path", path), slog.String("action", st.String()))
		return st, nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return Failed, err
	}
	logger.Info(ctx, "updated license", slog.String("path", path), slog.String("action", st.String()))
	return st, nil
}
