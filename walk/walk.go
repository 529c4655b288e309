// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package walk discovers files below a set of root paths.
package walk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"go.astrophena.name/lice/logger"
)

// ErrNotUTF8 is returned by [Excluded] for paths that have a component that
// is not valid UTF-8.
var ErrNotUTF8 = errors.New("path component is not valid UTF-8")

// Excluded reports whether any component of path is exactly equal to one of
// patterns. There is no wildcard or substring matching.
//
// A path with a component that is not valid UTF-8 is always excluded, and
// the returned error wraps [ErrNotUTF8].
func Excluded(path string, patterns []string) (bool, error) {
	for _, c := range components(path) {
		if !utf8.ValidString(c) {
			return true, fmt.Errorf("%q: %w", path, ErrNotUTF8)
		}
		if slices.Contains(patterns, c) {
			return true, nil
		}
	}
	return false, nil
}

func components(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}

// Walker walks file trees depth-first.
//
// A Walker must not be modified after the first call to Walk.
type Walker struct {
	// Exclude lists path components that prune the walk, see [Excluded].
	Exclude []string
	// Skipped, if non-nil, is called with every excluded path.
	Skipped func(path string)
}

type item struct {
	path string
	root bool
}

// Walk calls visit for every regular file found below roots, in no particular
// order. A root that is itself a file is visited directly.
//
// Excluded paths and everything below them are skipped. Directories that
// can't be listed are logged and skipped. Symbolic links to directories are
// only followed when they are roots.
//
// Walk returns early with ctx's error if ctx is canceled.
func (w *Walker) Walk(ctx context.Context, roots []string, visit func(path string)) error {
	stack := make([]item, 0, len(roots))
	for _, r := range roots {
		stack = append(stack, item{path: r, root: true})
	}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if w.excluded(ctx, it.path) {
			continue
		}

		info, ok := w.stat(ctx, it)
		if !ok {
			continue
		}

		switch {
		case info.IsDir():
			entries, err := os.ReadDir(it.path)
			if err != nil {
				logger.Error(ctx, "failed to read directory", slog.String("path", it.path), logger.Err(err))
				continue
			}
			for _, e := range entries {
				stack = append(stack, item{path: filepath.Join(it.path, e.Name())})
			}
		case info.Mode().IsRegular():
			visit(it.path)
		default:
			logger.Debug(ctx, "skipping irregular file", slog.String("path", it.path), slog.String("mode", info.Mode().String()))
		}
	}
	return nil
}

func (w *Walker) excluded(ctx context.Context, path string) bool {
	ex, err := Excluded(path, w.Exclude)
	if err != nil {
		logger.Warn(ctx, "skipping path", logger.Err(err))
	}
	if ex && w.Skipped != nil {
		w.Skipped(path)
	}
	return ex
}

// stat resolves the file info of it, following symbolic links. ok is false
// if it must not be walked.
func (w *Walker) stat(ctx context.Context, it item) (info fs.FileInfo, ok bool) {
	info, err := os.Lstat(it.path)
	if err != nil {
		if it.root && errors.Is(err, fs.ErrNotExist) {
			logger.Warn(ctx, "target path not found", slog.String("path", it.path))
		} else {
			logger.Error(ctx, "failed to stat path", slog.String("path", it.path), logger.Err(err))
		}
		return nil, false
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return info, true
	}

	target, err := os.Stat(it.path)
	if err != nil {
		logger.Warn(ctx, "skipping broken symlink", slog.String("path", it.path), logger.Err(err))
		return nil, false
	}
	if target.IsDir() && !it.root {
		logger.Warn(ctx, "not following symlinked directory", slog.String("path", it.path))
		return nil, false
	}
	return target, true
}
