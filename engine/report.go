// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package engine

import (
	"log/slog"

	"go.astrophena.name/lice/header"
	"go.astrophena.name/lice/syncx"
)

// Status is the outcome of processing one path.
type Status int

const (
	// Current means the file already had the header.
	Current Status = iota
	// Inserted means the header was added.
	Inserted
	// Updated means a stale header was replaced.
	Updated
	// Malformed means the file starts with an unclosed block comment and was
	// left untouched.
	Malformed
	// Unsupported means the file extension has no known comment style.
	Unsupported
	// Failed means the file could not be read or written.
	Failed
	// Excluded means the path matched an exclusion pattern.
	Excluded

	numStatuses
)

var statusNames = [numStatuses]string{
	Current:     "current",
	Inserted:    "inserted",
	Updated:     "updated",
	Malformed:   "malformed",
	Unsupported: "unsupported",
	Failed:      "failed",
	Excluded:    "excluded",
}

func (s Status) String() string {
	if s < 0 || s >= numStatuses {
		return "unknown"
	}
	return statusNames[s]
}

// Changed reports whether s means a file was (or, in a dry run, would be)
// rewritten.
func (s Status) Changed() bool { return s == Inserted || s == Updated }

func statusOf(o header.Outcome) Status {
	switch o {
	case header.Updated:
		return Updated
	case header.SkippedMalformed:
		return Malformed
	default:
		return Inserted
	}
}

// Report collects the outcome of every path seen during a run.
// Workers record into it concurrently.
type Report struct {
	paths syncx.Map[string, Status]
}

func (r *Report) record(path string, s Status) { r.paths.Store(path, s) }

// Status returns the outcome recorded for path.
func (r *Report) Status(path string) (Status, bool) { return r.paths.Load(path) }

// Counts returns the number of paths per outcome.
func (r *Report) Counts() map[Status]int {
	counts := make(map[Status]int)
	r.paths.Range(func(_ string, s Status) bool {
		counts[s]++
		return true
	})
	return counts
}

// Paths returns every recorded path with the given outcome.
func (r *Report) Paths(s Status) []string {
	var paths []string
	r.paths.Range(func(path string, st Status) bool {
		if st == s {
			paths = append(paths, path)
		}
		return true
	})
	return paths
}

// LogValue implements [slog.LogValuer], logging the non-zero counts.
func (r *Report) LogValue() slog.Value {
	counts := r.Counts()
	attrs := make([]slog.Attr, 0, len(counts))
	for s := range numStatuses {
		if n := counts[s]; n > 0 {
			attrs = append(attrs, slog.Int(s.String(), n))
		}
	}
	return slog.GroupValue(attrs...)
}
