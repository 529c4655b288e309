// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"strings"
	"unicode"
)

// Outcome describes what [Replace] did to a file.
type Outcome int

const (
	// Inserted means the header was added in front of the existing content.
	Inserted Outcome = iota
	// Updated means a stale header was removed and replaced.
	Updated
	// SkippedMalformed means the file starts with a block comment that is
	// never closed. The content is returned unchanged.
	SkippedMalformed
)

func (o Outcome) String() string {
	switch o {
	case Inserted:
		return "inserted"
	case Updated:
		return "updated"
	case SkippedMalformed:
		return "skipped malformed"
	default:
		return "unknown"
	}
}

// Replace returns content with hdr, synthesized for p, as its header.
//
// For block profiles, a leading comment that opens with p.Start is taken to
// be the old header, up to and including the first p.End. If p.End never
// follows, content is returned as is together with SkippedMalformed. Other
// leading comments, like doc comments or one-line notices, are kept and the
// header is inserted before them.
//
// For line profiles, the run of comment lines at the top of the file, up to
// and including the first blank line, is taken to be the old header.
func Replace(content, hdr string, p Profile) (string, Outcome) {
	if p.Block() {
		return replaceBlock(content, hdr, p)
	}
	return replaceLines(content, hdr, p)
}

func replaceBlock(content, hdr string, p Profile) (string, Outcome) {
	directive, rest := splitDirective(content)

	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, p.Start) {
		return directive + hdr + rest, Inserted
	}

	afterOpen := trimmed[len(p.Start):]
	end := strings.Index(afterOpen, p.End)
	if end < 0 {
		return content, SkippedMalformed
	}
	body := afterOpen[end+len(p.End):]
	return directive + hdr + strings.TrimLeftFunc(body, unicode.IsSpace), Updated
}

// splitDirective splits off a leading interpreter directive line. The
// returned directive always ends with a newline unless it is empty.
func splitDirective(content string) (directive, rest string) {
	if !strings.HasPrefix(content, "#!") {
		return "", content
	}
	i := strings.IndexByte(content, '\n')
	if i < 0 {
		return content + "\n", ""
	}
	return content[:i+1], content[i+1:]
}

func replaceLines(content, hdr string, p Profile) (string, Outcome) {
	ls := lines(content)

	var (
		directive string
		start     int
	)
	if len(ls) > 0 && strings.HasPrefix(ls[0], "#!") {
		directive = ls[0]
		start = 1
	}

	marker := strings.TrimSpace(p.Prefix)
	i := start
	for i < len(ls) {
		line := strings.TrimSpace(ls[i])
		if strings.HasPrefix(line, marker) {
			i++
			continue
		}
		// One blank line terminates the old header.
		if line == "" {
			i++
		}
		break
	}

	outcome := Inserted
	for _, l := range ls[start:i] {
		if strings.TrimSpace(l) != "" {
			outcome = Updated
			break
		}
	}

	var sb strings.Builder
	if start > 0 {
		sb.WriteString(directive)
		sb.WriteByte('\n')
	}
	sb.WriteString(hdr)
	sb.WriteString(strings.Join(ls[i:], "\n"))
	out := sb.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, outcome
}
