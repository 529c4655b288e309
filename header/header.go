// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package header builds license headers for source files and puts them in place.

A header is synthesized from raw license text and a comment [Profile]:

	hdr := header.Synthesize("Copyright X\nAll rights reserved\n", header.HashLine)
	// hdr == "# Copyright X\n# All rights reserved\n\n"

[IsCurrent] reports whether a file already starts with that header, and
[Replace] computes new file content when it does not. An interpreter directive
(a first line starting with "#!") is always kept as the first line.
*/
package header

import (
	"strings"
	"unicode"
)

// Synthesize renders raw as a comment header in the syntax of p.
//
// Trailing whitespace is trimmed from every line of raw. The result always
// ends with a blank line separating the header from the file body.
func Synthesize(raw string, p Profile) string {
	var sb strings.Builder
	if p.Block() {
		sb.WriteString(p.Start)
	}
	for _, line := range lines(raw) {
		sb.WriteString(p.Prefix)
		sb.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
		sb.WriteByte('\n')
	}
	if p.Block() {
		sb.WriteString(p.End)
	} else {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// IsCurrent reports whether content already starts with hdr.
//
// An interpreter directive line is skipped, leading whitespace of the body
// and trailing whitespace of hdr are ignored. Any other difference, such as
// a changed year, makes the header stale.
func IsCurrent(content, hdr string) bool {
	body := content[directiveLen(content):]
	body = strings.TrimLeftFunc(body, unicode.IsSpace)
	return strings.HasPrefix(body, strings.TrimRightFunc(hdr, unicode.IsSpace))
}

// directiveLen returns the length of the interpreter directive at the start
// of content, including its newline. It is zero when there is no directive or
// the directive is not newline-terminated.
func directiveLen(content string) int {
	if !strings.HasPrefix(content, "#!") {
		return 0
	}
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// lines splits s into lines. Line terminators ("\n" or "\r\n") are dropped,
// and a final terminator does not produce an empty trailing line.
func lines(s string) []string {
	if s == "" {
		return nil
	}
	ls := strings.Split(s, "\n")
	if ls[len(ls)-1] == "" {
		ls = ls[:len(ls)-1]
	}
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
