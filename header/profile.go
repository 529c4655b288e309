// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"path/filepath"
	"strings"
)

// Profile describes the comment syntax of a language.
//
// Line-comment profiles have empty Start and End. Block-comment profiles have
// both set, and End includes the blank line that separates the header from
// the file body. An existing block header is recognized only by these exact
// markers, so other leading comments such as "/**" or "/*!" are kept.
type Profile struct {
	Start  string
	Prefix string
	End    string
}

// Block reports whether p describes block comments.
func (p Profile) Block() bool { return p.Start != "" && p.End != "" }

// Known comment profiles.
var (
	// CBlock is the C-style /* ... */ block comment.
	CBlock = Profile{Start: "/*\n", Prefix: " * ", End: " */\n\n"}
	// SlashLine is the // line comment.
	SlashLine = Profile{Prefix: "// "}
	// HashLine is the # line comment of shells and scripting languages.
	HashLine = Profile{Prefix: "# "}
	// DashLine is the -- line comment of Lua, Haskell and SQL.
	DashLine = Profile{Prefix: "-- "}
)

var profiles = map[string]Profile{
	"c":     CBlock,
	"h":     CBlock,
	"cc":    CBlock,
	"cpp":   CBlock,
	"cxx":   CBlock,
	"hpp":   CBlock,
	"hh":    CBlock,
	"css":   CBlock,
	"scss":  CBlock,
	"rs":    SlashLine,
	"go":    SlashLine,
	"java":  SlashLine,
	"js":    SlashLine,
	"mjs":   SlashLine,
	"ts":    SlashLine,
	"tsx":   SlashLine,
	"kt":    SlashLine,
	"swift": SlashLine,
	"proto": SlashLine,
	"py":    HashLine,
	"sh":    HashLine,
	"bash":  HashLine,
	"rb":    HashLine,
	"pl":    HashLine,
	"yaml":  HashLine,
	"yml":   HashLine,
	"toml":  HashLine,
	"lua":   DashLine,
	"hs":    DashLine,
	"sql":   DashLine,
}

// Lookup returns the comment profile for a file extension given without the
// leading dot, such as "go" or "py". Extensions are case-sensitive.
// The boolean is false if the extension is not supported.
func Lookup(ext string) (Profile, bool) {
	p, ok := profiles[ext]
	return p, ok
}

// ForPath returns the comment profile for the extension of path.
func ForPath(path string) (Profile, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return Profile{}, false
	}
	return Lookup(ext)
}

// Extensions returns every supported extension.
func Extensions() []string {
	exts := make([]string, 0, len(profiles))
	for ext := range profiles {
		exts = append(exts, ext)
	}
	return exts
}
