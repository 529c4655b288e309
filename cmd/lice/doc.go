// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Lice inserts or updates license headers in source files.

Usage:

	$ lice -f <file> [flags...] [paths...]

Lice walks the given paths (the current directory by default) and makes
sure that every file with a known extension starts with the license header
read from the file passed with -f. The header text is wrapped in the comment
syntax of each language: C-style block comments for C, C++ and CSS,
line comments for everything else.

An existing header is replaced when it no longer matches the template. The
interpreter directive (#!) on the first line of a script is preserved.
Files starting with an unclosed block comment are left alone.

Directories and files whose path has a component equal to one of the -e
patterns are skipped:

	$ lice -f LICENSE.header -e vendor -e testdata .

Files are processed in parallel by -j workers, one per CPU by default.
Use -dry to print the files that would change, one per line, without
writing anything.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/lice/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
