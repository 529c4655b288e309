// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"go.astrophena.name/lice/cli"
	"go.astrophena.name/lice/engine"
	"go.astrophena.name/lice/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	// configuration, initialized in Flags
	file    string
	exclude stringList
	jobs    int
	dry     bool

	// initialized in Run
	report *engine.Report
}

func (a *app) Flags(fs *flag.FlagSet) {
	for _, name := range []string{"f", "file"} {
		fs.StringVar(&a.file, name, "", "Read the license header from `path`.")
	}
	for _, name := range []string{"e", "exclude"} {
		fs.Var(&a.exclude, name, "Skip paths with a component equal to `pattern`. Can be repeated.")
	}
	for _, name := range []string{"j", "jobs"} {
		fs.IntVar(&a.jobs, name, 0, "Number of parallel `workers`. Defaults to the number of CPUs.")
	}
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would change, without writing them.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.file == "" {
		return fmt.Errorf("%w: -f is required", cli.ErrInvalidArgs)
	}
	if a.jobs < 0 {
		return fmt.Errorf("%w: -j must not be negative", cli.ErrInvalidArgs)
	}
	roots := env.Args
	if len(roots) == 0 {
		roots = []string{"."}
	}
	for _, r := range roots {
		if r == "" {
			return fmt.Errorf("%w: empty path", cli.ErrInvalidArgs)
		}
	}

	license, err := readLicense(a.file)
	if err != nil {
		return err
	}

	e, err := engine.New(engine.Config{
		License: license,
		Roots:   roots,
		Exclude: a.exclude,
		Jobs:    a.jobs,
		DryRun:  a.dry,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}

	a.report, err = e.Run(ctx)
	logger.Info(ctx, "done", slog.Any("files", a.report))
	if a.dry {
		// Machine-readable list of files that would change.
		changed := append(a.report.Paths(engine.Inserted), a.report.Paths(engine.Updated)...)
		slices.Sort(changed)
		for _, path := range changed {
			fmt.Fprintln(env.Stdout, path)
		}
	}
	return err
}

func readLicense(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading license file: %w", err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("reading license file: %s is not valid UTF-8 text", path)
	}
	return string(b), nil
}

// stringList is a flag.Value that collects every occurrence of a flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(s string) error {
	*l = append(*l, s)
	return nil
}
