// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/lice/testutil"
)

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	level := new(slog.LevelVar)
	l := New(level)
	l.Attach(NewConsoleHandler(&buf, level, false))
	ctx := Put(context.Background(), l)

	Debug(ctx, "hidden")
	Warn(ctx, "skipping file", slog.String("path", "a/b.c"), Err(errors.New("boom")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %q", out)
	}
	for _, want := range []string{"WRN", "skipping file", "path=a/b.c", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output contains color escapes: %q", out)
	}

	buf.Reset()
	level.Set(slog.LevelDebug)
	Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message not logged after lowering level: %q", buf.String())
	}
}

func TestAttach(t *testing.T) {
	var a, b bytes.Buffer
	l := New(nil)
	l.Attach(slog.NewTextHandler(&a, nil))
	l.Info("only a")
	l.Attach(slog.NewTextHandler(&b, nil))
	l.With("k", "v").Info("both")

	testutil.AssertEqual(t, strings.Count(a.String(), "msg="), 2)
	testutil.AssertEqual(t, strings.Count(b.String(), "msg="), 1)
	testutil.AssertEqual(t, strings.Count(b.String(), "k=v"), 1)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	if !IsDefault(Get(ctx)) {
		t.Fatal("Get on empty context must return the default logger")
	}
	l := New(nil)
	ctx = Put(ctx, l)
	if Get(ctx) != l {
		t.Fatal("Get must return the logger stored by Put")
	}
	testutil.AssertEqual(t, LevelVar(ctx).Level(), slog.LevelInfo)
}
