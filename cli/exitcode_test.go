// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"errors"
	"flag"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	cases := map[string]struct {
		err  error
		want int
	}{
		"success":      {nil, 0},
		"help":         {flag.ErrHelp, 0},
		"version":      {ErrExitVersion, 0},
		"invalid args": {fmt.Errorf("%w: no license", ErrInvalidArgs), 1},
		"failure":      {errors.New("boom"), 1},
		"flag error":   {&unprintableError{errors.New("bad flag")}, 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := exitCode(tc.err); got != tc.want {
				t.Errorf("exitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
