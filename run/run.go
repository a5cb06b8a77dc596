// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the read-eval-print loop for the simplifier.
// It is factored out of main so it can be used for tests.
package run

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Qartar/algebra/config"
	"github.com/Qartar/algebra/expr"
	"github.com/Qartar/algebra/parse"
	"github.com/Qartar/algebra/search"
)

// Run reads expressions from the input one line at a time, simplifies
// each, and prints its derivation to the configured output. It returns
// on end of input or an empty line. Parse errors are reported to the
// configured error output and do not stop the loop.
func Run(conf *config.Config, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		if conf.Interactive() {
			fmt.Fprint(conf.Output(), conf.Prompt())
		}
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return
		}
		Line(conf, line)
	}
}

// Line parses and simplifies a single line of input, returning the
// simplified expression. A line that fails to parse reports the error
// and yields the empty expression.
func Line(conf *config.Config, line string) expr.Expr {
	e, err := parse.Parse("input", line)
	if err != nil {
		fmt.Fprintf(conf.ErrOutput(), "%s\n", err)
		return e
	}
	return search.Simplify(conf, e)
}
