// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package search finds small equivalent forms of an expression by
// best-first search over the rewrite graph.
package search

import (
	"container/heap"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/Qartar/algebra/config"
	"github.com/Qartar/algebra/expr"
	"github.com/Qartar/algebra/rewrite"
)

// item is a frontier entry with its cached operation count.
type item struct {
	e   expr.Expr
	ops int
}

// frontier is a min-heap of expressions ordered by operation count.
// Ties are broken arbitrarily.
type frontier []item

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].ops < f[j].ops }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(item)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[:n-1]
	return x
}

// Simplify searches the space of expressions reachable from e by rewrite
// steps and returns the smallest one found, by operation count, within the
// configured budgets. The derivation path from e to the result is printed
// to the configured output, one "(<opcount>) <expression>" line per step.
func Simplify(conf *config.Config, e expr.Expr) expr.Expr {
	var f frontier
	heap.Init(&f)
	heap.Push(&f, item{e, expr.OpCount(e)})

	closed := map[string]bool{e.String(): true}
	trace := make(map[string]expr.Expr)

	best := e
	bestOps := expr.OpCount(e)
	maxOps := conf.MaxOps()
	maxIters := conf.MaxIters()

	for iter := 0; iter < maxIters && f.Len() > 0; iter++ {
		next := heap.Pop(&f).(item)
		log.Debugf("search: iter %d ops %d %s", iter, next.ops, next.e)

		if next.ops < bestOps {
			best, bestOps = next.e, next.ops
		}
		// Expanding past the complexity budget is pruned; expanding zero
		// cannot improve.
		if next.ops >= maxOps {
			break
		}
		if next.ops == 0 {
			break
		}

		for _, n := range rewrite.Neighbors(next.e) {
			key := n.String()
			if closed[key] {
				continue
			}
			closed[key] = true
			heap.Push(&f, item{n, expr.OpCount(n)})
			trace[key] = next.e
		}
	}

	traceback(conf.Output(), best, trace)
	return best
}

// traceback prints the parent chain from the initial expression down to e.
func traceback(w io.Writer, e expr.Expr, trace map[string]expr.Expr) {
	if parent, ok := trace[e.String()]; ok {
		traceback(w, parent, trace)
	}
	fmt.Fprintf(w, "(%d) %s\n", expr.OpCount(e), e)
}
