// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"math"
	"sort"
	"sync"

	"github.com/Qartar/algebra/expr"
)

// The neighbor cache is keyed by the printed form of the expression, which
// is identical for structurally equal expressions. The search revisits
// structurally identical subtrees across different parents, so enumeration
// is memoized process-wide. The cache grows without bound across a
// long-running session; Reset discards it.
var (
	cacheMu sync.Mutex
	cache   = make(map[string][]expr.Expr)
)

// Reset discards the memoized neighbor sets.
func Reset() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache = make(map[string][]expr.Expr)
}

// CacheSize returns the number of memoized neighbor sets.
func CacheSize() int {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	return len(cache)
}

// Neighbors returns every expression reachable from e by exactly one
// rewrite step: any rule applied in either direction at any node of e,
// plus numeric folding of operators over two literals. The result is
// sorted by the expression total order and contains no duplicates and no
// placeholders.
func Neighbors(e expr.Expr) []expr.Expr {
	key := e.String()
	cacheMu.Lock()
	out, ok := cache[key]
	cacheMu.Unlock()
	if ok {
		return out
	}

	set := make(map[string]expr.Expr)
	insert := func(n expr.Expr) {
		set[n.String()] = n
	}

	for _, r := range Rules() {
		sp := expr.Placeholders(r.Source)
		tp := expr.Placeholders(r.Target)
		union := make(map[expr.Placeholder]bool, len(sp)+len(tp))
		for p := range sp {
			union[p] = true
		}
		for p := range tp {
			union[p] = true
		}

		// A direction applies only when its pattern declares every
		// placeholder of the rule; otherwise substitution would leave
		// free placeholders in the result.
		if len(sp) == len(union) {
			b := make(Binding)
			if Match(r.Source, e, b) && b.covers(union) {
				insert(Apply(r.Target, b))
			}
		}
		if len(tp) == len(union) {
			b := make(Binding)
			if Match(r.Target, e, b) && b.covers(union) {
				insert(Apply(r.Source, b))
			}
		}
	}

	if op, ok := e.(*expr.Op); ok {
		// The head of a call is not an operand: rewriting it would leave
		// a call of something that is not a function.
		if op.Kind != expr.Call {
			for _, l := range Neighbors(op.Lhs) {
				insert(expr.NewOp(op.Kind, l, op.Rhs))
			}
		}
		for _, r := range Neighbors(op.Rhs) {
			insert(expr.NewOp(op.Kind, op.Lhs, r))
		}
		if folded, ok := fold(op); ok {
			insert(folded)
		}
	}

	out = make([]expr.Expr, 0, len(set))
	for _, n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return expr.Compare(out[i], out[j]) < 0 })

	cacheMu.Lock()
	cache[key] = out
	cacheMu.Unlock()
	return out
}

// fold computes an operator applied to two numeric literals. Results keep
// the platform's float64 semantics: divide by zero and 0^0 are not
// suppressed.
func fold(op *expr.Op) (expr.Expr, bool) {
	a, ok := op.Lhs.(expr.Value)
	if !ok {
		return nil, false
	}
	b, ok := op.Rhs.(expr.Value)
	if !ok {
		return nil, false
	}
	switch op.Kind {
	case expr.Sum:
		return a + b, true
	case expr.Difference:
		return a - b, true
	case expr.Product:
		return a * b, true
	case expr.Quotient:
		return a / b, true
	case expr.Exponent:
		return expr.Value(math.Pow(float64(a), float64(b))), true
	}
	return nil, false
}
