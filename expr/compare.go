// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// variant returns the ordering index of an expression's variant.
// Empty < Op < Function < Constant < Value < Symbol < Placeholder.
func variant(e Expr) int {
	switch e.(type) {
	case Empty:
		return 0
	case *Op:
		return 1
	case Function:
		return 2
	case Constant:
		return 3
	case Value:
		return 4
	case Symbol:
		return 5
	case Placeholder:
		return 6
	}
	panic("expr: unknown variant")
}

// Compare defines a total order over expressions: lexicographic on
// (variant, variant-specific ordering). For operator nodes the order is
// operator kind, then left operand, then right operand, recursively.
// It returns -1, 0, or +1.
func Compare(a, b Expr) int {
	if d := variant(a) - variant(b); d != 0 {
		return sign(d)
	}
	switch a := a.(type) {
	case Empty:
		return 0
	case *Op:
		bo := b.(*Op)
		if d := int(a.Kind) - int(bo.Kind); d != 0 {
			return sign(d)
		}
		if d := Compare(a.Lhs, bo.Lhs); d != 0 {
			return d
		}
		return Compare(a.Rhs, bo.Rhs)
	case Function:
		return sign(int(a) - int(b.(Function)))
	case Constant:
		return sign(int(a) - int(b.(Constant)))
	case Value:
		bv := b.(Value)
		switch {
		case a < bv:
			return -1
		case a > bv:
			return 1
		}
		return 0
	case Symbol:
		bs := b.(Symbol)
		switch {
		case a < bs:
			return -1
		case a > bs:
			return 1
		}
		return 0
	case Placeholder:
		return sign(int(a) - int(b.(Placeholder)))
	}
	panic("expr: unknown variant")
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Equal reports whether two expressions are structurally equal.
func Equal(a, b Expr) bool {
	return Compare(a, b) == 0
}

// OpCount returns the number of operator nodes in the expression, the
// cost metric used by the search.
func OpCount(e Expr) int {
	if o, ok := e.(*Op); ok {
		return 1 + OpCount(o.Lhs) + OpCount(o.Rhs)
	}
	return 0
}

// Placeholders returns the set of placeholders appearing in the expression.
func Placeholders(e Expr) map[Placeholder]bool {
	set := make(map[Placeholder]bool)
	addPlaceholders(e, set)
	return set
}

func addPlaceholders(e Expr, set map[Placeholder]bool) {
	switch e := e.(type) {
	case *Op:
		addPlaceholders(e.Lhs, set)
		addPlaceholders(e.Rhs, set)
	case Placeholder:
		set[e] = true
	}
}
