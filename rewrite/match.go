// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import "github.com/Qartar/algebra/expr"

// Binding is a partial mapping from placeholder to matched subexpression,
// built incrementally by the matcher.
type Binding map[expr.Placeholder]expr.Expr

func (b Binding) clone() Binding {
	nb := make(Binding, len(b))
	for p, e := range b {
		nb[p] = e
	}
	return nb
}

// commit copies every entry of nb into b. Bindings only grow, so this
// publishes a successful recursive match to the caller's binding.
func (b Binding) commit(nb Binding) {
	for p, e := range nb {
		b[p] = e
	}
}

// covers reports whether the binding's domain is exactly the given set.
func (b Binding) covers(set map[expr.Placeholder]bool) bool {
	if len(b) != len(set) {
		return false
	}
	for p := range set {
		if _, ok := b[p]; !ok {
			return false
		}
	}
	return true
}

// Match attempts to unify lhs against rhs, extending the binding.
// Placeholders on either side are treated as free variables. The binding
// is updated only if the whole match succeeds.
func Match(lhs, rhs expr.Expr, b Binding) bool {
	nb := b.clone()
	if matchR(lhs, rhs, nb) {
		b.commit(nb)
		return true
	}
	return false
}

func matchR(lhs, rhs expr.Expr, b Binding) bool {
	lp, lok := lhs.(expr.Placeholder)
	_, rok := rhs.(expr.Placeholder)

	// Two placeholders match only if they are the same placeholder.
	if lok && rok {
		return lhs == rhs
	}
	// A bound placeholder must match its binding; an unbound one binds.
	if lok {
		if bound, ok := b[lp]; ok {
			nb := b.clone()
			if !matchR(bound, rhs, nb) {
				return false
			}
			b.commit(nb)
			return true
		}
		b[lp] = rhs
		return true
	}
	if rok {
		return matchR(rhs, lhs, b)
	}

	switch lhs := lhs.(type) {
	case expr.Value:
		rhs, ok := rhs.(expr.Value)
		return ok && lhs == rhs
	case expr.Constant:
		rhs, ok := rhs.(expr.Constant)
		return ok && lhs == rhs
	case expr.Symbol:
		rhs, ok := rhs.(expr.Symbol)
		return ok && lhs == rhs
	case expr.Function:
		rhs, ok := rhs.(expr.Function)
		return ok && lhs == rhs
	case expr.Empty:
		_, ok := rhs.(expr.Empty)
		return ok
	case *expr.Op:
		rhs, ok := rhs.(*expr.Op)
		if !ok || lhs.Kind != rhs.Kind {
			return false
		}
		// Both children must match under one accumulating binding,
		// committed to the caller only if both succeed.
		nb := b.clone()
		if !matchR(lhs.Lhs, rhs.Lhs, nb) {
			return false
		}
		if !matchR(lhs.Rhs, rhs.Rhs, nb) {
			return false
		}
		b.commit(nb)
		return true
	}
	return false
}

// Apply instantiates a rule pattern under a binding, producing a concrete
// expression. Every placeholder in the target must be bound.
func Apply(target expr.Expr, b Binding) expr.Expr {
	switch target := target.(type) {
	case expr.Placeholder:
		e, ok := b[target]
		if !ok {
			panic("rewrite: unbound placeholder " + target.String())
		}
		return e
	case *expr.Op:
		return expr.NewOp(target.Kind, Apply(target.Lhs, b), Apply(target.Rhs, b))
	}
	return target
}
