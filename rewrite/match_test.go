// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rewrite

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Qartar/algebra/expr"
	"github.com/Qartar/algebra/parse"
)

func mustParse(t *testing.T, input string) expr.Expr {
	t.Helper()
	e, err := parse.Parse("test", input)
	require.NoError(t, err)
	return e
}

// pattern parses a rule side, converting its symbols to placeholders.
func pattern(t *testing.T, input string) expr.Expr {
	t.Helper()
	return toPattern(mustParse(t, input))
}

var (
	phX = expr.Placeholder('x' - 'a')
	phY = expr.Placeholder('y' - 'a')
)

func TestMatchBinds(t *testing.T) {
	b := make(Binding)
	require.True(t, Match(phX, mustParse(t, "sin(u)"), b))
	require.Len(t, b, 1)
	assert.True(t, expr.Equal(b[phX], mustParse(t, "sin(u)")))
}

func TestMatchRepeatedPlaceholder(t *testing.T) {
	pat := pattern(t, "x + x")

	b := make(Binding)
	require.True(t, Match(pat, mustParse(t, "u + u"), b))
	assert.True(t, expr.Equal(b[phX], expr.Symbol("u")))

	b = make(Binding)
	assert.False(t, Match(pat, mustParse(t, "u + v"), b))
	// A failed match must leave the binding untouched.
	assert.Empty(t, b)
}

func TestMatchBoundPlaceholder(t *testing.T) {
	b := Binding{phX: expr.Symbol("u")}
	assert.True(t, Match(phX, expr.Symbol("u"), b))
	assert.False(t, Match(phX, expr.Symbol("v"), b))
	require.Len(t, b, 1)
}

func TestMatchPlaceholderPairs(t *testing.T) {
	b := make(Binding)
	assert.True(t, Match(phX, phX, b))
	assert.False(t, Match(phX, phY, b))
	assert.Empty(t, b)
}

// Placeholders on either operand are treated as free variables.
func TestMatchEitherSide(t *testing.T) {
	b := make(Binding)
	require.True(t, Match(mustParse(t, "sin(u)"), phX, b))
	assert.True(t, expr.Equal(b[phX], mustParse(t, "sin(u)")))
}

func TestMatchLeaves(t *testing.T) {
	tests := []struct {
		lhs, rhs expr.Expr
		want     bool
	}{
		{expr.Value(2), expr.Value(2), true},
		{expr.Value(2), expr.Value(3), false},
		{expr.Pi, expr.Pi, true},
		{expr.Pi, expr.E, false},
		{expr.Symbol("u"), expr.Symbol("u"), true},
		{expr.Symbol("u"), expr.Symbol("v"), false},
		{expr.SinFn, expr.SinFn, true},
		{expr.SinFn, expr.CosFn, false},
		{expr.Empty{}, expr.Empty{}, true},
		{expr.Value(2), expr.Pi, false},
		{expr.Symbol("u"), expr.Value(2), false},
	}
	for _, tt := range tests {
		b := make(Binding)
		assert.Equal(t, tt.want, Match(tt.lhs, tt.rhs, b), "%s vs %s", tt.lhs, tt.rhs)
	}
}

// For placeholder-free expressions, match is structural equality.
func TestMatchIsEqualityWithoutPlaceholders(t *testing.T) {
	exprs := []expr.Expr{
		mustParse(t, "x + 0"),
		mustParse(t, "sin(x + y)"),
		mustParse(t, "log(x * y, b)"),
		mustParse(t, "2x^3"),
		expr.Empty{},
	}
	for i, a := range exprs {
		for j, b := range exprs {
			got := Match(a, b, make(Binding))
			assert.Equal(t, i == j, got, "%s vs %s", a, b)
			assert.Equal(t, expr.Equal(a, b), got)
		}
	}
}

func TestMatchPartialFailureRollsBack(t *testing.T) {
	// The left child binds x before the right child fails; the caller's
	// binding must not retain the partial result.
	pat := pattern(t, "x * (x^-1)")
	b := make(Binding)
	require.False(t, Match(pat, mustParse(t, "u * (v^-1)"), b))
	assert.Empty(t, b)
}

func TestApply(t *testing.T) {
	b := Binding{
		phX: expr.Symbol("u"),
		phY: mustParse(t, "sin(v)"),
	}
	got := Apply(pattern(t, "x * y + x"), b)
	assert.Equal(t, "((u * sin(v)) + u)", got.String())
	assert.Empty(t, expr.Placeholders(got))
}

func TestApplyUnboundPanics(t *testing.T) {
	assert.Panics(t, func() {
		Apply(pattern(t, "x + y"), Binding{phX: expr.Symbol("u")})
	})
}

// Every rule must be applicable in at least one direction: the
// placeholders of one side cover the rule's full set.
func TestRulesWellFormed(t *testing.T) {
	rules := Rules()
	require.NotEmpty(t, rules)
	for _, r := range rules {
		sp := expr.Placeholders(r.Source)
		tp := expr.Placeholders(r.Target)
		union := make(map[expr.Placeholder]bool)
		for p := range sp {
			union[p] = true
		}
		for p := range tp {
			union[p] = true
		}
		ok := len(sp) == len(union) || len(tp) == len(union)
		assert.True(t, ok, "rule %s = %s", r.Source, r.Target)
	}
}

// Instantiating a rule source under a binding and matching the source
// against the result recovers the binding.
func TestRuleMatchRoundTrip(t *testing.T) {
	for i, r := range Rules() {
		sp := expr.Placeholders(r.Source)
		if len(sp) == 0 {
			continue
		}
		b := make(Binding)
		for p := range sp {
			b[p] = expr.Symbol(fmt.Sprintf("u%s", p))
		}
		concrete := Apply(r.Source, b)

		got := make(Binding)
		require.True(t, Match(r.Source, concrete, got), "rule %d: %s", i, r.Source)
		for p := range sp {
			assert.True(t, expr.Equal(got[p], b[p]), "rule %d placeholder %s", i, p)
		}
	}
}
