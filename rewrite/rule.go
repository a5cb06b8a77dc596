// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rewrite implements the term-rewriting kernel: a table of
// bidirectional equivalence rules, a pattern matcher with placeholder
// binding, a substituter, and memoized neighbor enumeration.
package rewrite

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/Qartar/algebra/expr"
	"github.com/Qartar/algebra/parse"
)

// A Rule is a bidirectional rewrite pattern. Source and Target are
// expressions whose leaves include placeholders; either may be rewritten
// to the other wherever its placeholders cover the rule's full set.
type Rule struct {
	Source expr.Expr
	Target expr.Expr
}

// ruleStrings is the rule library. Each entry is an equation whose
// single-letter lowercase symbols are converted into placeholders.
var ruleStrings = []string{
	// associativity of addition
	"(x + y) + z = x + (y + z)",

	// associativity of multiplication
	"(x * y) * z = x * (y * z)",

	// commutativity of addition
	"x + y = y + x",

	// commutativity of multiplication
	"x * y = y * x",

	// distributivity of multiplication over addition
	"a * (x + y) = a * x + a * y",

	// additive identity
	"x + 0 = x",

	// multiplicative identity
	"x * 1 = x",

	// multiplicative kernel
	"x * 0 = 0",

	// additive inverse
	"x + (-x) = 0",
	"-x = 0 - x",
	"x + (-y) = x - y",

	// multiplicative inverse
	"x * (x^-1) = 1",
	"x * (1/y) = x / y",

	"x + x = x * 2",
	"x * x = x ^ 2",

	//
	//  exponentiation and logarithms
	//

	"log(x * y, b) = log(x, b) + log(y, b)",

	// change of base
	"log(x, b) = log(x, y) / log(b, y)",

	"b ^ log(x, b) = x",
	"log(b ^ x, b) = x",

	// exponentiation identity
	"b ^ x * b ^ y = b ^ (x + y)",

	"(b ^ x) ^ y = b ^ (x * y)",

	// distributivity over multiplication
	"(x * y) ^ n = (x ^ n) * (y ^ n)",

	"x ^ 0 = 1",

	"x ^ 1 = x",

	"log(1, x) = 0",

	// function equivalence
	"log(x, e) = ln(x)",
	"log(x, y) = ln(x) / ln(y)",

	"e ^ x = exp(x)",
	"a ^ x = exp(x * ln(a))",

	//
	//  complex numbers
	//

	// fundamental property of i
	"i ^ 2 = -1",
	// euler's formula
	"e ^ (i * x) = cos(x) + i * sin(x)",

	//
	//  trigonometry
	//

	"sin(0) = 0",
	"cos(0) = 1",
	"sin(pi/2) = 1",
	"cos(pi/2) = 0",

	"tan(x) = sin(x) / cos(x)",
	"sec(x) = 1 / cos(x)",
	"csc(x) = 1 / sin(x)",
	"cot(x) = 1 / tan(x)",
	"1 = sin(x) ^ 2 + cos(x) ^ 2",

	"sin(-x) = -sin(x)",
	"cos(-x) = cos(x)",
	"tan(-x) = -tan(x)",

	"sin(pi/2 - x) = cos(x)",
	"cos(pi/2 - x) = sin(x)",
	"tan(pi/2 - x) = cot(x)",

	"sin(pi - x) = sin(x)",
	"cos(pi - x) = -cos(x)",
	"tan(pi - x) = -tan(x)",

	"sin(2pi - x) = sin(-x)",
	"cos(2pi - x) = cos(-x)",
	"tan(2pi - x) = tan(-x)",

	"sin(x + y) = sin(x) * cos(y) + cos(x) * sin(y)",

	"sin(x - y) = sin(x) * cos(y) - cos(x) * sin(y)",

	"cos(x + y) = cos(x) * cos(y) - sin(x) * sin(y)",
	"cos(x - y) = cos(x) * cos(y) + sin(x) * sin(y)",

	"sin(2pi + x) = sin(x)",
	"cos(2pi + x) = cos(x)",
	"tan(2pi + x) = tan(x)",

	"sin(2x) = 2 * sin(x) * cos(x)",
	"cos(2x) = cos(x) ^ 2 - sin(x) ^ 2",
	"cos(2x) = 2 * cos(x) ^ 2 - 1",

	"sin(3x) = 3 * sin(x) - 4 * sin(x) ^ 3",
	"cos(3x) = 4 * cos(x) ^ 3 - 3 * cos(x)",

	"sin(x) ^ 2 = (1 - cos(2x)) / 2",
	"cos(x) ^ 2 = (1 + cos(2x)) / 2",

	//
	//  differentiation
	//

	"d/dx(f + g) = d/dx(f) + d/dx(g)",
	"d/dx(f - g) = d/dx(f) - d/dx(g)",

	// product rule
	"d/dx(f * g) = d/dx(f) * g + f * d/dx(g)",

	// quotient rule
	"d/dx(f / g) = (d/dx(f) * g - f * d/dx(g)) / g^2",

	// power rule
	"d/dx(x) = 1",
	"d/dx(x ^ r) = r * x ^ (r - 1)",

	"d/dx(ln(x)) = 1/x",
	"d/dx(ln(f)) = d/dx(f) / f",
	"d/dx(exp(x)) = exp(x)",
	"d/dx(exp(f)) = d/dx(f) * exp(f)",

	"d/dx(sin(x)) = cos(x)",
	"d/dx(cos(x)) = -sin(x)",
	"d/dx(tan(x)) = sec(x) ^ 2",

	"d/dx(sin(f)) = d/dx(f) * cos(f)",
	"d/dx(cos(f)) = d/dx(f) * -sin(f)",
	"d/dx(tan(f)) = d/dx(f) * sec(f) ^ 2",
}

var (
	rulesOnce sync.Once
	ruleTable []Rule
)

// Rules returns the rule table, materializing it on first use.
func Rules() []Rule {
	rulesOnce.Do(func() {
		for _, s := range ruleStrings {
			e, err := parse.Parse("rules", s)
			if err != nil {
				panic("rewrite: bad rule " + s + ": " + err.Error())
			}
			eq, ok := e.(*expr.Op)
			if !ok || eq.Kind != expr.Equality {
				panic("rewrite: rule is not an equation: " + s)
			}
			ruleTable = append(ruleTable, Rule{toPattern(eq.Lhs), toPattern(eq.Rhs)})
		}
		ph := expr.Placeholder('x' - 'a')
		// The reciprocal operator has no surface syntax; its defining
		// rule recip(x) = 1 / x is built directly.
		ruleTable = append(ruleTable, Rule{
			Source: expr.Unary(expr.Reciprocal, ph),
			Target: expr.NewOp(expr.Quotient, expr.Value(1), ph),
		})
		log.Debugf("rewrite: loaded %d rules", len(ruleTable))
	})
	return ruleTable
}

// toPattern converts the free symbols of a parsed rule into placeholders.
func toPattern(e expr.Expr) expr.Expr {
	switch e := e.(type) {
	case *expr.Op:
		return expr.NewOp(e.Kind, toPattern(e.Lhs), toPattern(e.Rhs))
	case expr.Symbol:
		if len(e) != 1 || e[0] < 'a' || e[0] > 'z' {
			panic("rewrite: rule symbol is not a placeholder: " + string(e))
		}
		return expr.Placeholder(e[0] - 'a')
	}
	return e
}
