// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse builds expression trees from infix text.
//
// The grammar, loosest-binding first:
//
//	equation: sum [ '=' sum ]
//	sum:      term { ('+' | '-') term }
//	term:     unary { ('*' | '/') unary }
//	unary:    '-' unary | power
//	power:    primary [ '^' unary ]
//	primary:  number | constant | symbol | function '(' args ')' |
//	          'd/dx' '(' sum ')' | '(' sum ')'
//
// A numeric or constant factor followed directly by an operand that does
// not lead with '-' is an implicit product: 2pi, 2x, 2sin(x).
package parse

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"github.com/Qartar/algebra/expr"
	"github.com/Qartar/algebra/scan"
)

// Error is the panic payload for syntax errors, recovered in Parse.
type Error string

func (e Error) Error() string {
	return string(e)
}

// Parser holds the parsing state: a scanner and a token lookahead buffer.
type Parser struct {
	scanner *scan.Scanner
	tokens  []scan.Token
}

// Parse parses a single expression (or equation) from the input text.
// On a syntax error it returns the empty expression and a non-nil error.
func Parse(name, input string) (e expr.Expr, err error) {
	defer func() {
		switch r := recover().(type) {
		case nil:
		case Error:
			e, err = expr.Empty{}, errors.Wrapf(r, "parsing %q", input)
		default:
			panic(r)
		}
	}()
	p := &Parser{scanner: scan.New(name, input)}
	if p.peek().Type == scan.EOF {
		return expr.Empty{}, nil
	}
	e = p.equation()
	if tok := p.peek(); tok.Type != scan.EOF {
		p.errorf("unexpected %s", tok)
	}
	return e, nil
}

func (p *Parser) errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}

// peekAt returns the i'th upcoming token without consuming anything.
func (p *Parser) peekAt(i int) scan.Token {
	for len(p.tokens) <= i {
		p.tokens = append(p.tokens, p.scanner.Next())
	}
	return p.tokens[i]
}

func (p *Parser) peek() scan.Token {
	return p.peekAt(0)
}

func (p *Parser) next() scan.Token {
	tok := p.peekAt(0)
	if tok.Type == scan.Error {
		p.errorf("%s", tok.Text)
	}
	if tok.Type != scan.EOF {
		p.tokens = p.tokens[1:]
	}
	return tok
}

func (p *Parser) expect(typ scan.Type) scan.Token {
	tok := p.next()
	if tok.Type != typ {
		p.errorf("expected %s, found %s", typ, tok)
	}
	return tok
}

func (p *Parser) equation() expr.Expr {
	lhs := p.sum()
	if p.peek().Type == scan.Assign {
		p.next()
		return expr.NewOp(expr.Equality, lhs, p.sum())
	}
	return lhs
}

func (p *Parser) sum() expr.Expr {
	lhs := p.term()
	for {
		tok := p.peek()
		if tok.Type != scan.Operator || tok.Text != "+" && tok.Text != "-" {
			return lhs
		}
		p.next()
		kind := expr.Sum
		if tok.Text == "-" {
			kind = expr.Difference
		}
		lhs = expr.NewOp(kind, lhs, p.term())
	}
}

func (p *Parser) term() expr.Expr {
	lhs := p.unary()
	for {
		tok := p.peek()
		switch {
		case tok.Type == scan.Operator && (tok.Text == "*" || tok.Text == "/"):
			p.next()
			kind := expr.Product
			if tok.Text == "/" {
				kind = expr.Quotient
			}
			lhs = expr.NewOp(kind, lhs, p.unary())
		case implicitProduct(lhs, tok):
			lhs = expr.NewOp(expr.Product, lhs, p.power())
		default:
			return lhs
		}
	}
}

// implicitProduct reports whether an operand token directly following a
// numeric or constant factor forms an implicit product, as in 2pi or 2x.
func implicitProduct(lhs expr.Expr, tok scan.Token) bool {
	switch lhs.(type) {
	case expr.Value, expr.Constant:
	default:
		return false
	}
	switch tok.Type {
	case scan.Number, scan.Identifier, scan.LeftParen:
		return true
	}
	return false
}

func (p *Parser) unary() expr.Expr {
	if tok := p.peek(); tok.Type == scan.Operator && tok.Text == "-" {
		p.next()
		return expr.Unary(expr.Negative, p.unary())
	}
	return p.power()
}

func (p *Parser) power() expr.Expr {
	lhs := p.primary()
	if tok := p.peek(); tok.Type == scan.Operator && tok.Text == "^" {
		p.next()
		// Right-associative; the exponent may lead with a unary minus.
		return expr.NewOp(expr.Exponent, lhs, p.unary())
	}
	return lhs
}

var functions = map[string]expr.Function{
	"exp": expr.ExpFn,
	"ln":  expr.LogFn,
	"sin": expr.SinFn,
	"cos": expr.CosFn,
	"tan": expr.TanFn,
	"sec": expr.SecFn,
	"csc": expr.CscFn,
	"cot": expr.CotFn,
}

var constants = map[string]expr.Constant{
	"pi": expr.Pi,
	"e":  expr.E,
	"i":  expr.I,
}

func (p *Parser) primary() expr.Expr {
	tok := p.peek()
	switch tok.Type {
	case scan.Number:
		p.next()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.errorf("bad number %q", tok.Text)
		}
		return expr.Value(v)
	case scan.LeftParen:
		p.next()
		e := p.sum()
		p.expect(scan.RightParen)
		return e
	case scan.Identifier:
		return p.identifier()
	}
	p.errorf("unexpected %s", tok)
	panic("unreachable")
}

func (p *Parser) identifier() expr.Expr {
	tok := p.next()
	name := tok.Text

	// d/dx(body): derivative of body with respect to x.
	if name == "d" && p.derivativeAhead() {
		p.next() // '/'
		wrt := p.next().Text[1:]
		p.expect(scan.LeftParen)
		body := p.sum()
		p.expect(scan.RightParen)
		return expr.NewOp(expr.Derivative, expr.Symbol(wrt), body)
	}

	if name == "log" {
		p.expect(scan.LeftParen)
		arg := p.sum()
		p.expect(scan.Comma)
		base := p.sum()
		p.expect(scan.RightParen)
		return expr.NewOp(expr.Logarithm, arg, base)
	}

	if f, ok := functions[name]; ok {
		p.expect(scan.LeftParen)
		arg := p.sum()
		p.expect(scan.RightParen)
		return expr.CallFn(f, arg)
	}

	if c, ok := constants[name]; ok {
		return c
	}

	// An unknown identifier followed by an argument list is a symbolic
	// function application; otherwise it is a free symbol.
	if p.peek().Type == scan.LeftParen {
		p.next()
		args := p.sum()
		for p.peek().Type == scan.Comma {
			p.next()
			args = expr.NewOp(expr.Comma, args, p.sum())
		}
		p.expect(scan.RightParen)
		return expr.NewOp(expr.Call, expr.Symbol(name), args)
	}
	return expr.Symbol(name)
}

// derivativeAhead reports whether the tokens following a leading "d" spell
// the rest of a derivative: '/' 'dx' '(' for some variable x.
func (p *Parser) derivativeAhead() bool {
	slash := p.peekAt(0)
	wrt := p.peekAt(1)
	open := p.peekAt(2)
	return slash.Type == scan.Operator && slash.Text == "/" &&
		wrt.Type == scan.Identifier && len(wrt.Text) >= 2 && wrt.Text[0] == 'd' &&
		open.Type == scan.LeftParen
}
