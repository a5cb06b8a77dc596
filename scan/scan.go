// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan tokenizes the textual form of algebraic expressions.
package scan

import "fmt"

// Token represents a token returned from the scanner.
type Token struct {
	Type Type   // The type of this token.
	Pos  int    // Byte offset of the token in the input.
	Text string // The text of this token.
}

// Type identifies the type of lexical tokens.
type Type int

const (
	EOF   Type = iota // zero value so an exhausted scanner delivers EOF
	Error             // error occurred; value is text of error
	Number
	Identifier
	Operator   // one of + - * / ^
	Assign     // '='
	Comma      // ','
	LeftParen  // '('
	RightParen // ')'
)

var typeNames = [...]string{"EOF", "Error", "Number", "Identifier", "Operator", "Assign", "Comma", "LeftParen", "RightParen"}

func (t Type) String() string { return typeNames[t] }

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "EOF"
	case Error:
		return "error: " + t.Text
	}
	return fmt.Sprintf("%s: %q", t.Type, t.Text)
}

const eof = -1

// Scanner holds the state of the scanner.
type Scanner struct {
	name  string // the name of the input; used only for error reports
	input string // the text being scanned
	pos   int    // current position in the input
	start int    // start position of the token being scanned
}

// New returns a scanner for the given input text.
func New(name, input string) *Scanner {
	return &Scanner{name: name, input: input}
}

func (s *Scanner) next() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	r := rune(s.input[s.pos])
	s.pos++
	return r
}

func (s *Scanner) peek() rune {
	if s.pos >= len(s.input) {
		return eof
	}
	return rune(s.input[s.pos])
}

func (s *Scanner) backup() {
	s.pos--
}

// emit returns the pending text as a token of the given type.
func (s *Scanner) emit(t Type) Token {
	tok := Token{t, s.start, s.input[s.start:s.pos]}
	s.start = s.pos
	return tok
}

func (s *Scanner) errorf(format string, args ...interface{}) Token {
	tok := Token{Error, s.start, fmt.Sprintf(format, args...)}
	s.start = s.pos
	return tok
}

func isDigit(r rune) bool  { return '0' <= r && r <= '9' }
func isLetter(r rune) bool { return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' }

// Next returns the next token in the input.
func (s *Scanner) Next() Token {
	for {
		r := s.next()
		switch {
		case r == eof:
			return s.emit(EOF)
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			s.start = s.pos
			continue
		case r == '+' || r == '-' || r == '*' || r == '/' || r == '^':
			return s.emit(Operator)
		case r == '=':
			return s.emit(Assign)
		case r == ',':
			return s.emit(Comma)
		case r == '(':
			return s.emit(LeftParen)
		case r == ')':
			return s.emit(RightParen)
		case isDigit(r) || r == '.':
			dot := r == '.'
			for {
				r = s.next()
				if isDigit(r) {
					continue
				}
				if r == '.' && !dot {
					dot = true
					continue
				}
				break
			}
			if r != eof {
				s.backup()
			}
			if s.input[s.start:s.pos] == "." {
				return s.errorf("%s: bare '.' is not a number", s.name)
			}
			return s.emit(Number)
		case isLetter(r):
			for isLetter(s.peek()) {
				s.next()
			}
			return s.emit(Identifier)
		default:
			return s.errorf("%s: unrecognized character %q", s.name, r)
		}
	}
}
