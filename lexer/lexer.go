/*
 * Zen
 *
 * Copyright 2026 The Zen Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package lexer implements the Zen front-end's scanner: a stateful,
// pull-driven byte scanner that turns a source buffer into a stream of
// token.Token values on demand. It holds no look-ahead buffer of its own;
// the parser pulls exactly one token at a time via NextToken.
package lexer

import (
	"fmt"

	"zenlang.dev/zen/token"
)

// Lexer scans a single source buffer. The buffer must outlive every Token
// it produces, since lexemes are borrowed slices into it.
type Lexer struct {
	name   string // identifier used only for diagnostics
	src    string
	pos    int // index of the next unread byte
	line   int
	column int
}

// New creates a Lexer over src. name identifies the source in diagnostics
// (typically a file name); it is not interpreted.
func New(name, src string) *Lexer {
	return &Lexer{name: name, src: src, pos: 0, line: 1, column: 1}
}

// Name returns the identifier this lexer was constructed with.
func (l *Lexer) Name() string {
	return l.name
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	i := l.pos + offset
	if i >= len(l.src) {
		return 0
	}
	return l.src[i]
}

// advance consumes and returns the current byte, updating line/column.
func (l *Lexer) advance() byte {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return b
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isAlpha(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphaNumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}

// skipWhitespaceAndComments consumes ASCII space/tab/carriage-return runs
// and "// ..." line comments. Newlines are left for NextToken to emit as
// NEWLINE tokens — they are never swallowed here.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r':
			l.advance()
		case '/':
			if l.peekAt(1) == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// NextToken returns the next token in the source. Once EOF is reached it
// returns an EOF token on every subsequent call (idempotent).
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespaceAndComments()

	if l.atEnd() {
		return l.make(token.EOF, l.line, l.column, "")
	}

	startLine, startCol := l.line, l.column
	b := l.peek()

	switch {
	case b == '\n':
		l.advance()
		return l.make(token.NEWLINE, startLine, startCol, "\n")

	case isDigit(b):
		return l.lexNumber(startLine, startCol)

	case b == '"':
		return l.lexString(startLine, startCol)

	case isAlpha(b):
		return l.lexIdentifier(startLine, startCol)

	default:
		return l.lexOperator(startLine, startCol)
	}
}

func (l *Lexer) make(kind token.Kind, line, col int, lexeme string) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: col}
}

// lexNumber scans one or more digits, optionally followed by '.' and more
// digits. Numeric parsing itself is deferred to the parser.
func (l *Lexer) lexNumber(line, col int) token.Token {
	start := l.pos
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}
	if !l.atEnd() && l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.advance() // consume '.'
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}
	return l.make(token.NUMBER, line, col, l.src[start:l.pos])
}

// lexString scans a "..."-delimited string. The lexer does not interpret
// escape sequences; it returns the raw slice including the surrounding
// quotes. The parser is responsible for stripping them.
func (l *Lexer) lexString(line, col int) token.Token {
	start := l.pos
	l.advance() // opening quote

	for {
		if l.atEnd() {
			return l.make(token.ERROR, line, col, "unterminated string literal")
		}
		c := l.advance()
		if c == '\\' && !l.atEnd() {
			// An escape sequence: consume the following byte verbatim so an
			// escaped quote does not terminate the string. The escape is
			// left uninterpreted; the parser only strips the quotes.
			l.advance()
			continue
		}
		if c == '"' {
			break
		}
	}

	return l.make(token.STRING, line, col, l.src[start:l.pos])
}

// lexIdentifier scans an identifier or keyword: a leading letter/underscore
// followed by letters, digits, or underscores.
func (l *Lexer) lexIdentifier(line, col int) token.Token {
	start := l.pos
	for !l.atEnd() && isAlphaNumeric(l.peek()) {
		l.advance()
	}
	lexeme := l.src[start:l.pos]

	if kind, ok := token.Keywords[lexeme]; ok {
		return l.make(kind, line, col, lexeme)
	}
	return l.make(token.IDENTIFIER, line, col, lexeme)
}

// lexOperator performs a maximal-munch match over the operator/delimiter
// tables: two-byte operators are tried before falling back to one byte.
func (l *Lexer) lexOperator(line, col int) token.Token {
	if l.pos+2 <= len(l.src) {
		two := l.src[l.pos : l.pos+2]
		if kind, ok := token.TwoCharOperators[two]; ok {
			l.advance()
			l.advance()
			return l.make(kind, line, col, two)
		}
	}

	b := l.peek()
	if kind, ok := token.OneCharOperators[b]; ok {
		l.advance()
		return l.make(kind, line, col, string(b))
	}

	// The ERROR lexeme here is synthesized rather than borrowed from src,
	// unlike every other token this lexer produces; an unrecognized byte
	// is rare enough off the hot path that a formatted diagnostic string
	// is worth more than preserving the borrow-only invariant for it.
	l.advance()
	return l.make(token.ERROR, line, col, fmt.Sprintf("unexpected character %q", b))
}
