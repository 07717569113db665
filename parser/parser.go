/*
 * Zen
 *
 * Copyright 2026 The Zen Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package parser implements the Zen front-end's recursive-descent parser:
// it drives a lexer.Lexer one token at a time, builds an ast.Program inside
// an ast.Arena, and recovers from syntax errors by panic-mode
// resynchronization instead of propagating them as exceptions.
package parser

import (
	"strconv"

	"zenlang.dev/zen/ast"
	"zenlang.dev/zen/lexer"
	"zenlang.dev/zen/token"
	"zenlang.dev/zen/zenlog"
)

/*
Parser holds the lexer, the one token of look-ahead the grammar needs, and
the error-recovery state described in spec §4.3 and §7.
*/
type Parser struct {
	lex *lexer.Lexer

	current  token.Token
	previous token.Token

	hadError   bool
	panicMode  bool
	firstError *Diagnostic

	arena         *ast.Arena
	arenaCapacity int

	sink Sink
	log  zenlog.Logger
}

/*
Parse is the public entry point. It parses src (named name, for
diagnostics) to completion and always returns a tree — possibly partial,
if syntax errors were found — together with the arena that owns it and a
success flag equal to !had_error. The parser never panics or returns a Go
error; syntactic failures are reported through the configured Sink and
folded into the returned bool.
*/
func Parse(name, src string, opts ...Option) (arena *ast.Arena, root ast.Handle, ok bool) {
	p := newParser(name, src, opts...)
	root = p.parseProgram()
	return p.arena, root, !p.hadError
}

func newParser(name, src string, opts ...Option) *Parser {
	p := &Parser{
		lex:  lexer.New(name, src),
		sink: defaultSink(),
		log:  zenlog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.arena == nil {
		p.arena = ast.NewArena(p.arenaCapacity)
	}

	// Prime current by running one advance over a synthetic empty
	// previous token, per §4.3 ("primed at construction by reading the
	// first token into current").
	p.current = token.Token{Kind: token.EOF}
	p.advance()

	return p
}

// FirstError returns the first diagnostic reported during the parse, or
// nil if parsing succeeded.
func (p *Parser) FirstError() *Diagnostic {
	return p.firstError
}

// Primitive operations
// ====================

/*
advance shifts current into previous and pulls the next token from the
lexer. ERROR tokens from the lexer are reported and silently skipped — the
parser never sees a token of kind ERROR in current.
*/
func (p *Parser) advance() {
	p.previous = p.current
	for {
		p.current = p.lex.NextToken()
		if p.current.Kind != token.ERROR {
			return
		}
		p.errorAt(p.current, p.current.Lexeme)
	}
}

// check reports whether current is of the given kind.
func (p *Parser) check(kind token.Kind) bool {
	return p.current.Kind == kind
}

// match advances and returns true if current is of the given kind,
// otherwise leaves the parser's position unchanged and returns false.
func (p *Parser) match(kind token.Kind) bool {
	if !p.check(kind) {
		return false
	}
	p.advance()
	return true
}

// consume requires current to be of the given kind, advancing past it. If
// it is not, a MissingToken diagnostic anchored at current is reported.
func (p *Parser) consume(kind token.Kind, msg string) bool {
	if p.match(kind) {
		return true
	}
	p.errorAt(p.current, msg)
	return false
}

// errorAt reports a parse error. Cascading errors within the same
// panic-mode region are suppressed before they reach the sink, per §7.
func (p *Parser) errorAt(tok token.Token, msg string) {
	if p.panicMode {
		return
	}
	p.panicMode = true
	p.hadError = true

	d := Diagnostic{Token: tok, Message: msg}
	if p.firstError == nil {
		first := d
		p.firstError = &first
	}
	p.sink(d)
}

// synchronize advances until the input reaches a plausible resumption
// point: just past a ';', or at a token that starts a fresh declaration or
// statement. It then clears panic mode so parsing can continue.
func (p *Parser) synchronize() {
	p.log.LogDebug("resynchronizing at ", p.current)

	for !p.check(token.EOF) {
		if p.previous.Kind == token.SEMICOLON {
			break
		}
		switch p.current.Kind {
		case token.FUNC, token.LET, token.CONST, token.FOR, token.IF, token.WHILE, token.RETURN:
			p.panicMode = false
			return
		}
		p.advance()
	}

	p.panicMode = false
}

// skipTerminators consumes zero or more ';'/NEWLINE tokens. Used where the
// grammar tolerates either terminator, possibly repeated.
func (p *Parser) skipTerminators() {
	for p.check(token.SEMICOLON) || p.check(token.NEWLINE) {
		p.advance()
	}
}

// Declarations and statements
// ===========================

func (p *Parser) parseProgram() ast.Handle {
	var decls []ast.Handle

	for !p.check(token.EOF) {
		if p.match(token.NEWLINE) {
			continue
		}
		if h := p.declaration(); h.Valid() {
			decls = append(decls, h)
		}
	}

	return p.arena.NewProgram(token.Token{}, decls)
}

// declaration implements `declaration: func-decl | var-decl | statement`
// and is also what Block uses for `( NEWLINE | declaration )*`, so the
// same resynchronization applies whether the error occurred at the top
// level or nested inside a function body.
func (p *Parser) declaration() ast.Handle {
	var h ast.Handle = ast.NoHandle

	switch {
	case p.match(token.FUNC):
		h = p.funcDecl()
	case p.check(token.LET) || p.check(token.CONST):
		p.advance()
		h = p.varDeclBody()
	default:
		h = p.statement()
	}

	if p.panicMode {
		p.synchronize()
	}

	return h
}

// funcDecl parses `func IDENT '(' params? ')' ( '->' type )? block`.
// p.previous is the FUNC token on entry.
func (p *Parser) funcDecl() ast.Handle {
	tok := p.previous

	if !p.consume(token.IDENTIFIER, "expected function name") {
		return ast.NoHandle
	}
	name := p.previous.Lexeme

	if !p.consume(token.LPAREN, "expected '(' after function name") {
		return ast.NoHandle
	}

	var params []ast.Param
	if !p.check(token.RPAREN) {
		for {
			if !p.consume(token.IDENTIFIER, "expected parameter name") {
				return ast.NoHandle
			}
			pname := p.previous.Lexeme
			if !p.consume(token.COLON, "expected ':' after parameter name") {
				return ast.NoHandle
			}
			params = append(params, ast.Param{Name: pname, Type: p.parseType()})
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if !p.consume(token.RPAREN, "expected ')' after parameters") {
		return ast.NoHandle
	}

	ret := ast.Void
	if p.match(token.ARROW) {
		ret = p.parseType()
	}

	body := p.block()
	if !body.Valid() {
		return ast.NoHandle
	}

	return p.arena.NewFuncDecl(tok, name, params, ret, body)
}

// parseType parses one of the five type keywords. Anything else is a
// parse error; the caller's slot is left at ast.Unknown.
func (p *Parser) parseType() ast.Type {
	switch {
	case p.match(token.I32):
		return ast.I32
	case p.match(token.F64):
		return ast.F64
	case p.match(token.STRINGTYPE):
		return ast.StringType
	case p.match(token.BOOL):
		return ast.Bool
	case p.match(token.VOID):
		return ast.Void
	}
	p.errorAt(p.current, "expected a type")
	return ast.Unknown
}

// varDeclBody parses `(let|const) IDENT (':' type)? ('=' expression)? ';'`.
// p.previous is the LET or CONST token on entry.
func (p *Parser) varDeclBody() ast.Handle {
	tok := p.previous
	isConst := tok.Kind == token.CONST

	if !p.consume(token.IDENTIFIER, "expected variable name") {
		return ast.NoHandle
	}
	name := p.previous.Lexeme

	typ := ast.Unknown
	if p.match(token.COLON) {
		typ = p.parseType()
	}

	init := ast.NoHandle
	if p.match(token.EQUAL) {
		init = p.expression()
		if !init.Valid() {
			return ast.NoHandle
		}
	}

	if !p.consume(token.SEMICOLON, "expected ';' after variable declaration") {
		return ast.NoHandle
	}

	return p.arena.NewVarDecl(tok, name, typ, isConst, init)
}

// statement implements the Statement production: if-statement |
// return-statement | while-statement | for-statement | block | var-decl |
// expression-statement. var-decl is included directly (not only reached
// through declaration()) so it can stand as the un-braced body of an
// if/while/for, e.g. `while (x) let y = 1;`.
func (p *Parser) statement() ast.Handle {
	switch {
	case p.match(token.IF):
		return p.ifStatement()
	case p.match(token.RETURN):
		return p.returnStatement()
	case p.match(token.WHILE):
		return p.whileStatement()
	case p.match(token.FOR):
		return p.forStatement()
	case p.check(token.LBRACE):
		return p.block()
	case p.check(token.LET) || p.check(token.CONST):
		p.advance()
		return p.varDeclBody()
	default:
		return p.exprStatement()
	}
}

// ifStatement parses `if '(' expression ')' statement ( else statement )?`.
// Dangling else binds to the nearest if because the else, if present, is
// consumed by whichever ifStatement call is still on the call stack.
func (p *Parser) ifStatement() ast.Handle {
	tok := p.previous

	if !p.consume(token.LPAREN, "expected '(' after 'if'") {
		return ast.NoHandle
	}
	cond := p.expression()
	if !p.consume(token.RPAREN, "expected ')' after condition") {
		return ast.NoHandle
	}

	then := p.statement()
	if !then.Valid() {
		return ast.NoHandle
	}

	elseBranch := ast.NoHandle
	if p.match(token.ELSE) {
		elseBranch = p.statement()
	}

	return p.arena.NewIf(tok, cond, then, elseBranch)
}

// whileStatement parses `while '(' expression ')' statement`.
func (p *Parser) whileStatement() ast.Handle {
	tok := p.previous

	if !p.consume(token.LPAREN, "expected '(' after 'while'") {
		return ast.NoHandle
	}
	cond := p.expression()
	if !p.consume(token.RPAREN, "expected ')' after condition") {
		return ast.NoHandle
	}

	body := p.statement()
	if !body.Valid() {
		return ast.NoHandle
	}

	return p.arena.NewWhile(tok, cond, body)
}

// forStatement parses `for IDENT in expression statement`.
func (p *Parser) forStatement() ast.Handle {
	tok := p.previous

	if !p.consume(token.IDENTIFIER, "expected loop variable name") {
		return ast.NoHandle
	}
	varName := p.previous.Lexeme

	if !p.consume(token.IN, "expected 'in' after loop variable") {
		return ast.NoHandle
	}

	iterable := p.expression()
	if !iterable.Valid() {
		return ast.NoHandle
	}

	body := p.statement()
	if !body.Valid() {
		return ast.NoHandle
	}

	return p.arena.NewFor(tok, varName, iterable, body)
}

// returnStatement parses `return expression? (';' | NEWLINE)?`.
func (p *Parser) returnStatement() ast.Handle {
	tok := p.previous

	value := ast.NoHandle
	if !p.check(token.SEMICOLON) && !p.check(token.NEWLINE) &&
		!p.check(token.RBRACE) && !p.check(token.EOF) {
		value = p.expression()
	}

	if p.check(token.SEMICOLON) || p.check(token.NEWLINE) {
		p.advance()
	}

	return p.arena.NewReturn(tok, value)
}

// block parses `'{' ( NEWLINE | declaration )* '}'`.
func (p *Parser) block() ast.Handle {
	if !p.consume(token.LBRACE, "expected '{'") {
		return ast.NoHandle
	}
	tok := p.previous

	var stmts []ast.Handle
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		if p.match(token.NEWLINE) {
			continue
		}
		if h := p.declaration(); h.Valid() {
			stmts = append(stmts, h)
		}
	}

	if !p.consume(token.RBRACE, "expected '}' to close block") {
		return ast.NoHandle
	}

	return p.arena.NewBlock(tok, stmts)
}

// exprStatement parses `expression (';' | NEWLINE)*`.
func (p *Parser) exprStatement() ast.Handle {
	tok := p.current
	expr := p.expression()
	if !expr.Valid() {
		return ast.NoHandle
	}
	p.skipTerminators()
	return p.arena.NewExprStmt(tok, expr)
}

// Expression grammar — the precedence ladder
// ===========================================
//
// One mutually recursive function per level, ascending precedence:
// or < and < equality < comparison < term < factor < unary < postfix <
// primary. Left-associativity is realized by `for p.match(op) {...}` at
// each binary level; unary's right-associativity by direct recursion.

func (p *Parser) expression() ast.Handle {
	return p.or()
}

func (p *Parser) or() ast.Handle {
	left := p.and()
	if !left.Valid() {
		return ast.NoHandle
	}
	for p.match(token.OROR) {
		tok := p.previous
		right := p.and()
		if !right.Valid() {
			return ast.NoHandle
		}
		left = p.arena.NewBinary(tok, ast.OpOr, left, right)
	}
	return left
}

func (p *Parser) and() ast.Handle {
	left := p.equality()
	if !left.Valid() {
		return ast.NoHandle
	}
	for p.match(token.ANDAND) {
		tok := p.previous
		right := p.equality()
		if !right.Valid() {
			return ast.NoHandle
		}
		left = p.arena.NewBinary(tok, ast.OpAnd, left, right)
	}
	return left
}

func (p *Parser) equality() ast.Handle {
	left := p.comparison()
	if !left.Valid() {
		return ast.NoHandle
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.match(token.EQEQ):
			op = ast.OpEq
		case p.match(token.NOTEQ):
			op = ast.OpNeq
		case p.match(token.IS):
			op = ast.OpIs
		default:
			return left
		}
		tok := p.previous
		right := p.comparison()
		if !right.Valid() {
			return ast.NoHandle
		}
		left = p.arena.NewBinary(tok, op, left, right)
	}
}

func (p *Parser) comparison() ast.Handle {
	left := p.term()
	if !left.Valid() {
		return ast.NoHandle
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.match(token.LESS):
			op = ast.OpLt
		case p.match(token.LESSEQ):
			op = ast.OpLeq
		case p.match(token.GREATER):
			op = ast.OpGt
		case p.match(token.GREATEREQ):
			op = ast.OpGeq
		default:
			return left
		}
		tok := p.previous
		right := p.term()
		if !right.Valid() {
			return ast.NoHandle
		}
		left = p.arena.NewBinary(tok, op, left, right)
	}
}

func (p *Parser) term() ast.Handle {
	left := p.factor()
	if !left.Valid() {
		return ast.NoHandle
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.match(token.PLUS):
			op = ast.OpAdd
		case p.match(token.MINUS):
			op = ast.OpSub
		default:
			return left
		}
		tok := p.previous
		right := p.factor()
		if !right.Valid() {
			return ast.NoHandle
		}
		left = p.arena.NewBinary(tok, op, left, right)
	}
}

func (p *Parser) factor() ast.Handle {
	left := p.unary()
	if !left.Valid() {
		return ast.NoHandle
	}
	for {
		var op ast.BinaryOp
		switch {
		case p.match(token.STAR):
			op = ast.OpMul
		case p.match(token.SLASH):
			op = ast.OpDiv
		case p.match(token.PERCENT):
			op = ast.OpMod
		default:
			return left
		}
		tok := p.previous
		right := p.unary()
		if !right.Valid() {
			return ast.NoHandle
		}
		left = p.arena.NewBinary(tok, op, left, right)
	}
}

// unary implements `( '!' | '-' ) unary | postfix` via direct recursion,
// giving it right-associative binding.
func (p *Parser) unary() ast.Handle {
	switch {
	case p.match(token.BANG):
		tok := p.previous
		operand := p.unary()
		if !operand.Valid() {
			return ast.NoHandle
		}
		return p.arena.NewUnary(tok, ast.OpNot, operand)
	case p.match(token.MINUS):
		tok := p.previous
		operand := p.unary()
		if !operand.Valid() {
			return ast.NoHandle
		}
		return p.arena.NewUnary(tok, ast.OpNeg, operand)
	}
	return p.postfix()
}

// postfix implements `primary ( '(' args ')' )*`, a left-to-right call chain.
func (p *Parser) postfix() ast.Handle {
	expr := p.primary()
	if !expr.Valid() {
		return ast.NoHandle
	}

	for p.match(token.LPAREN) {
		tok := p.previous
		args, ok := p.callArgs()
		if !ok {
			return ast.NoHandle
		}
		if !p.consume(token.RPAREN, "expected ')' after arguments") {
			return ast.NoHandle
		}
		expr = p.arena.NewCall(tok, expr, args)
	}

	return expr
}

// callArgs parses a comma-separated, possibly empty argument list with no
// trailing comma.
func (p *Parser) callArgs() ([]ast.Handle, bool) {
	var args []ast.Handle
	if p.check(token.RPAREN) {
		return args, true
	}
	for {
		arg := p.expression()
		if !arg.Valid() {
			return nil, false
		}
		args = append(args, arg)
		if !p.match(token.COMMA) {
			break
		}
	}
	return args, true
}

// primary implements `literal | identifier | '(' expression ')'`.
func (p *Parser) primary() ast.Handle {
	switch {
	case p.match(token.NUMBER):
		tok := p.previous
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			p.errorAt(tok, "invalid number literal")
			return ast.NoHandle
		}
		return p.arena.NewLiteralNumber(tok, value)

	case p.match(token.STRING):
		tok := p.previous
		// The lexer never interprets escapes and keeps the surrounding
		// quotes in the lexeme; stripping them is the parser's whole job.
		s := tok.Lexeme[1 : len(tok.Lexeme)-1]
		return p.arena.NewLiteralString(tok, s)

	case p.match(token.TRUE):
		return p.arena.NewLiteralBool(p.previous, true)

	case p.match(token.FALSE):
		return p.arena.NewLiteralBool(p.previous, false)

	case p.match(token.NULL):
		return p.arena.NewLiteralNull(p.previous)

	case p.match(token.IDENTIFIER):
		tok := p.previous
		return p.arena.NewIdentifier(tok, tok.Lexeme)

	case p.match(token.LPAREN):
		expr := p.expression()
		if !expr.Valid() {
			return ast.NoHandle
		}
		if !p.consume(token.RPAREN, "expected ')' after expression") {
			return ast.NoHandle
		}
		return expr
	}

	if p.check(token.EOF) {
		p.errorAt(p.current, "expected expression")
	} else {
		p.errorAt(p.current, "expected expression, found '"+p.current.Lexeme+"'")
	}
	return ast.NoHandle
}
