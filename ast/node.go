/*
 * Zen
 *
 * Copyright 2026 The Zen Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package ast defines the Zen front-end's abstract syntax tree: a tagged
// variant of expression/statement/declaration nodes realized as a Go sum
// type (an interface with one struct per variant), owned collectively by
// an Arena and referenced between each other by Handle rather than by
// pointer.
package ast

import "zenlang.dev/zen/token"

// Handle is an opaque reference to a Node owned by an Arena. Handles are
// indices into the arena, so the zero value refers to the first node an
// arena allocated; use NoHandle for "child absent by design".
type Handle int

// NoHandle marks an optional child slot that was not populated.
const NoHandle Handle = -1

// Valid reports whether h refers to a real node (as opposed to an absent
// optional slot).
func (h Handle) Valid() bool {
	return h != NoHandle
}

// Node is implemented by every AST variant. Every node carries the token
// that produced it (or a synthesized one for the root) and that token's
// 1-based line/column, per the data model's position invariant.
type Node interface {
	Pos() (line, column int)
	node()
}

// base carries the metadata common to every variant: the originating
// token and its position. Embedding it (rather than a single struct with
// a discriminator field) is how this module realizes a tagged variant
// with common positional payload as a native Go sum type: each concrete
// type below embeds base and implements Node, and call sites type-switch
// on the concrete type instead of a tag field.
type base struct {
	Token  token.Token
	Line   int
	Column int
}

func (b base) Pos() (int, int) { return b.Line, b.Column }
func (base) node()             {}

func newBase(tok token.Token) base {
	return base{Token: tok, Line: tok.Line, Column: tok.Column}
}

// Literal holds a number, string, bool, or null constant.
type Literal struct {
	base
	Kind   LiteralKind
	Number float64
	String string
	Bool   bool
}

// Identifier holds a bare name reference.
type Identifier struct {
	base
	Name string
}

// Binary holds a two-operand operator application.
type Binary struct {
	base
	Op    BinaryOp
	Left  Handle
	Right Handle
}

// Unary holds a single-operand prefix operator application.
type Unary struct {
	base
	Op      UnaryOp
	Operand Handle
}

// Call holds a call expression: a callee and its ordered arguments.
type Call struct {
	base
	Callee Handle
	Args   []Handle
}

// VarDecl holds a let/const declaration.
type VarDecl struct {
	base
	Name    string
	Type    Type
	IsConst bool
	Init    Handle // NoHandle if there was no initializer
}

// FuncDecl holds a function declaration.
type FuncDecl struct {
	base
	Name   string
	Params []Param
	Return Type
	Body   Handle // a Block
}

// Return holds an optional return value.
type Return struct {
	base
	Value Handle // NoHandle for a bare `return`
}

// Block holds an ordered sequence of statements.
type Block struct {
	base
	Stmts []Handle
}

// ExprStmt holds an expression evaluated for its side effect.
type ExprStmt struct {
	base
	Expr Handle
}

// If holds a conditional with an optional else branch.
type If struct {
	base
	Cond Handle
	Then Handle
	Else Handle // NoHandle if there is no else branch
}

// While holds a condition-guarded loop.
type While struct {
	base
	Cond Handle
	Body Handle
}

// For holds a for-in loop: a loop variable name, the iterable, and the body.
type For struct {
	base
	Var      string
	Iterable Handle
	Body     Handle
}

// Program is the sole root of a parse: an ordered sequence of declarations.
type Program struct {
	base
	Decls []Handle
}
