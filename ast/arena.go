/*
 * Zen
 *
 * Copyright 2026 The Zen Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import (
	"devt.de/krotik/common/errorutil"

	"zenlang.dev/zen/token"
)

// defaultCapacity is the initial backing-array size of a fresh Arena. push
// doubles the backing array's capacity whenever it is full; starting with a
// modest reservation just avoids the first few reallocations for a typical
// single-file parse.
const defaultCapacity = 64

// Arena owns every Node produced by a single parse. It is append-only:
// nodes are never rewritten once constructed, and the whole arena is
// released together at the end of a compilation via Release. Children
// reference each other through Handle values (indices into the arena),
// never through pointers, so there is never more than one owner of a node.
type Arena struct {
	nodes []Node
}

// NewArena creates an empty Arena. capacity, if positive, is used to
// pre-size the backing storage; zero or negative falls back to a sensible
// default.
func NewArena(capacity int) *Arena {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Arena{nodes: make([]Node, 0, capacity)}
}

// Release drops the arena's reference to every node it owns. This is the
// bulk-free step from the spec: because every owned string and child slice
// lives inside the Node values themselves (not behind separate unmanaged
// allocations), dropping the slice is sufficient for the garbage collector
// to reclaim the whole tree in one step. After Release, the arena is empty
// and every previously issued Handle is no longer valid.
func (a *Arena) Release() {
	a.nodes = nil
}

// Len returns the number of nodes currently owned by the arena.
func (a *Arena) Len() int {
	return len(a.nodes)
}

// Node resolves a Handle to its Node. It returns nil for NoHandle or any
// handle outside the arena's current range. Handles are plain indices, so a
// handle from another arena, or one issued before a Release, is not
// detected when it falls inside that range.
func (a *Arena) Node(h Handle) Node {
	if h == NoHandle || int(h) < 0 || int(h) >= len(a.nodes) {
		return nil
	}
	return a.nodes[h]
}

// push appends n to the arena and returns its handle. Growth failure (an
// allocation failure inside append) is the spec's one fatal error kind
// (MemoryError, §7) — there is no recoverable path for it, so it is
// reported via an assertion rather than threaded through every constructor
// as an error return.
func (a *Arena) push(n Node) Handle {
	if len(a.nodes) == cap(a.nodes) {
		newCap := 2 * cap(a.nodes)
		if newCap == 0 {
			newCap = defaultCapacity
		}
		grown := make([]Node, len(a.nodes), newCap)
		copy(grown, a.nodes)
		a.nodes = grown
	}
	a.nodes = append(a.nodes, n)
	errorutil.AssertTrue(a.nodes != nil, "arena allocation failed")
	return Handle(len(a.nodes) - 1)
}

// Constructors
// ============
//
// One per variant in the data model. Each takes the semantic payload plus
// the originating token, appends the node to the arena, and returns its
// handle. Owned strings and child-handle slices are taken as given — the
// caller passes ownership to the arena by calling the constructor.

// NewLiteralNumber creates a numeric Literal node.
func (a *Arena) NewLiteralNumber(tok token.Token, value float64) Handle {
	return a.push(&Literal{base: newBase(tok), Kind: LitNumber, Number: value})
}

// NewLiteralString creates a string Literal node. s is stored as given; Go
// strings are immutable, so the node keeps its bytes alive on its own.
func (a *Arena) NewLiteralString(tok token.Token, s string) Handle {
	return a.push(&Literal{base: newBase(tok), Kind: LitString, String: s})
}

// NewLiteralBool creates a boolean Literal node.
func (a *Arena) NewLiteralBool(tok token.Token, value bool) Handle {
	return a.push(&Literal{base: newBase(tok), Kind: LitBool, Bool: value})
}

// NewLiteralNull creates a null Literal node.
func (a *Arena) NewLiteralNull(tok token.Token) Handle {
	return a.push(&Literal{base: newBase(tok), Kind: LitNull})
}

// NewIdentifier creates an Identifier node.
func (a *Arena) NewIdentifier(tok token.Token, name string) Handle {
	return a.push(&Identifier{base: newBase(tok), Name: name})
}

// NewBinary creates a Binary node. op must be one of the declared binary
// operators; left and right must already be owned by this arena.
func (a *Arena) NewBinary(tok token.Token, op BinaryOp, left, right Handle) Handle {
	return a.push(&Binary{base: newBase(tok), Op: op, Left: left, Right: right})
}

// NewUnary creates a Unary node. op must be one of the declared unary
// operators.
func (a *Arena) NewUnary(tok token.Token, op UnaryOp, operand Handle) Handle {
	return a.push(&Unary{base: newBase(tok), Op: op, Operand: operand})
}

// NewCall creates a Call node. args is taken by ownership; the caller must
// not reuse the slice.
func (a *Arena) NewCall(tok token.Token, callee Handle, args []Handle) Handle {
	return a.push(&Call{base: newBase(tok), Callee: callee, Args: args})
}

// NewVarDecl creates a VarDecl node. init may be NoHandle.
func (a *Arena) NewVarDecl(tok token.Token, name string, typ Type, isConst bool, init Handle) Handle {
	return a.push(&VarDecl{base: newBase(tok), Name: name, Type: typ, IsConst: isConst, Init: init})
}

// NewFuncDecl creates a FuncDecl node. params is taken by ownership.
func (a *Arena) NewFuncDecl(tok token.Token, name string, params []Param, ret Type, body Handle) Handle {
	return a.push(&FuncDecl{base: newBase(tok), Name: name, Params: params, Return: ret, Body: body})
}

// NewReturn creates a Return node. value may be NoHandle.
func (a *Arena) NewReturn(tok token.Token, value Handle) Handle {
	return a.push(&Return{base: newBase(tok), Value: value})
}

// NewBlock creates a Block node. stmts is taken by ownership.
func (a *Arena) NewBlock(tok token.Token, stmts []Handle) Handle {
	return a.push(&Block{base: newBase(tok), Stmts: stmts})
}

// NewExprStmt creates an ExprStmt node.
func (a *Arena) NewExprStmt(tok token.Token, expr Handle) Handle {
	return a.push(&ExprStmt{base: newBase(tok), Expr: expr})
}

// NewIf creates an If node. elseBranch may be NoHandle.
func (a *Arena) NewIf(tok token.Token, cond, then, elseBranch Handle) Handle {
	return a.push(&If{base: newBase(tok), Cond: cond, Then: then, Else: elseBranch})
}

// NewWhile creates a While node.
func (a *Arena) NewWhile(tok token.Token, cond, body Handle) Handle {
	return a.push(&While{base: newBase(tok), Cond: cond, Body: body})
}

// NewFor creates a For node.
func (a *Arena) NewFor(tok token.Token, varName string, iterable, body Handle) Handle {
	return a.push(&For{base: newBase(tok), Var: varName, Iterable: iterable, Body: body})
}

// NewProgram creates the Program root node. decls is taken by ownership.
// The root uses the synthesized (1,1) position when tok is the zero Token.
func (a *Arena) NewProgram(tok token.Token, decls []Handle) Handle {
	b := newBase(tok)
	if b.Line == 0 {
		b.Line = 1
	}
	if b.Column == 0 {
		b.Column = 1
	}
	return a.push(&Program{base: b, Decls: decls})
}
