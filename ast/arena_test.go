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
	"testing"

	"zenlang.dev/zen/token"
)

func tok(kind token.Kind, lexeme string, line, col int) token.Token {
	return token.Token{Kind: kind, Lexeme: lexeme, Line: line, Column: col}
}

func TestArenaGrowsAndResolves(t *testing.T) {
	a := NewArena(1)

	h1 := a.NewLiteralNumber(tok(token.NUMBER, "1", 1, 1), 1)
	h2 := a.NewLiteralNumber(tok(token.NUMBER, "2", 1, 3), 2)

	if a.Len() != 2 {
		t.Fatalf("expected 2 nodes, got %d", a.Len())
	}
	if a.Node(h1) == a.Node(h2) {
		t.Fatalf("expected distinct nodes for distinct handles")
	}
	lit, ok := a.Node(h1).(*Literal)
	if !ok {
		t.Fatalf("expected *Literal, got %T", a.Node(h1))
	}
	if lit.Number != 1 {
		t.Fatalf("expected Number=1, got %v", lit.Number)
	}
}

func TestNoHandleResolvesToNil(t *testing.T) {
	a := NewArena(0)
	if a.Node(NoHandle) != nil {
		t.Fatalf("expected nil for NoHandle")
	}
}

func TestReleaseClearsArena(t *testing.T) {
	a := NewArena(0)
	a.NewLiteralNull(tok(token.NULL, "null", 1, 1))
	a.Release()
	if a.Len() != 0 {
		t.Fatalf("expected empty arena after Release, got %d nodes", a.Len())
	}
}

func TestNodePositionMatchesToken(t *testing.T) {
	a := NewArena(0)
	h := a.NewIdentifier(tok(token.IDENTIFIER, "x", 7, 3), "x")
	n := a.Node(h)
	line, col := n.Pos()
	if line != 7 || col != 3 {
		t.Fatalf("expected position (7,3), got (%d,%d)", line, col)
	}
}

func TestSyntheticProgramDefaultsTo1x1(t *testing.T) {
	a := NewArena(0)
	h := a.NewProgram(token.Token{}, nil)
	line, col := a.Node(h).Pos()
	if line != 1 || col != 1 {
		t.Fatalf("expected synthesized root at (1,1), got (%d,%d)", line, col)
	}
}

func TestBinaryAndUnaryOperatorsAreDistinctEnums(t *testing.T) {
	a := NewArena(0)
	left := a.NewLiteralNumber(tok(token.NUMBER, "1", 1, 1), 1)
	right := a.NewLiteralNumber(tok(token.NUMBER, "2", 1, 3), 2)
	bh := a.NewBinary(tok(token.PLUS, "+", 1, 2), OpAdd, left, right)
	uh := a.NewUnary(tok(token.MINUS, "-", 1, 1), OpNeg, left)

	b := a.Node(bh).(*Binary)
	if b.Op != OpAdd {
		t.Fatalf("expected OpAdd, got %v", b.Op)
	}
	u := a.Node(uh).(*Unary)
	if u.Op != OpNeg {
		t.Fatalf("expected OpNeg, got %v", u.Op)
	}
}

func TestNoNodeReachableFromTwoParents(t *testing.T) {
	// Each constructor call mints a fresh handle even for structurally
	// identical payloads, so there is no way for two parents to end up
	// pointing at the same arena slot by construction.
	a := NewArena(0)
	x := a.NewIdentifier(tok(token.IDENTIFIER, "x", 1, 1), "x")
	y := a.NewIdentifier(tok(token.IDENTIFIER, "x", 1, 1), "x")
	if x == y {
		t.Fatalf("expected distinct handles for distinct constructor calls")
	}
}
