/*
 * Zen
 *
 * Copyright 2026 The Zen Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strings"
	"testing"

	"zenlang.dev/zen/ast"
)

func TestLetWithNoNameRecoversAndContinues(t *testing.T) {
	var diags []Diagnostic
	arena, root, ok := Parse("test", "let = 1;\nlet y = 2;", WithSink(CollectingSink(&diags)))
	if ok {
		t.Fatalf("expected had_error = true")
	}
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic (cascades suppressed), got %d: %v", len(diags), diags)
	}
	if diags[0].Token.Line != 1 {
		t.Fatalf("expected the error anchored at line 1, got %d", diags[0].Token.Line)
	}

	// Parsing continues past the synchronization point: the second
	// declaration is still present in the (partial) tree.
	prog, ok := arena.Node(root).(*ast.Program)
	if !ok {
		t.Fatalf("expected a Program root even on error, got %T", arena.Node(root))
	}
	var foundY bool
	for _, d := range prog.Decls {
		if vd, ok := arena.Node(d).(*ast.VarDecl); ok && vd.Name == "y" {
			foundY = true
		}
	}
	if !foundY {
		t.Fatalf("expected recovery to still parse 'let y = 2;', decls: %+v", prog.Decls)
	}
}

func TestDiagnosticFormatAtToken(t *testing.T) {
	var diags []Diagnostic
	Parse("test", "let 5 = 1;", WithSink(CollectingSink(&diags)))
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
	got := diags[0].String()
	if !strings.HasPrefix(got, "[line 1:5] Error at '5':") {
		t.Fatalf("unexpected diagnostic format: %q", got)
	}
}

func TestDiagnosticFormatAtEnd(t *testing.T) {
	var diags []Diagnostic
	Parse("test", "let x = ", WithSink(CollectingSink(&diags)))
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
	got := diags[len(diags)-1].String()
	if !strings.Contains(got, "Error at end:") {
		t.Fatalf("expected an 'at end' diagnostic, got %q", got)
	}
}

func TestUnterminatedStringReportsErrorAndStillReturnsTree(t *testing.T) {
	var diags []Diagnostic
	arena, root, ok := Parse("test", `let x = "abc`, WithSink(CollectingSink(&diags)))
	if ok {
		t.Fatalf("expected had_error = true")
	}
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
	if _, ok := arena.Node(root).(*ast.Program); !ok {
		t.Fatalf("expected a Program root even on error")
	}
}

func TestUnknownByteReportsErrorAndStillReturnsTree(t *testing.T) {
	var diags []Diagnostic
	arena, root, ok := Parse("test", "let x = 1 ` 2;", WithSink(CollectingSink(&diags)))
	if ok {
		t.Fatalf("expected had_error = true")
	}
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic")
	}
	if _, ok := arena.Node(root).(*ast.Program); !ok {
		t.Fatalf("expected a Program root even on error")
	}
}

func TestCascadingErrorsAreSuppressedWithinOnePanicRegion(t *testing.T) {
	var diags []Diagnostic
	// Three consecutive garbage tokens inside one expression should only
	// ever surface as a single diagnostic before resynchronization.
	Parse("test", "let x = ) ) ) ;", WithSink(CollectingSink(&diags)))
	if len(diags) != 1 {
		t.Fatalf("expected exactly one diagnostic for the whole panic region, got %d: %v", len(diags), diags)
	}
}

func TestMismatchedParenIsRecoverable(t *testing.T) {
	var diags []Diagnostic
	_, _, ok := Parse("test", "5 ( 5", WithSink(CollectingSink(&diags)))
	if ok {
		t.Fatalf("expected had_error = true")
	}
	if len(diags) == 0 {
		t.Fatalf("expected a diagnostic")
	}
}

func TestParserNeverPanics(t *testing.T) {
	inputs := []string{
		"", "{", "}", "(", ")", "func", "let", "1 +", "+ 1", "if (",
		"func f(", "return", "while", "for x in", "-", "!", "is", "${",
	}
	for _, src := range inputs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse(%q) panicked: %v", src, r)
				}
			}()
			Parse("test", src, WithSink(func(Diagnostic) {}))
		}()
	}
}
