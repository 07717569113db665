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
	"fmt"
	"os"

	"zenlang.dev/zen/token"
)

/*
Diagnostic is a single parse error: the message plus the token it is
anchored at.
*/
type Diagnostic struct {
	Token   token.Token
	Message string
}

/*
String renders a Diagnostic in the spec's wire format:

	[line L:C] Error at '<lexeme>': <message>

with the "at end" variant when the offending token is EOF.
*/
func (d Diagnostic) String() string {
	if d.Token.Kind == token.EOF {
		return fmt.Sprintf("[line %d:%d] Error at end: %s", d.Token.Line, d.Token.Column, d.Message)
	}
	return fmt.Sprintf("[line %d:%d] Error at '%s': %s", d.Token.Line, d.Token.Column, d.Token.Lexeme, d.Message)
}

/*
Sink receives one Diagnostic per reported parse error. The parser calls it
at most once per panic-mode region (cascading errors within a region are
suppressed before they ever reach the sink).
*/
type Sink func(Diagnostic)

/*
WriterSink returns a Sink that writes one formatted line per diagnostic to w.
*/
func WriterSink(w *os.File) Sink {
	return func(d Diagnostic) {
		fmt.Fprintln(w, d.String())
	}
}

func defaultSink() Sink {
	return WriterSink(os.Stderr)
}

/*
CollectingSink returns a Sink that appends every Diagnostic it receives to
*into, in order. Useful for tests and for callers that want to inspect
errors programmatically instead of parsing sink text.
*/
func CollectingSink(into *[]Diagnostic) Sink {
	return func(d Diagnostic) {
		*into = append(*into, d)
	}
}
