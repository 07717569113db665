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
	"zenlang.dev/zen/ast"
	"zenlang.dev/zen/zenlog"
)

/*
Option configures a Parse call. A parser is constructed fresh per call and
carries no shared global state, so two parses can run concurrently without
stepping on each other.
*/
type Option func(*Parser)

/*
WithArenaCapacity sets the initial backing capacity of the Arena the parse
will allocate into. Only effective if WithArena is not also supplied.
*/
func WithArenaCapacity(n int) Option {
	return func(p *Parser) {
		p.arenaCapacity = n
	}
}

/*
WithArena directs the parse to build its tree in a caller-supplied Arena
instead of allocating a fresh one. Useful when a caller wants to parse
several files into one shared arena.
*/
func WithArena(a *ast.Arena) Option {
	return func(p *Parser) {
		p.arena = a
	}
}

/*
WithSink overrides where diagnostics are reported. The default writes one
formatted line per error to os.Stderr.
*/
func WithSink(s Sink) Option {
	return func(p *Parser) {
		p.sink = s
	}
}

/*
WithLogger attaches a zenlog.Logger the parser uses to trace its own
resynchronization decisions at debug level. The default discards everything.
*/
func WithLogger(l zenlog.Logger) Option {
	return func(p *Parser) {
		p.log = l
	}
}
