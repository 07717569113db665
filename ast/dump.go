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
	"bytes"
	"fmt"

	"devt.de/krotik/common/stringutil"
)

// Dump renders the subtree rooted at h as an indented, human-readable tree
// — one line per node, children indented two spaces further than their
// parent. Useful for golden-output tests and debugging; it is not part of
// the wire contract between the parser and later compiler phases.
func Dump(a *Arena, h Handle) string {
	var buf bytes.Buffer
	dumpNode(a, h, 0, &buf)
	return buf.String()
}

func dumpNode(a *Arena, h Handle, indent int, buf *bytes.Buffer) {
	n := a.Node(h)
	if n == nil {
		buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))
		buf.WriteString("<nil>\n")
		return
	}

	buf.WriteString(stringutil.GenerateRollingString(" ", indent*2))

	var children []Handle

	switch v := n.(type) {
	case *Literal:
		switch v.Kind {
		case LitNumber:
			fmt.Fprintf(buf, "Literal(%v)\n", v.Number)
		case LitString:
			fmt.Fprintf(buf, "Literal(%q)\n", v.String)
		case LitBool:
			fmt.Fprintf(buf, "Literal(%v)\n", v.Bool)
		default:
			buf.WriteString("Literal(null)\n")
		}

	case *Identifier:
		fmt.Fprintf(buf, "Identifier(%s)\n", v.Name)

	case *Binary:
		fmt.Fprintf(buf, "Binary(%s)\n", v.Op)
		children = []Handle{v.Left, v.Right}

	case *Unary:
		fmt.Fprintf(buf, "Unary(%s)\n", v.Op)
		children = []Handle{v.Operand}

	case *Call:
		buf.WriteString("Call\n")
		children = append([]Handle{v.Callee}, v.Args...)

	case *VarDecl:
		kw := "let"
		if v.IsConst {
			kw = "const"
		}
		fmt.Fprintf(buf, "VarDecl(%s %s: %s)\n", kw, v.Name, v.Type)
		if v.Init.Valid() {
			children = []Handle{v.Init}
		}

	case *FuncDecl:
		fmt.Fprintf(buf, "FuncDecl(%s -> %s)\n", v.Name, v.Return)
		children = []Handle{v.Body}

	case *Return:
		buf.WriteString("Return\n")
		if v.Value.Valid() {
			children = []Handle{v.Value}
		}

	case *Block:
		buf.WriteString("Block\n")
		children = v.Stmts

	case *ExprStmt:
		buf.WriteString("ExprStmt\n")
		children = []Handle{v.Expr}

	case *If:
		buf.WriteString("If\n")
		children = []Handle{v.Cond, v.Then}
		if v.Else.Valid() {
			children = append(children, v.Else)
		}

	case *While:
		buf.WriteString("While\n")
		children = []Handle{v.Cond, v.Body}

	case *For:
		fmt.Fprintf(buf, "For(%s)\n", v.Var)
		children = []Handle{v.Iterable, v.Body}

	case *Program:
		buf.WriteString("Program\n")
		children = v.Decls

	default:
		buf.WriteString("?\n")
	}

	for _, c := range children {
		dumpNode(a, c, indent+1, buf)
	}
}
