// Package printer renders Eck syntax trees as an indented, line-numbered
// listing with one node per line:
//
//	  1class Foo
//	  1   variable FIELD INT_SCALAR x
//
// Every line starts with the node's source line in a three character field,
// followed by the node's depth as spaces, three per level. The listing is
// the format of the parser's golden test files.
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ecklang/eckfront/ast"
)

// Indent is the number of spaces added for each level of nesting.
const Indent = 3

// Print writes the listing of the tree rooted at n to w.
func Print(w io.Writer, n ast.Node) error {
	p := &printer{w: w}
	p.node(n, 0)
	return p.err
}

// String returns the listing of the tree rooted at n.
func String(n ast.Node) string {
	var b strings.Builder
	_ = Print(&b, n)
	return b.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(n ast.Node, depth int, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%3d%s%s\n", n.Line(), strings.Repeat(" ", depth), fmt.Sprintf(format, args...))
}

func (p *printer) statements(stmts []ast.Statement, depth int) {
	for _, s := range stmts {
		p.node(s, depth)
	}
}

func (p *printer) node(n ast.Node, depth int) {
	next := depth + Indent
	switch n := n.(type) {
	case *ast.ClassNode:
		p.line(n, depth, "class %s", n.Name)
		for _, v := range n.Vars {
			p.node(v, next)
		}
		for _, s := range n.Subroutines {
			p.node(s, next)
		}

	case *ast.VarDeclNode:
		p.line(n, depth, "variable %v %v %s", n.Scope, n.Type, n.Name)

	case *ast.SubroutineNode:
		p.line(n, depth, "subroutine %v %v %s", n.Kind, n.ReturnType, n.Name)
		for _, param := range n.Params {
			p.node(param, next)
		}
		p.node(n.Body, next)

	case *ast.SubroutineBodyNode:
		// The body has no line of its own; its contents sit at the
		// subroutine's parameter depth.
		for _, v := range n.Locals {
			p.node(v, depth)
		}
		p.statements(n.Statements, depth)

	case *ast.AssignNode:
		p.line(n, depth, "assignment %s", n.Name)
		if n.Index != nil {
			p.line(n, next, "array index")
			p.node(n.Index, next+Indent)
		}
		p.node(n.Value, next)

	case *ast.IfNode:
		p.line(n, depth, "if")
		p.line(n, next, "condition")
		p.node(n.Cond, next+Indent)
		p.line(n, next, "then")
		p.statements(n.Then, next+Indent)
		if n.HasElse() {
			p.line(n, next, "else")
			p.statements(n.Else, next+Indent)
		}

	case *ast.WhileNode:
		p.line(n, depth, "while")
		p.line(n, next, "condition")
		p.node(n.Cond, next+Indent)
		p.line(n, next, "statements")
		p.statements(n.Body, next+Indent)

	case *ast.DoNode:
		p.line(n, depth, "do")
		p.node(n.Call, next)

	case *ast.ReturnNode:
		p.line(n, depth, "return")
		if n.Value != nil {
			p.node(n.Value, next)
		}

	case *ast.CallNode:
		p.line(n, depth, "subroutineCall %s", n.QualifiedName())
		for _, arg := range n.Args {
			p.node(arg, next)
		}

	case *ast.BinaryExprNode:
		p.line(n, depth, "exprBinop %v", n.Op)
		p.node(n.Left, next)
		p.node(n.Right, next)

	case *ast.UnaryExprNode:
		p.line(n, depth, "exprUnop %v", n.Op)
		p.node(n.Operand, next)

	case *ast.ConstantNode:
		p.line(n, depth, "constant %v %s", n.Type, constantText(n))

	case *ast.VarRefNode:
		if n.Index == nil {
			p.line(n, depth, "expVar %s", n.Name)
			return
		}
		p.line(n, depth, "expVar %s array index", n.Name)
		p.node(n.Index, next)

	default:
		panic(fmt.Sprintf("printer: unknown node type %T", n))
	}
}

func constantText(n *ast.ConstantNode) string {
	switch v := n.Value().(type) {
	case int:
		return strconv.Itoa(v)
	case string:
		if n.Type.Kind == ast.String {
			return strconv.Quote(v)
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
