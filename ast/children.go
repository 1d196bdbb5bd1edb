package ast

import "fmt"

// Children returns the direct children of n in declaration order. Absent
// optional children (an assignment without an index, a bare return, and so
// on) are omitted. The branches of an IfNode are flattened: the condition,
// then the then-branch, then the else-branch.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *ClassNode:
		children := make([]Node, 0, len(n.Vars)+len(n.Subroutines))
		for _, v := range n.Vars {
			children = append(children, v)
		}
		for _, s := range n.Subroutines {
			children = append(children, s)
		}
		return children
	case *VarDeclNode:
		return nil
	case *SubroutineNode:
		children := make([]Node, 0, len(n.Params)+1)
		for _, p := range n.Params {
			children = append(children, p)
		}
		return append(children, n.Body)
	case *SubroutineBodyNode:
		children := make([]Node, 0, len(n.Locals)+len(n.Statements))
		for _, v := range n.Locals {
			children = append(children, v)
		}
		return appendStatements(children, n.Statements)
	case *AssignNode:
		return optional(n.Index, n.Value)
	case *IfNode:
		children := []Node{n.Cond}
		children = appendStatements(children, n.Then)
		return appendStatements(children, n.Else)
	case *WhileNode:
		return appendStatements([]Node{n.Cond}, n.Body)
	case *DoNode:
		return []Node{n.Call}
	case *ReturnNode:
		return optional(n.Value)
	case *CallNode:
		children := make([]Node, len(n.Args))
		for i, a := range n.Args {
			children[i] = a
		}
		return children
	case *BinaryExprNode:
		return []Node{n.Left, n.Right}
	case *UnaryExprNode:
		return []Node{n.Operand}
	case *ConstantNode:
		return nil
	case *VarRefNode:
		return optional(n.Index)
	default:
		panic(fmt.Sprintf("ast: unknown node type %T", n))
	}
}

func appendStatements(children []Node, stmts []Statement) []Node {
	for _, s := range stmts {
		children = append(children, s)
	}
	return children
}

func optional(exprs ...Expression) []Node {
	var children []Node
	for _, e := range exprs {
		if e != nil {
			children = append(children, e)
		}
	}
	return children
}
