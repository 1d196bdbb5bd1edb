// Package walk provides depth-first traversal of Eck syntax trees.
package walk

import (
	"errors"

	"github.com/ecklang/eckfront/ast"
)

// SkipChildren may be returned by an enter function to skip the children of
// the node just entered. The node's exit function is still called.
var SkipChildren = errors.New("skip children")

// Nodes calls fn for root and every node beneath it, parents before
// children and children in declaration order. Traversal stops at the first
// error fn returns, which is then returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit is like Nodes, but additionally calls exit, if it is not
// nil, for every node after all of its children have been visited.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	err := enter(root)
	switch {
	case errors.Is(err, SkipChildren):
	case err != nil:
		return err
	default:
		for _, child := range ast.Children(root) {
			if err := NodesEnterAndExit(child, enter, exit); err != nil {
				return err
			}
		}
	}
	if exit != nil {
		if err := exit(root); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root ast.Node) int {
	var n int
	_ = Nodes(root, func(ast.Node) error {
		n++
		return nil
	})
	return n
}

// Statements returns every statement in the tree rooted at root, including
// statements nested in if and while bodies, in source order.
func Statements(root ast.Node) []ast.Statement {
	var stmts []ast.Statement
	_ = Nodes(root, func(n ast.Node) error {
		if s, ok := n.(ast.Statement); ok {
			stmts = append(stmts, s)
		}
		return nil
	})
	return stmts
}
