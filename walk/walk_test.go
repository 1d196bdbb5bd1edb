package walk

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/token"
)

// class A { field int x; method void f(int p) { if (p) { return; } else { x = -1; } } }
func sampleTree() *ast.ClassNode {
	ifNode := ast.NewIfNode(1, ast.NewVarRefNode(1, "p", nil),
		[]ast.Statement{ast.NewReturnNode(1, nil)},
		[]ast.Statement{ast.NewAssignNode(1, "x", nil,
			ast.NewUnaryExprNode(1, token.SYMBOL_MINUS, ast.NewIntConstant(1, 1)))})
	sub := ast.NewSubroutineNode(1, ast.Method, ast.ScalarType(ast.Void), "f",
		[]*ast.VarDeclNode{ast.NewVarDeclNode(1, ast.Parameter, ast.ScalarType(ast.IntScalar), "p")},
		ast.NewSubroutineBodyNode(1, nil, []ast.Statement{ifNode}))
	return ast.NewClassNode(1, "A",
		[]*ast.VarDeclNode{ast.NewVarDeclNode(1, ast.Field, ast.ScalarType(ast.IntScalar), "x")},
		[]*ast.SubroutineNode{sub})
}

func name(n ast.Node) string {
	return fmt.Sprintf("%T", n)[len("*ast."):]
}

func TestNodes(t *testing.T) {
	t.Parallel()

	var visited []string
	err := Nodes(sampleTree(), func(n ast.Node) error {
		visited = append(visited, name(n))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ClassNode", "VarDeclNode", "SubroutineNode", "VarDeclNode", "SubroutineBodyNode",
		"IfNode", "VarRefNode", "ReturnNode", "AssignNode", "UnaryExprNode", "ConstantNode",
	}, visited)
	assert.Equal(t, 11, Count(sampleTree()))
}

func TestEnterAndExit(t *testing.T) {
	t.Parallel()

	var events []string
	err := NodesEnterAndExit(sampleTree().Subroutines[0].Body,
		func(n ast.Node) error {
			events = append(events, "+"+name(n))
			if _, ok := n.(*ast.AssignNode); ok {
				return SkipChildren
			}
			return nil
		},
		func(n ast.Node) error {
			events = append(events, "-"+name(n))
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+SubroutineBodyNode",
		"+IfNode",
		"+VarRefNode", "-VarRefNode",
		"+ReturnNode", "-ReturnNode",
		"+AssignNode", "-AssignNode",
		"-IfNode",
		"-SubroutineBodyNode",
	}, events)
}

func TestStopsAtError(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")
	var count int
	err := Nodes(sampleTree(), func(n ast.Node) error {
		count++
		if _, ok := n.(*ast.SubroutineNode); ok {
			return errStop
		}
		return nil
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 3, count)
}

func TestStatements(t *testing.T) {
	t.Parallel()

	var kinds []string
	for _, s := range Statements(sampleTree()) {
		kinds = append(kinds, name(s))
	}
	assert.Equal(t, []string{"IfNode", "ReturnNode", "AssignNode"}, kinds)
}
