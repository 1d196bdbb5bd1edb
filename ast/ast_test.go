package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecklang/eckfront/token"
)

func TestFileInfo(t *testing.T) {
	t.Parallel()

	data := []byte("class A {\n\tfield int x;\r\n}")
	info := NewFileInfo("a.eck", data)
	info.AddLine(10)
	info.AddLine(25)

	pos := info.SourcePos(0)
	assert.Equal(t, SourcePos{Filename: "a.eck", Line: 1, Col: 1, Offset: 0}, pos)
	assert.Equal(t, "a.eck:1:1", pos.String())

	pos = info.SourcePos(11)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 9, pos.Col, "tab expands to the next tab stop")

	assert.Equal(t, 3, info.SourcePos(25).Line)
	assert.Equal(t, "class A {", info.Line(1))
	assert.Equal(t, "\tfield int x;", info.Line(2))
	assert.Equal(t, "}", info.Line(3))
	assert.Empty(t, info.Line(4))
	assert.Equal(t, "a.eck", UnknownPos("a.eck").String())

	assert.Panics(t, func() { info.AddLine(20) })
	assert.Panics(t, func() { info.AddLine(100) })
}

func TestFileInfoUnrecordedLines(t *testing.T) {
	t.Parallel()

	// A scanner that stops early only records the lines it has seen; the
	// text of the last one still ends at its newline.
	info := NewFileInfo("b.eck", []byte("one\ntwo\nthree"))
	info.AddLine(4)
	assert.Equal(t, "two", info.Line(2))
	assert.Equal(t, 2, info.LineCount())
}

func TestTypes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "INT_SCALAR", ScalarType(IntScalar).String())
	assert.Equal(t, "CLASS_SCALAR:Square", ClassType("Square").String())
	assert.True(t, CharArray.IsArray())
	assert.False(t, ClassScalar.IsArray())
	assert.Equal(t, BooleanScalar, BooleanArray.Element())
	assert.Equal(t, Void, Void.Element())
	assert.Equal(t, "PARAMETER", Parameter.String())
	assert.Equal(t, "METHOD", Method.String())
	assert.Equal(t, "ast.Scope(0)", Scope(0).String())
}

func TestConstructorsNormalizeLists(t *testing.T) {
	t.Parallel()

	class := NewClassNode(1, "A", nil, nil)
	assert.NotNil(t, class.Vars)
	assert.NotNil(t, class.Subroutines)

	ifNode := NewIfNode(3, NewKeywordConstant(3, token.KW_TRUE, "A"), nil, nil)
	assert.NotNil(t, ifNode.Then)
	assert.False(t, ifNode.HasElse())
	ifNode = NewIfNode(3, NewKeywordConstant(3, token.KW_TRUE, "A"), nil, []Statement{})
	assert.True(t, ifNode.HasElse())

	this := NewKeywordConstant(7, token.KW_THIS, "A")
	assert.Equal(t, ClassType("A"), this.Type)
	assert.Equal(t, "this", this.Value())
	assert.Equal(t, 7, this.Line())
	assert.Panics(t, func() { NewKeywordConstant(1, token.KW_CLASS, "A") })
}

func TestChildren(t *testing.T) {
	t.Parallel()

	x := NewVarRefNode(4, "x", nil)
	idx := NewIntConstant(4, 1)
	assign := NewAssignNode(4, "a", idx, x)
	ret := NewReturnNode(5, nil)
	ifNode := NewIfNode(3, NewVarRefNode(3, "c", nil), []Statement{assign}, []Statement{ret})
	body := NewSubroutineBodyNode(2, []*VarDeclNode{NewVarDeclNode(2, Local, ScalarType(IntScalar), "a")}, []Statement{ifNode})
	param := NewVarDeclNode(1, Parameter, ScalarType(BooleanScalar), "c")
	sub := NewSubroutineNode(1, Function, ScalarType(Void), "f", []*VarDeclNode{param}, body)

	assert.Equal(t, []Node{param, body}, Children(sub))
	assert.Equal(t, []Node{body.Locals[0], ifNode}, Children(body))
	assert.Equal(t, []Node{ifNode.Cond, assign, ret}, Children(ifNode))
	assert.Equal(t, []Node{idx, x}, Children(assign))
	assert.Empty(t, Children(ret))
	assert.Empty(t, Children(x))

	call := NewCallNode(6, "o", "g", []Expression{x, idx})
	require.Len(t, Children(call), 2)
	assert.Equal(t, "o.g", call.QualifiedName())
	assert.Equal(t, "g", NewCallNode(6, "", "g", nil).QualifiedName())
	assert.Equal(t, []Node{call}, Children(NewDoNode(6, call)))
}
