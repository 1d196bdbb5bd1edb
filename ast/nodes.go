package ast

import "github.com/ecklang/eckfront/token"

// Node is implemented by every node in the tree.
type Node interface {
	// Line returns the 1-based source line of the token that defines the
	// node.
	Line() int

	node()
}

// Statement is a Node that may appear in a statement list.
type Statement interface {
	Node
	stmt()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expr()
}

type base struct {
	line int
}

func (b base) Line() int { return b.line }

func (base) node() {}

// ClassNode is the root of the tree: a single class with its variables and
// subroutines, in source order.
type ClassNode struct {
	base
	Name        string
	Vars        []*VarDeclNode
	Subroutines []*SubroutineNode
}

// NewClassNode creates a new *ClassNode.
func NewClassNode(line int, name string, vars []*VarDeclNode, subs []*SubroutineNode) *ClassNode {
	if vars == nil {
		vars = []*VarDeclNode{}
	}
	if subs == nil {
		subs = []*SubroutineNode{}
	}
	return &ClassNode{base: base{line}, Name: name, Vars: vars, Subroutines: subs}
}

// VarDeclNode declares one variable. A declaration listing several names
// produces one node per name, sharing type and scope.
type VarDeclNode struct {
	base
	Scope Scope
	Type  Type
	Name  string
}

// NewVarDeclNode creates a new *VarDeclNode.
func NewVarDeclNode(line int, scope Scope, typ Type, name string) *VarDeclNode {
	return &VarDeclNode{base: base{line}, Scope: scope, Type: typ, Name: name}
}

// SubroutineNode is a constructor, function or method declaration.
type SubroutineNode struct {
	base
	Kind       SubroutineKind
	ReturnType Type
	Name       string
	Params     []*VarDeclNode
	Body       *SubroutineBodyNode
}

// NewSubroutineNode creates a new *SubroutineNode.
func NewSubroutineNode(line int, kind SubroutineKind, ret Type, name string, params []*VarDeclNode, body *SubroutineBodyNode) *SubroutineNode {
	if params == nil {
		params = []*VarDeclNode{}
	}
	return &SubroutineNode{base: base{line}, Kind: kind, ReturnType: ret, Name: name, Params: params, Body: body}
}

// SubroutineBodyNode holds the local variables and statements of a
// subroutine.
type SubroutineBodyNode struct {
	base
	Locals     []*VarDeclNode
	Statements []Statement
}

// NewSubroutineBodyNode creates a new *SubroutineBodyNode.
func NewSubroutineBodyNode(line int, locals []*VarDeclNode, stmts []Statement) *SubroutineBodyNode {
	if locals == nil {
		locals = []*VarDeclNode{}
	}
	if stmts == nil {
		stmts = []Statement{}
	}
	return &SubroutineBodyNode{base: base{line}, Locals: locals, Statements: stmts}
}

// AssignNode is `name = value;` or `name[index] = value;`.
type AssignNode struct {
	base
	Name string
	// Index is nil unless an array element is assigned.
	Index Expression
	Value Expression
}

// NewAssignNode creates a new *AssignNode. index may be nil.
func NewAssignNode(line int, name string, index, value Expression) *AssignNode {
	return &AssignNode{base: base{line}, Name: name, Index: index, Value: value}
}

// IfNode is an if statement with an optional else branch.
type IfNode struct {
	base
	Cond Expression
	Then []Statement
	// Else is nil if and only if the source had no else branch. An empty
	// else branch is an empty, non-nil slice.
	Else []Statement
}

// NewIfNode creates a new *IfNode. Pass a nil els for an if without else.
func NewIfNode(line int, cond Expression, then, els []Statement) *IfNode {
	if then == nil {
		then = []Statement{}
	}
	return &IfNode{base: base{line}, Cond: cond, Then: then, Else: els}
}

// HasElse returns whether the statement has an else branch.
func (n *IfNode) HasElse() bool {
	return n.Else != nil
}

// WhileNode is a while loop.
type WhileNode struct {
	base
	Cond Expression
	Body []Statement
}

// NewWhileNode creates a new *WhileNode.
func NewWhileNode(line int, cond Expression, body []Statement) *WhileNode {
	if body == nil {
		body = []Statement{}
	}
	return &WhileNode{base: base{line}, Cond: cond, Body: body}
}

// DoNode calls a subroutine and discards its result.
type DoNode struct {
	base
	Call *CallNode
}

// NewDoNode creates a new *DoNode.
func NewDoNode(line int, call *CallNode) *DoNode {
	return &DoNode{base: base{line}, Call: call}
}

// ReturnNode is a return statement.
type ReturnNode struct {
	base
	// Value is nil for a bare `return;`.
	Value Expression
}

// NewReturnNode creates a new *ReturnNode. value may be nil.
func NewReturnNode(line int, value Expression) *ReturnNode {
	return &ReturnNode{base: base{line}, Value: value}
}

// CallNode is a subroutine call, either unqualified (`f(x)`) or qualified
// by a variable or class name (`obj.f(x)`).
type CallNode struct {
	base
	// Receiver is the qualifying variable or class name, or empty.
	Receiver string
	Name     string
	Args     []Expression
}

// NewCallNode creates a new *CallNode.
func NewCallNode(line int, receiver, name string, args []Expression) *CallNode {
	if args == nil {
		args = []Expression{}
	}
	return &CallNode{base: base{line}, Receiver: receiver, Name: name, Args: args}
}

// QualifiedName returns "receiver.name", or just the name for unqualified
// calls.
func (n *CallNode) QualifiedName() string {
	if n.Receiver == "" {
		return n.Name
	}
	return n.Receiver + "." + n.Name
}

// BinaryExprNode applies an infix operator to two operands.
type BinaryExprNode struct {
	base
	Op          token.Kind
	Left, Right Expression
}

// NewBinaryExprNode creates a new *BinaryExprNode.
func NewBinaryExprNode(line int, op token.Kind, left, right Expression) *BinaryExprNode {
	return &BinaryExprNode{base: base{line}, Op: op, Left: left, Right: right}
}

// UnaryExprNode applies `-` or `~` to an operand.
type UnaryExprNode struct {
	base
	Op      token.Kind
	Operand Expression
}

// NewUnaryExprNode creates a new *UnaryExprNode.
func NewUnaryExprNode(line int, op token.Kind, operand Expression) *UnaryExprNode {
	return &UnaryExprNode{base: base{line}, Op: op, Operand: operand}
}

// ConstantNode is a literal or keyword constant.
type ConstantNode struct {
	base
	// Token is the kind of token the constant was written as: INTEGER_CONST,
	// STRING_CONST, KW_TRUE, KW_FALSE, KW_NULL or KW_THIS.
	Token token.Kind
	Type  Type
	Int   int
	Str   string
}

// NewIntConstant creates an integer constant.
func NewIntConstant(line, value int) *ConstantNode {
	return &ConstantNode{base: base{line}, Token: token.INTEGER_CONST, Type: ScalarType(IntScalar), Int: value}
}

// NewStringConstant creates a string constant.
func NewStringConstant(line int, value string) *ConstantNode {
	return &ConstantNode{base: base{line}, Token: token.STRING_CONST, Type: ScalarType(String), Str: value}
}

// NewKeywordConstant creates the constant for true, false, null or this.
// class names the enclosing class, which is the type of this.
func NewKeywordConstant(line int, kw token.Kind, class string) *ConstantNode {
	n := &ConstantNode{base: base{line}, Token: kw}
	switch kw {
	case token.KW_TRUE, token.KW_FALSE:
		n.Type = ScalarType(BooleanScalar)
	case token.KW_NULL:
		n.Type = ScalarType(Void)
	case token.KW_THIS:
		n.Type = ClassType(class)
	default:
		panic("ast: not a keyword constant: " + kw.String())
	}
	return n
}

// Value returns the constant's value as source-like text.
func (n *ConstantNode) Value() any {
	switch n.Token {
	case token.INTEGER_CONST:
		return n.Int
	case token.STRING_CONST:
		return n.Str
	default:
		return n.Token.Spelling()
	}
}

// VarRefNode reads a variable, or an element of an array variable.
type VarRefNode struct {
	base
	Name string
	// Index is nil unless an array element is read.
	Index Expression
}

// NewVarRefNode creates a new *VarRefNode. index may be nil.
func NewVarRefNode(line int, name string, index Expression) *VarRefNode {
	return &VarRefNode{base: base{line}, Name: name, Index: index}
}

func (*AssignNode) stmt() {}
func (*IfNode) stmt()     {}
func (*WhileNode) stmt()  {}
func (*DoNode) stmt()     {}
func (*ReturnNode) stmt() {}

func (*CallNode) expr()       {}
func (*BinaryExprNode) expr() {}
func (*UnaryExprNode) expr()  {}
func (*ConstantNode) expr()   {}
func (*VarRefNode) expr()     {}

var (
	_ Node       = (*ClassNode)(nil)
	_ Node       = (*VarDeclNode)(nil)
	_ Node       = (*SubroutineNode)(nil)
	_ Node       = (*SubroutineBodyNode)(nil)
	_ Statement  = (*AssignNode)(nil)
	_ Statement  = (*IfNode)(nil)
	_ Statement  = (*WhileNode)(nil)
	_ Statement  = (*DoNode)(nil)
	_ Statement  = (*ReturnNode)(nil)
	_ Expression = (*CallNode)(nil)
	_ Expression = (*BinaryExprNode)(nil)
	_ Expression = (*UnaryExprNode)(nil)
	_ Expression = (*ConstantNode)(nil)
	_ Expression = (*VarRefNode)(nil)
)
