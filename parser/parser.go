package parser

import (
	"io"

	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/reporter"
	"github.com/ecklang/eckfront/scanner"
	"github.com/ecklang/eckfront/token"
)

// Result is the outcome of parsing one file.
type Result struct {
	// AST is the parsed class. It is nil if the file could not be parsed.
	AST *ast.ClassNode
	// Info holds the file's contents and line boundaries, for rendering
	// diagnostics. It is nil only if the file could not be read.
	Info *ast.FileInfo
}

// Parse parses the Eck class in r. If r is an io.Closer it is closed once
// its contents have been read.
//
// Errors are passed to handler, which decides whether they are returned. A
// nil handler returns the first error. When the handler swallows an error
// the returned class is nil and the error is reporter.ErrInvalidSource.
func Parse(filename string, r io.Reader, handler *reporter.Handler) (*ast.ClassNode, error) {
	res, err := ParseFile(filename, r, handler)
	return res.AST, err
}

// ParseFile is like Parse, but also returns the file info gathered while
// scanning.
func ParseFile(filename string, r io.Reader, handler *reporter.Handler) (Result, error) {
	if handler == nil {
		handler = reporter.NewHandler(nil)
	}
	s, err := scanner.New(filename, r)
	if err != nil {
		return Result{}, handler.HandleError(err)
	}
	res := Result{Info: s.Info()}
	class, err := newParser(s, s.Info()).parse()
	if err != nil {
		if err := handler.HandleError(err); err != nil {
			return res, err
		}
		return res, handler.Error()
	}
	res.AST = class
	return res, nil
}

type parser struct {
	toks *tokens
	// class is the name of the class being parsed; it types "this".
	class string
}

func newParser(src tokenSource, info *ast.FileInfo) *parser {
	return &parser{toks: newTokens(src, info)}
}

func (p *parser) parse() (*ast.ClassNode, error) {
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	return p.parseClass()
}

// parseClass parses
//
//	class Name { ClassVarDecl* SubroutineDecl* } EOF
func (p *parser) parseClass() (*ast.ClassNode, error) {
	if err := p.toks.check(token.KW_CLASS, "a class definition"); err != nil {
		return nil, err
	}
	line := p.toks.cur.Line
	if err := p.toks.expect(token.IDENTIFIER, "a class name"); err != nil {
		return nil, err
	}
	p.class = p.toks.cur.Text
	if err := p.toks.expect(token.SYMBOL_OPEN_BRACE, ""); err != nil {
		return nil, err
	}
	if err := p.toks.advance(); err != nil {
		return nil, err
	}

	var vars []*ast.VarDeclNode
	for {
		var scope ast.Scope
		switch p.toks.cur.Kind {
		case token.KW_STATIC:
			scope = ast.Static
		case token.KW_FIELD:
			scope = ast.Field
		}
		if scope == 0 {
			break
		}
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		decls, err := p.parseVarList(scope)
		if err != nil {
			return nil, err
		}
		vars = append(vars, decls...)
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
	}

	var subs []*ast.SubroutineNode
	for {
		var kind ast.SubroutineKind
		switch p.toks.cur.Kind {
		case token.KW_CONSTRUCTOR:
			kind = ast.Constructor
		case token.KW_FUNCTION:
			kind = ast.Function
		case token.KW_METHOD:
			kind = ast.Method
		}
		if kind == 0 {
			break
		}
		sub, err := p.parseSubroutine(kind)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
	}

	if err := p.toks.check(token.SYMBOL_CLOSE_BRACE, ""); err != nil {
		return nil, err
	}
	if err := p.toks.expect(token.EOF, ""); err != nil {
		return nil, err
	}
	return ast.NewClassNode(line, p.class, vars, subs), nil
}

// parseVarList parses
//
//	Type Name (, Name)* ;
//
// starting at the type. It leaves the semicolon current.
func (p *parser) parseVarList(scope ast.Scope) ([]*ast.VarDeclNode, error) {
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.toks.expect(token.IDENTIFIER, "a variable name"); err != nil {
		return nil, err
	}
	decls := []*ast.VarDeclNode{ast.NewVarDeclNode(p.toks.cur.Line, scope, typ, p.toks.cur.Text)}
	for {
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		if p.toks.cur.Kind != token.SYMBOL_COMMA {
			break
		}
		if err := p.toks.expect(token.IDENTIFIER, "a variable name"); err != nil {
			return nil, err
		}
		decls = append(decls, ast.NewVarDeclNode(p.toks.cur.Line, scope, typ, p.toks.cur.Text))
	}
	if err := p.toks.check(token.SYMBOL_SEMICOLON, ""); err != nil {
		return nil, err
	}
	return decls, nil
}

var primitives = map[token.Kind][2]ast.DataType{
	token.KW_INT:     {ast.IntScalar, ast.IntArray},
	token.KW_CHAR:    {ast.CharScalar, ast.CharArray},
	token.KW_BOOLEAN: {ast.BooleanScalar, ast.BooleanArray},
}

// parseType parses
//
//	int | char | boolean | int[] | char[] | boolean[] | ClassName
//
// starting at its first token, which it leaves current for scalars and
// class names. For arrays the closing bracket is left current.
func (p *parser) parseType() (ast.Type, error) {
	cur := p.toks.cur
	if cur.Kind == token.IDENTIFIER {
		return ast.ClassType(cur.Text), nil
	}
	kinds, ok := primitives[cur.Kind]
	if !ok {
		return ast.Type{}, p.toks.unexpected("a type")
	}
	next, err := p.toks.peek()
	if err != nil {
		return ast.Type{}, err
	}
	if next.Kind != token.SYMBOL_OPEN_BRACKET {
		return ast.ScalarType(kinds[0]), nil
	}
	if err := p.toks.advance(); err != nil {
		return ast.Type{}, err
	}
	if err := p.toks.expect(token.SYMBOL_CLOSE_BRACKET, ""); err != nil {
		return ast.Type{}, err
	}
	return ast.ScalarType(kinds[1]), nil
}

// parseSubroutine parses
//
//	(constructor | function | method) (void | Type) Name ( ParamList? ) Body
//
// starting at the keyword. It leaves the body's closing brace current.
func (p *parser) parseSubroutine(kind ast.SubroutineKind) (*ast.SubroutineNode, error) {
	line := p.toks.cur.Line
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	ret := ast.ScalarType(ast.Void)
	if p.toks.cur.Kind != token.KW_VOID {
		var err error
		if ret, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if err := p.toks.expect(token.IDENTIFIER, "a subroutine name"); err != nil {
		return nil, err
	}
	name := p.toks.cur.Text
	if err := p.toks.expect(token.SYMBOL_OPEN_PAREN, ""); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if err := p.toks.expect(token.SYMBOL_OPEN_BRACE, ""); err != nil {
		return nil, err
	}
	body, err := p.parseBody()
	if err != nil {
		return nil, err
	}
	return ast.NewSubroutineNode(line, kind, ret, name, params, body), nil
}

// parseParams parses an optional parameter list, starting at the opening
// parenthesis and leaving the closing one current.
func (p *parser) parseParams() ([]*ast.VarDeclNode, error) {
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	var params []*ast.VarDeclNode
	if p.toks.cur.Kind == token.SYMBOL_CLOSE_PAREN {
		return params, nil
	}
	for {
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if err := p.toks.expect(token.IDENTIFIER, "a parameter name"); err != nil {
			return nil, err
		}
		params = append(params, ast.NewVarDeclNode(p.toks.cur.Line, ast.Parameter, typ, p.toks.cur.Text))
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		if p.toks.cur.Kind != token.SYMBOL_COMMA {
			break
		}
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.toks.check(token.SYMBOL_CLOSE_PAREN, ""); err != nil {
		return nil, err
	}
	return params, nil
}

// parseBody parses
//
//	{ LocalVarDecl* Statement* }
//
// starting at the opening brace and leaving the closing one current.
func (p *parser) parseBody() (*ast.SubroutineBodyNode, error) {
	line := p.toks.cur.Line
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	var locals []*ast.VarDeclNode
	for {
		isDecl, err := p.atLocalDecl()
		if err != nil {
			return nil, err
		}
		if !isDecl {
			break
		}
		decls, err := p.parseVarList(ast.Local)
		if err != nil {
			return nil, err
		}
		locals = append(locals, decls...)
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
	}
	stmts, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	return ast.NewSubroutineBodyNode(line, locals, stmts), nil
}

// atLocalDecl reports whether the current token starts a local variable
// declaration: a primitive type keyword, or a class name followed by the
// variable's name.
func (p *parser) atLocalDecl() (bool, error) {
	switch p.toks.cur.Kind {
	case token.KW_INT, token.KW_CHAR, token.KW_BOOLEAN:
		return true, nil
	case token.IDENTIFIER:
		next, err := p.toks.peek()
		if err != nil {
			return false, err
		}
		return next.Kind == token.IDENTIFIER, nil
	default:
		return false, nil
	}
}
