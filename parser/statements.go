package parser

import (
	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/token"
)

// parseStatements parses statements up to a closing brace, starting at the
// first token of the first statement. The closing brace is left current.
func (p *parser) parseStatements() ([]ast.Statement, error) {
	stmts := []ast.Statement{}
	for p.toks.cur.Kind != token.SYMBOL_CLOSE_BRACE {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
	}
	return stmts, nil
}

// parseStatement parses one statement starting at its first token, and
// leaves its last token (a semicolon or closing brace) current.
func (p *parser) parseStatement() (ast.Statement, error) {
	switch p.toks.cur.Kind {
	case token.KW_IF:
		return p.parseIf()
	case token.KW_WHILE:
		return p.parseWhile()
	case token.KW_DO:
		return p.parseDo()
	case token.KW_RETURN:
		return p.parseReturn()
	default:
		return p.parseAssign()
	}
}

// parseBlock parses
//
//	{ Statement* }
//
// expecting the opening brace as the next token.
func (p *parser) parseBlock() ([]ast.Statement, error) {
	if err := p.toks.expect(token.SYMBOL_OPEN_BRACE, ""); err != nil {
		return nil, err
	}
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	return p.parseStatements()
}

// parseCondition parses
//
//	( Expression )
//
// expecting the opening parenthesis as the next token.
func (p *parser) parseCondition() (ast.Expression, error) {
	if err := p.toks.expect(token.SYMBOL_OPEN_PAREN, ""); err != nil {
		return nil, err
	}
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.toks.check(token.SYMBOL_CLOSE_PAREN, ""); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseAssign parses
//
//	Name ([ Expression ])? = Expression ;
func (p *parser) parseAssign() (*ast.AssignNode, error) {
	if err := p.toks.check(token.IDENTIFIER, "a statement"); err != nil {
		return nil, err
	}
	line, name := p.toks.cur.Line, p.toks.cur.Text
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	var index ast.Expression
	if p.toks.cur.Kind == token.SYMBOL_OPEN_BRACKET {
		var err error
		if index, err = p.parseIndex(); err != nil {
			return nil, err
		}
	}
	if err := p.toks.check(token.SYMBOL_EQUAL, ""); err != nil {
		return nil, err
	}
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.toks.check(token.SYMBOL_SEMICOLON, ""); err != nil {
		return nil, err
	}
	return ast.NewAssignNode(line, name, index, value), nil
}

// parseIf parses
//
//	if ( Expression ) { Statement* } (else { Statement* })?
func (p *parser) parseIf() (*ast.IfNode, error) {
	line := p.toks.cur.Line
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	next, err := p.toks.peek()
	if err != nil {
		return nil, err
	}
	var els []ast.Statement
	if next.Kind == token.KW_ELSE {
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		if els, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return ast.NewIfNode(line, cond, then, els), nil
}

// parseWhile parses
//
//	while ( Expression ) { Statement* }
func (p *parser) parseWhile() (*ast.WhileNode, error) {
	line := p.toks.cur.Line
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileNode(line, cond, body), nil
}

// parseDo parses
//
//	do SubroutineCall ;
func (p *parser) parseDo() (*ast.DoNode, error) {
	line := p.toks.cur.Line
	if err := p.toks.expect(token.IDENTIFIER, "a subroutine name"); err != nil {
		return nil, err
	}
	ident := p.toks.cur
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	call, err := p.parseCallRest(ident)
	if err != nil {
		return nil, err
	}
	if err := p.toks.expect(token.SYMBOL_SEMICOLON, ""); err != nil {
		return nil, err
	}
	return ast.NewDoNode(line, call), nil
}

// parseReturn parses
//
//	return Expression? ;
func (p *parser) parseReturn() (*ast.ReturnNode, error) {
	line := p.toks.cur.Line
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	if p.toks.cur.Kind == token.SYMBOL_SEMICOLON {
		return ast.NewReturnNode(line, nil), nil
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.toks.check(token.SYMBOL_SEMICOLON, ""); err != nil {
		return nil, err
	}
	return ast.NewReturnNode(line, value), nil
}
