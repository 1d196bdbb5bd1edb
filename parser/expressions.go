package parser

import (
	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/token"
)

// Expression productions start with the expression's first token current and
// leave the token after the expression current.

// binaryLevels maps each binary operator to its precedence level. Lower
// levels bind more loosely.
var binaryLevels = map[token.Kind]int{
	token.SYMBOL_AND:    0,
	token.SYMBOL_OR:     0,
	token.SYMBOL_LT:     1,
	token.SYMBOL_GT:     1,
	token.SYMBOL_EQUAL:  1,
	token.SYMBOL_PLUS:   2,
	token.SYMBOL_MINUS:  2,
	token.SYMBOL_TIMES:  3,
	token.SYMBOL_DIVIDE: 3,
}

const unaryLevel = 4

func (p *parser) parseExpression() (ast.Expression, error) {
	return p.parseLevel(0)
}

// parseLevel parses
//
//	Level(n+1) (op Level(n))?
//
// where op is an operator of level n. Recursing into the same level for the
// right operand makes chains associate to the right.
func (p *parser) parseLevel(level int) (ast.Expression, error) {
	if level == unaryLevel {
		return p.parseUnary()
	}
	left, err := p.parseLevel(level + 1)
	if err != nil {
		return nil, err
	}
	op := p.toks.cur
	if l, ok := binaryLevels[op.Kind]; !ok || l != level {
		return left, nil
	}
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	right, err := p.parseLevel(level)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExprNode(op.Line, op.Kind, left, right), nil
}

// parseUnary parses
//
//	- Unary | ~ Unary | IntegerConstant | StringConstant | KeywordConstant
//	| ( Expression ) | Name | Name [ Expression ] | SubroutineCall
func (p *parser) parseUnary() (ast.Expression, error) {
	tok := p.toks.cur
	switch tok.Kind {
	case token.SYMBOL_MINUS, token.SYMBOL_NEGATE:
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExprNode(tok.Line, tok.Kind, operand), nil

	case token.INTEGER_CONST:
		return ast.NewIntConstant(tok.Line, tok.Int), p.toks.advance()

	case token.STRING_CONST:
		return ast.NewStringConstant(tok.Line, tok.Text), p.toks.advance()

	case token.KW_TRUE, token.KW_FALSE, token.KW_NULL, token.KW_THIS:
		return ast.NewKeywordConstant(tok.Line, tok.Kind, p.class), p.toks.advance()

	case token.SYMBOL_OPEN_PAREN:
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.toks.check(token.SYMBOL_CLOSE_PAREN, ""); err != nil {
			return nil, err
		}
		return expr, p.toks.advance()

	case token.IDENTIFIER:
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
		switch p.toks.cur.Kind {
		case token.SYMBOL_OPEN_BRACKET:
			index, err := p.parseIndex()
			if err != nil {
				return nil, err
			}
			return ast.NewVarRefNode(tok.Line, tok.Text, index), nil
		case token.SYMBOL_DOT, token.SYMBOL_OPEN_PAREN:
			call, err := p.parseCallRest(tok)
			if err != nil {
				return nil, err
			}
			return call, p.toks.advance()
		default:
			return ast.NewVarRefNode(tok.Line, tok.Text, nil), nil
		}

	default:
		return nil, p.toks.unexpected("an expression")
	}
}

// parseIndex parses
//
//	[ Expression ]
//
// starting at the opening bracket.
func (p *parser) parseIndex() (ast.Expression, error) {
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	index, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.toks.check(token.SYMBOL_CLOSE_BRACKET, ""); err != nil {
		return nil, err
	}
	return index, p.toks.advance()
}

// parseCallRest parses the remainder of
//
//	Name ( ExprList? ) | Receiver . Name ( ExprList? )
//
// after ident, the leading identifier, has been consumed. It leaves the
// closing parenthesis current.
func (p *parser) parseCallRest(ident token.Token) (*ast.CallNode, error) {
	var receiver string
	name := ident.Text
	if p.toks.cur.Kind == token.SYMBOL_DOT {
		if err := p.toks.expect(token.IDENTIFIER, "a subroutine name"); err != nil {
			return nil, err
		}
		receiver, name = ident.Text, p.toks.cur.Text
		if err := p.toks.advance(); err != nil {
			return nil, err
		}
	}
	if err := p.toks.check(token.SYMBOL_OPEN_PAREN, ""); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return ast.NewCallNode(ident.Line, receiver, name, args), nil
}

// parseArgs parses
//
//	( (Expression (, Expression)*)? )
//
// starting at the opening parenthesis and leaving the closing one current.
func (p *parser) parseArgs() ([]ast.Expression, error) {
	if err := p.toks.advance(); err != nil {
		return nil, err
	}
	var args []ast.Expression
	if p.toks.cur.Kind == token.SYMBOL_CLOSE_PAREN {
		return args, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
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
	return args, nil
}
