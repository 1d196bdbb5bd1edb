package parser

import (
	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/reporter"
	"github.com/ecklang/eckfront/token"
)

// tokenSource is what the parser reads tokens from. *scanner.Scanner
// implements it.
type tokenSource interface {
	Next() (token.Token, error)
}

// tokens is the parser's window onto the token stream: the token most
// recently consumed, plus at most one token that has been peeked at but not
// yet consumed.
type tokens struct {
	src  tokenSource
	info *ast.FileInfo

	cur        token.Token
	pending    token.Token
	hasPending bool
}

func newTokens(src tokenSource, info *ast.FileInfo) *tokens {
	return &tokens{src: src, info: info}
}

// advance consumes the next token, making it current.
func (t *tokens) advance() error {
	if t.hasPending {
		t.cur, t.hasPending = t.pending, false
		return nil
	}
	tok, err := t.src.Next()
	if err != nil {
		return err
	}
	t.cur = tok
	return nil
}

// peek returns the next token without consuming it. Peeking again before
// the token is consumed is an error.
func (t *tokens) peek() (token.Token, error) {
	if t.hasPending {
		return token.Token{}, reporter.Error(t.pos(), ErrLookahead)
	}
	tok, err := t.src.Next()
	if err != nil {
		return token.Token{}, err
	}
	t.pending, t.hasPending = tok, true
	return tok, nil
}

// expect consumes the next token and checks that it has the given kind.
func (t *tokens) expect(kind token.Kind, what string) error {
	if err := t.advance(); err != nil {
		return err
	}
	return t.check(kind, what)
}

// check verifies that the current token has the given kind. what describes
// the expected token in the error; if empty, the kind's spelling is used.
func (t *tokens) check(kind token.Kind, what string) error {
	if t.cur.Kind == kind {
		return nil
	}
	if what == "" {
		what = kind.Describe()
	}
	return t.unexpected(what)
}

// unexpected returns a syntax error for the current token.
func (t *tokens) unexpected(what string) error {
	return reporter.Error(t.pos(), &SyntaxError{Expected: what, Found: t.cur})
}

func (t *tokens) pos() ast.SourcePos {
	return t.info.SourcePos(t.cur.Offset)
}
