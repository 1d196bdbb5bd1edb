// Package scanner turns Eck source text into a stream of tokens.
//
// The scanner is a finite automaton driven one character at a time. Comments
// and whitespace never produce tokens. The first lexical error is fatal: once
// Next returns an error the scanner must not be used again.
package scanner

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/reporter"
	"github.com/ecklang/eckfront/token"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Scanner produces the tokens of one source file.
type Scanner struct {
	info *ast.FileInfo
	data []byte
	pos  int
}

// New reads all of r and returns a scanner over its contents. If r is an
// io.Closer it is closed before New returns, whether or not reading succeeds.
func New(filename string, r io.Reader) (s *Scanner, err error) {
	if c, ok := r.(io.Closer); ok {
		defer func() {
			if closeErr := c.Close(); closeErr != nil && err == nil {
				s, err = nil, closeErr
			}
		}()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBytes(filename, data), nil
}

// NewBytes returns a scanner over data.
func NewBytes(filename string, data []byte) *Scanner {
	s := &Scanner{
		info: ast.NewFileInfo(filename, data),
		data: data,
	}
	if bytes.HasPrefix(data, bom) {
		s.pos = len(bom)
	}
	return s
}

// Info returns the line information gathered so far. Lines are recorded as
// the scanner passes them, so positions are only resolvable up to the last
// token returned.
func (s *Scanner) Info() *ast.FileInfo {
	return s.info
}

// Next returns the next token. At the end of the input it returns a token of
// kind EOF, and keeps doing so on every later call.
func (s *Scanner) Next() (token.Token, error) {
	var (
		st    = stateStart
		start = s.pos
		text  strings.Builder
		value int
	)
	for !st.accepting() {
		if st == stateStart {
			start = s.pos
		}
		c, size := s.peekChar()
		if c == utf8.RuneError && size == 1 {
			return token.Token{}, s.errorAt(s.pos, ErrInvalidUTF8)
		}
		next, act := step(st, c)
		switch act {
		case reject:
			return token.Token{}, s.rejectAt(st, c)
		case keep:
			text.WriteRune(c)
			if next == stateInteger {
				value = value*10 + int(c-'0')
				if value > token.MaxInt {
					return token.Token{}, s.errorAt(start, ErrIntegerTooLarge)
				}
			}
			s.consume(c, size)
		case skip:
			s.consume(c, size)
		case hold:
		}
		st = next
	}

	tok := token.Token{
		Line:   s.info.SourcePos(start).Line,
		Offset: start,
	}
	switch st {
	case acceptEOF:
		tok.Kind = token.EOF
	case acceptDivide:
		tok.Kind = token.SYMBOL_DIVIDE
	case acceptSymbol:
		r, _ := utf8.DecodeRuneInString(text.String())
		tok.Kind, _ = token.LookupSymbol(r)
	case acceptInteger:
		tok.Kind = token.INTEGER_CONST
		tok.Int = value
	case acceptWord:
		if kw, ok := token.LookupKeyword(text.String()); ok {
			tok.Kind = kw
		} else {
			tok.Kind = token.IDENTIFIER
			tok.Text = text.String()
		}
	case acceptString:
		tok.Kind = token.STRING_CONST
		tok.Text = text.String()
	}
	return tok, nil
}

// Pos returns the position of the given offset.
func (s *Scanner) Pos(offset int) ast.SourcePos {
	return s.info.SourcePos(offset)
}

func (s *Scanner) peekChar() (rune, int) {
	if s.pos >= len(s.data) {
		return eof, 0
	}
	if c := s.data[s.pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRune(s.data[s.pos:])
}

func (s *Scanner) consume(c rune, size int) {
	s.pos += size
	if c == '\n' {
		s.info.AddLine(s.pos)
	}
}

func (s *Scanner) rejectAt(st state, c rune) error {
	switch st {
	case stateString:
		return s.errorAt(s.pos, ErrUnterminatedString)
	case stateBlockComment, stateBlockStar:
		return s.errorAt(s.pos, ErrUnterminatedComment)
	default:
		return s.errorAt(s.pos, fmt.Errorf("%w %q", ErrIllegalCharacter, c))
	}
}

func (s *Scanner) errorAt(offset int, err error) error {
	return reporter.Error(s.info.SourcePos(offset), err)
}
