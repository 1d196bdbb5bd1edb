package scanner

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecklang/eckfront/reporter"
	"github.com/ecklang/eckfront/token"
)

func scanAll(t *testing.T, src string) ([]token.Token, error) {
	t.Helper()
	s := NewBytes("test.eck", []byte(src))
	var toks []token.Token
	for {
		tok, err := s.Next()
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, nil
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestIntegers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 9, 10, 255, 1000, 32766, 32767} {
		toks, err := scanAll(t, strconv.Itoa(n))
		require.NoError(t, err)
		require.Len(t, toks, 2)
		assert.Equal(t, token.INTEGER_CONST, toks[0].Kind)
		assert.Equal(t, n, toks[0].Int)
	}

	toks, err := scanAll(t, "007 0x")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.INTEGER_CONST, token.INTEGER_CONST, token.IDENTIFIER, token.EOF}, kinds(toks))
	assert.Equal(t, 7, toks[0].Int)
	assert.Equal(t, 0, toks[1].Int)
	assert.Equal(t, "x", toks[2].Text)
}

func TestIntegerTooLarge(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"32768", "99999", "1000000000000000000000"} {
		_, err := scanAll(t, "let "+src)
		require.Error(t, err, src)
		assert.ErrorIs(t, err, ErrIntegerTooLarge)
		assert.Contains(t, err.Error(), "too large")
		assert.True(t, IsLexical(err))

		var ewp reporter.ErrorWithPos
		require.ErrorAs(t, err, &ewp)
		assert.Equal(t, 4, ewp.GetPosition().Offset, "points at the start of the literal")
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	t.Parallel()

	toks, err := scanAll(t, "class classroom _x x1 while whileTrue Foo_Bar")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.KW_CLASS, token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER,
		token.KW_WHILE, token.IDENTIFIER, token.IDENTIFIER, token.EOF,
	}, kinds(toks))
	assert.Equal(t, "classroom", toks[1].Text)
	assert.Equal(t, "_x", toks[2].Text)
	assert.Equal(t, "x1", toks[3].Text)
	assert.Empty(t, toks[4].Text)
	assert.Equal(t, "whileTrue", toks[5].Text)
	assert.Equal(t, "Foo_Bar", toks[6].Text)

	for word, kind := range token.Keywords() {
		toks, err := scanAll(t, word)
		require.NoError(t, err)
		assert.Equal(t, kind, toks[0].Kind, word)

		toks, err = scanAll(t, word+"s")
		require.NoError(t, err)
		assert.Equal(t, token.IDENTIFIER, toks[0].Kind, word+"s")
	}
}

func TestSymbols(t *testing.T) {
	t.Parallel()

	for spelling, kind := range token.Symbols() {
		toks, err := scanAll(t, spelling+" ")
		require.NoError(t, err, spelling)
		assert.Equal(t, []token.Kind{kind, token.EOF}, kinds(toks), spelling)
	}

	toks, err := scanAll(t, "a[i]=-b/c;")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.SYMBOL_OPEN_BRACKET, token.IDENTIFIER, token.SYMBOL_CLOSE_BRACKET,
		token.SYMBOL_EQUAL, token.SYMBOL_MINUS, token.IDENTIFIER, token.SYMBOL_DIVIDE,
		token.IDENTIFIER, token.SYMBOL_SEMICOLON, token.EOF,
	}, kinds(toks))
}

func TestStrings(t *testing.T) {
	t.Parallel()

	toks, err := scanAll(t, `"abc" "" "a // b /* c" "tab\t"`)
	require.NoError(t, err)
	require.Len(t, toks, 5)
	assert.Equal(t, token.STRING_CONST, toks[0].Kind)
	assert.Equal(t, "abc", toks[0].Text)
	assert.Empty(t, toks[1].Text)
	assert.Equal(t, "a // b /* c", toks[2].Text)
	assert.Equal(t, `tab\t`, toks[3].Text, "no escape processing")

	_, err = scanAll(t, `x = "abc`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedString)
	assert.True(t, IsLexical(err))
}

func TestComments(t *testing.T) {
	t.Parallel()

	toks, err := scanAll(t, "// comment\nx")
	require.NoError(t, err)
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, "x", toks[0].Text)
	assert.Equal(t, 2, toks[0].Line)

	toks, err = scanAll(t, "/* a\nb */x")
	require.NoError(t, err)
	require.Equal(t, token.IDENTIFIER, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Line)

	toks, err = scanAll(t, "/* a\n\nb **/ /* /* no nesting */ // c\n  // d\ny // at eof")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.IDENTIFIER, token.EOF}, kinds(toks))
	assert.Equal(t, 5, toks[0].Line)

	for _, src := range []string{"/* unterminated", "/* almost *", "x /*"} {
		_, err = scanAll(t, src)
		require.Error(t, err, src)
		assert.ErrorIs(t, err, ErrUnterminatedComment)

		var ewp reporter.ErrorWithPos
		require.ErrorAs(t, err, &ewp)
		assert.Equal(t, len(src), ewp.GetPosition().Offset, "reported at end of input")
	}
}

func TestDivideLookahead(t *testing.T) {
	t.Parallel()

	toks, err := scanAll(t, "a/b /(c) /")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.SYMBOL_DIVIDE, token.IDENTIFIER,
		token.SYMBOL_DIVIDE, token.SYMBOL_OPEN_PAREN, token.IDENTIFIER, token.SYMBOL_CLOSE_PAREN,
		token.SYMBOL_DIVIDE, token.EOF,
	}, kinds(toks))
	assert.Equal(t, "b", toks[2].Text, "character after '/' is not lost")
}

func TestIllegalCharacter(t *testing.T) {
	t.Parallel()

	_, err := scanAll(t, "x\n  #")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalCharacter)
	assert.Equal(t, "test.eck:2:3: illegal character '#'", err.Error())
	assert.True(t, IsLexical(err))

	_, err = scanAll(t, "x \xff")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestLinesAndOffsets(t *testing.T) {
	t.Parallel()

	toks, err := scanAll(t, "class A {\r\n\tfield int x;\n}\n")
	require.NoError(t, err)
	var lines, offsets []int
	for _, tok := range toks {
		lines = append(lines, tok.Line)
		offsets = append(offsets, tok.Offset)
	}
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 2, 3, 4}, lines)
	assert.Equal(t, []int{0, 6, 8, 12, 18, 22, 23, 25, 27}, offsets)
}

func TestEOFRepeats(t *testing.T) {
	t.Parallel()

	s := NewBytes("test.eck", []byte("  x  "))
	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, token.IDENTIFIER, tok.Kind)
	for range 3 {
		tok, err = s.Next()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, tok.Kind)
	}
}

func TestByteOrderMark(t *testing.T) {
	t.Parallel()

	toks, err := scanAll(t, "\xEF\xBB\xBFclass")
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.KW_CLASS, token.EOF}, kinds(toks))
	assert.Equal(t, 3, toks[0].Offset)
}

type trackingReader struct {
	io.Reader
	closed bool
	err    error
}

func (r *trackingReader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	return r.Reader.Read(p)
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestNewClosesInput(t *testing.T) {
	t.Parallel()

	r := &trackingReader{Reader: strings.NewReader("class")}
	s, err := New("a.eck", r)
	require.NoError(t, err)
	assert.True(t, r.closed)
	assert.Equal(t, "a.eck", s.Info().Name())

	errRead := errors.New("disk on fire")
	r = &trackingReader{Reader: strings.NewReader("class"), err: errRead}
	_, err = New("a.eck", r)
	require.ErrorIs(t, err, errRead)
	assert.False(t, IsLexical(err))
	assert.True(t, r.closed, "closed on the failure path too")
}

func TestStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from   state
		c      rune
		to     state
		action action
	}{
		{stateStart, ' ', stateStart, skip},
		{stateStart, eof, acceptEOF, hold},
		{stateStart, '/', stateSlash, skip},
		{stateStart, '7', stateInteger, keep},
		{stateStart, 'q', stateWord, keep},
		{stateStart, '"', stateString, skip},
		{stateStart, '{', acceptSymbol, keep},
		{stateStart, '$', stateStart, reject},
		{stateSlash, '/', stateLineComment, skip},
		{stateSlash, '*', stateBlockComment, skip},
		{stateSlash, 'x', acceptDivide, hold},
		{stateSlash, eof, acceptDivide, hold},
		{stateLineComment, '\n', stateStart, skip},
		{stateLineComment, eof, stateStart, hold},
		{stateBlockComment, '*', stateBlockStar, skip},
		{stateBlockComment, '/', stateBlockComment, skip},
		{stateBlockStar, '*', stateBlockStar, skip},
		{stateBlockStar, '/', stateStart, skip},
		{stateBlockStar, 'a', stateBlockComment, skip},
		{stateBlockStar, eof, stateBlockStar, reject},
		{stateInteger, '0', stateInteger, keep},
		{stateInteger, 'a', acceptInteger, hold},
		{stateWord, '_', stateWord, keep},
		{stateWord, '.', acceptWord, hold},
		{stateString, '"', acceptString, skip},
		{stateString, eof, stateString, reject},
	}
	for _, tt := range tests {
		to, act := step(tt.from, tt.c)
		assert.Equal(t, tt.to, to, "%v on %q", tt.from, tt.c)
		assert.Equal(t, tt.action, act, "%v on %q", tt.from, tt.c)
	}

	assert.Panics(t, func() { step(acceptWord, 'x') })
	assert.True(t, acceptEOF.accepting())
	assert.False(t, stateString.accepting())
	assert.Equal(t, "block-star", stateBlockStar.String())
}
