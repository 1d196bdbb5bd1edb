package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteListing(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := WriteListing(&b, NewBytes("a.eck", []byte(`class A { x = "hi" / 12; }`)))
	require.NoError(t, err)
	assert.Equal(t, `KW_CLASS
IDENTIFIER, A
SYMBOL_OPEN_BRACE
IDENTIFIER, x
SYMBOL_EQUAL
STRING_CONST, hi
SYMBOL_DIVIDE
INTEGER_CONST, 12
SYMBOL_SEMICOLON
SYMBOL_CLOSE_BRACE
EOF
`, b.String())
}

func TestWriteListingError(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	err := WriteListing(&b, NewBytes("a.eck", []byte("x\n  ?")))
	require.ErrorIs(t, err, ErrIllegalCharacter)
	assert.Equal(t, "IDENTIFIER, x\na.eck:2:3: illegal character '?'\n", b.String())
}
