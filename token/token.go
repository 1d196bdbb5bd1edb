// Package token defines the token catalog shared by the scanner and the
// parser: the closed set of token kinds, the keyword and symbol tables used
// to classify lexemes, and the Token value itself.
package token

import (
	"fmt"
	"strconv"
)

// MaxInt is the largest value an integer constant may have.
const MaxInt = 32767

// Token is a single classified lexeme.
type Token struct {
	Kind Kind
	// Text is the payload of IDENTIFIER (the name) and STRING_CONST (the
	// characters between the quotes). It is empty for every other kind.
	Text string
	// Int is the payload of INTEGER_CONST.
	Int int
	// Line is the 1-based line of the token's first character.
	Line int
	// Offset is the byte offset of the token's first character.
	Offset int
}

// Value returns the token's payload, or nil if its kind has none.
func (t Token) Value() any {
	switch t.Kind {
	case INTEGER_CONST:
		return t.Int
	case STRING_CONST, IDENTIFIER:
		return t.Text
	default:
		return nil
	}
}

// String renders the token the way a token listing shows it: the kind,
// followed by a comma and the payload if there is one.
func (t Token) String() string {
	if v := t.Value(); v != nil {
		return fmt.Sprintf("%s, %v", t.Kind, v)
	}
	return t.Kind.String()
}

// Describe renders the token for use in a diagnostic, e.g. `identifier "x"`.
func (t Token) Describe() string {
	switch t.Kind {
	case IDENTIFIER:
		return "identifier " + strconv.Quote(t.Text)
	case STRING_CONST:
		return "string constant " + strconv.Quote(t.Text)
	case INTEGER_CONST:
		return "integer constant " + strconv.Itoa(t.Int)
	default:
		return t.Kind.Describe()
	}
}
