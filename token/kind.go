package token

import "fmt"

// Kind identifies the category of a [Token].
//
// The set of kinds is closed: the end-of-file marker, three payload-carrying
// literal kinds, nineteen keywords and nineteen single-character symbols.
type Kind uint8

const (
	EOF Kind = iota
	INTEGER_CONST
	STRING_CONST
	IDENTIFIER

	KW_BOOLEAN
	KW_CHAR
	KW_CLASS
	KW_CONSTRUCTOR
	KW_DO
	KW_ELSE
	KW_FALSE
	KW_FIELD
	KW_FUNCTION
	KW_IF
	KW_INT
	KW_METHOD
	KW_NULL
	KW_RETURN
	KW_STATIC
	KW_THIS
	KW_TRUE
	KW_VOID
	KW_WHILE

	SYMBOL_OPEN_BRACE
	SYMBOL_CLOSE_BRACE
	SYMBOL_OPEN_PAREN
	SYMBOL_CLOSE_PAREN
	SYMBOL_OPEN_BRACKET
	SYMBOL_CLOSE_BRACKET
	SYMBOL_DOT
	SYMBOL_COMMA
	SYMBOL_SEMICOLON
	SYMBOL_PLUS
	SYMBOL_MINUS
	SYMBOL_TIMES
	SYMBOL_DIVIDE
	SYMBOL_AND
	SYMBOL_OR
	SYMBOL_LT
	SYMBOL_GT
	SYMBOL_EQUAL
	SYMBOL_NEGATE

	numKinds int = iota
)

const (
	firstKeyword = KW_BOOLEAN
	lastKeyword  = KW_WHILE
	firstSymbol  = SYMBOL_OPEN_BRACE
	lastSymbol   = SYMBOL_NEGATE
)

var kindNames = [...]string{
	EOF:                  "EOF",
	INTEGER_CONST:        "INTEGER_CONST",
	STRING_CONST:         "STRING_CONST",
	IDENTIFIER:           "IDENTIFIER",
	KW_BOOLEAN:           "KW_BOOLEAN",
	KW_CHAR:              "KW_CHAR",
	KW_CLASS:             "KW_CLASS",
	KW_CONSTRUCTOR:       "KW_CONSTRUCTOR",
	KW_DO:                "KW_DO",
	KW_ELSE:              "KW_ELSE",
	KW_FALSE:             "KW_FALSE",
	KW_FIELD:             "KW_FIELD",
	KW_FUNCTION:          "KW_FUNCTION",
	KW_IF:                "KW_IF",
	KW_INT:               "KW_INT",
	KW_METHOD:            "KW_METHOD",
	KW_NULL:              "KW_NULL",
	KW_RETURN:            "KW_RETURN",
	KW_STATIC:            "KW_STATIC",
	KW_THIS:              "KW_THIS",
	KW_TRUE:              "KW_TRUE",
	KW_VOID:              "KW_VOID",
	KW_WHILE:             "KW_WHILE",
	SYMBOL_OPEN_BRACE:    "SYMBOL_OPEN_BRACE",
	SYMBOL_CLOSE_BRACE:   "SYMBOL_CLOSE_BRACE",
	SYMBOL_OPEN_PAREN:    "SYMBOL_OPEN_PAREN",
	SYMBOL_CLOSE_PAREN:   "SYMBOL_CLOSE_PAREN",
	SYMBOL_OPEN_BRACKET:  "SYMBOL_OPEN_BRACKET",
	SYMBOL_CLOSE_BRACKET: "SYMBOL_CLOSE_BRACKET",
	SYMBOL_DOT:           "SYMBOL_DOT",
	SYMBOL_COMMA:         "SYMBOL_COMMA",
	SYMBOL_SEMICOLON:     "SYMBOL_SEMICOLON",
	SYMBOL_PLUS:          "SYMBOL_PLUS",
	SYMBOL_MINUS:         "SYMBOL_MINUS",
	SYMBOL_TIMES:         "SYMBOL_TIMES",
	SYMBOL_DIVIDE:        "SYMBOL_DIVIDE",
	SYMBOL_AND:           "SYMBOL_AND",
	SYMBOL_OR:            "SYMBOL_OR",
	SYMBOL_LT:            "SYMBOL_LT",
	SYMBOL_GT:            "SYMBOL_GT",
	SYMBOL_EQUAL:         "SYMBOL_EQUAL",
	SYMBOL_NEGATE:        "SYMBOL_NEGATE",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("token.Kind(%d)", int(k))
}

// IsKeyword returns whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= firstKeyword && k <= lastKeyword
}

// IsSymbol returns whether k is one of the single-character symbols.
func (k Kind) IsSymbol() bool {
	return k >= firstSymbol && k <= lastSymbol
}

// HasPayload returns whether tokens of this kind carry a value.
func (k Kind) HasPayload() bool {
	return k == INTEGER_CONST || k == STRING_CONST || k == IDENTIFIER
}

// Spelling returns the exact source text of a keyword or symbol kind, or the
// empty string for any other kind.
func (k Kind) Spelling() string {
	if int(k) < len(spellings) {
		return spellings[k]
	}
	return ""
}

// Describe returns a short human-readable description of k, suitable for
// use in diagnostics, e.g. "';'" or "an identifier".
func (k Kind) Describe() string {
	switch k {
	case EOF:
		return "end of file"
	case INTEGER_CONST:
		return "an integer constant"
	case STRING_CONST:
		return "a string constant"
	case IDENTIFIER:
		return "an identifier"
	}
	if s := k.Spelling(); s != "" {
		return "'" + s + "'"
	}
	return k.String()
}
