package token

import (
	"iter"
	"slices"
)

// keywords maps reserved words to their kinds. Identifier-like lexemes are
// classified by exact lookup in this table after they are scanned in full.
var keywords = map[string]Kind{
	"boolean":     KW_BOOLEAN,
	"char":        KW_CHAR,
	"class":       KW_CLASS,
	"constructor": KW_CONSTRUCTOR,
	"do":          KW_DO,
	"else":        KW_ELSE,
	"false":       KW_FALSE,
	"field":       KW_FIELD,
	"function":    KW_FUNCTION,
	"if":          KW_IF,
	"int":         KW_INT,
	"method":      KW_METHOD,
	"null":        KW_NULL,
	"return":      KW_RETURN,
	"static":      KW_STATIC,
	"this":        KW_THIS,
	"true":        KW_TRUE,
	"void":        KW_VOID,
	"while":       KW_WHILE,
}

// symbols maps each punctuation character to its kind.
var symbols = map[rune]Kind{
	'{': SYMBOL_OPEN_BRACE,
	'}': SYMBOL_CLOSE_BRACE,
	'(': SYMBOL_OPEN_PAREN,
	')': SYMBOL_CLOSE_PAREN,
	'[': SYMBOL_OPEN_BRACKET,
	']': SYMBOL_CLOSE_BRACKET,
	'.': SYMBOL_DOT,
	',': SYMBOL_COMMA,
	';': SYMBOL_SEMICOLON,
	'+': SYMBOL_PLUS,
	'-': SYMBOL_MINUS,
	'*': SYMBOL_TIMES,
	'/': SYMBOL_DIVIDE,
	'&': SYMBOL_AND,
	'|': SYMBOL_OR,
	'<': SYMBOL_LT,
	'>': SYMBOL_GT,
	'=': SYMBOL_EQUAL,
	'~': SYMBOL_NEGATE,
}

// spellings is the reverse of keywords and symbols, indexed by kind.
var spellings = func() []string {
	s := make([]string, numKinds)
	for word, k := range keywords {
		s[k] = word
	}
	for r, k := range symbols {
		s[k] = string(r)
	}
	return s
}()

// LookupKeyword returns the keyword kind spelled exactly as word.
func LookupKeyword(word string) (Kind, bool) {
	k, ok := keywords[word]
	return k, ok
}

// LookupSymbol returns the symbol kind for the character r.
func LookupSymbol(r rune) (Kind, bool) {
	k, ok := symbols[r]
	return k, ok
}

// Keywords yields every keyword spelling with its kind, in kind order.
func Keywords() iter.Seq2[string, Kind] {
	return sortedTable(keywords)
}

// Symbols yields every symbol spelling with its kind, in kind order.
func Symbols() iter.Seq2[string, Kind] {
	m := make(map[string]Kind, len(symbols))
	for r, k := range symbols {
		m[string(r)] = k
	}
	return sortedTable(m)
}

func sortedTable(m map[string]Kind) iter.Seq2[string, Kind] {
	kinds := make([]Kind, 0, len(m))
	for _, k := range m {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return func(yield func(string, Kind) bool) {
		for _, k := range kinds {
			if !yield(k.Spelling(), k) {
				return
			}
		}
	}
}
