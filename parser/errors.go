package parser

import (
	"errors"
	"fmt"

	"github.com/ecklang/eckfront/token"
)

// ErrLookahead is returned when a production peeks at the next token twice
// without consuming the first one. It indicates a bug in the parser rather
// than in the source being parsed.
var ErrLookahead = errors.New("more than one level of lookahead attempted")

// SyntaxError describes a token that does not fit the grammar. It is always
// wrapped in a reporter.ErrorWithPos that points at the offending token.
type SyntaxError struct {
	// Expected describes what the grammar allows at this point, e.g. "';'"
	// or "a type".
	Expected string
	// Found is the token that was there instead.
	Found token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found.Describe())
}

// IsSyntax reports whether err is a grammar mismatch.
func IsSyntax(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}
