package scanner

import (
	"errors"
)

// Lexical errors. The scanner wraps them in a reporter.ErrorWithPos, so test
// for them with errors.Is.
var (
	ErrIllegalCharacter    = errors.New("illegal character")
	ErrIntegerTooLarge     = errors.New("integer too large")
	ErrUnterminatedString  = errors.New("end-of-file encountered in a string constant")
	ErrUnterminatedComment = errors.New("end-of-file encountered in a multi-line comment")
	ErrInvalidUTF8         = errors.New("invalid UTF-8 encoding")
)

// IsLexical reports whether err was caused by malformed source text, as
// opposed to a failure to read it.
func IsLexical(err error) bool {
	return errors.Is(err, ErrIllegalCharacter) ||
		errors.Is(err, ErrIntegerTooLarge) ||
		errors.Is(err, ErrUnterminatedString) ||
		errors.Is(err, ErrUnterminatedComment) ||
		errors.Is(err, ErrInvalidUTF8)
}
