package scanner

import (
	"fmt"
	"unicode"

	"github.com/ecklang/eckfront/token"
)

// eof is the pseudo-character seen at the end of the input.
const eof rune = -1

// state is a state of the scanner's finite automaton.
type state uint8

const (
	stateStart        state = iota // between lexemes
	stateSlash                     // after '/': comment or division
	stateLineComment               // inside // ... newline
	stateBlockComment              // inside /* ... */
	stateBlockStar                 // inside a block comment, after '*'
	stateInteger                   // reading digits
	stateWord                      // reading an identifier or keyword
	stateString                    // between double quotes

	// Accepting states. Reaching one of these ends the lexeme.
	acceptEOF
	acceptDivide
	acceptSymbol
	acceptInteger
	acceptWord
	acceptString
)

var stateNames = [...]string{
	stateStart:        "start",
	stateSlash:        "slash",
	stateLineComment:  "line-comment",
	stateBlockComment: "block-comment",
	stateBlockStar:    "block-star",
	stateInteger:      "integer",
	stateWord:         "word",
	stateString:       "string",
	acceptEOF:         "accept-eof",
	acceptDivide:      "accept-divide",
	acceptSymbol:      "accept-symbol",
	acceptInteger:     "accept-integer",
	acceptWord:        "accept-word",
	acceptString:      "accept-string",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// accepting returns whether s ends a lexeme.
func (s state) accepting() bool {
	return s >= acceptEOF
}

// action says what the scanner does with the character that caused a
// transition.
type action uint8

const (
	// consume the character and discard it.
	skip action = iota
	// consume the character and append it to the current lexeme.
	keep
	// leave the character in the input to be examined again from the next
	// state.
	hold
	// the character is illegal in the current state.
	reject
)

// step is the transition function of the automaton: given the current state
// and the next character (or eof), it returns the next state and what to do
// with the character. It is never called with an accepting state.
func step(s state, c rune) (state, action) {
	switch s {
	case stateStart:
		switch {
		case c == eof:
			return acceptEOF, hold
		case isSpace(c):
			return stateStart, skip
		case c == '/':
			return stateSlash, skip
		case isDigit(c):
			return stateInteger, keep
		case isWordStart(c):
			return stateWord, keep
		case c == '"':
			return stateString, skip
		}
		if _, ok := token.LookupSymbol(c); ok {
			return acceptSymbol, keep
		}
		return stateStart, reject

	case stateSlash:
		switch c {
		case '/':
			return stateLineComment, skip
		case '*':
			return stateBlockComment, skip
		default:
			return acceptDivide, hold
		}

	case stateLineComment:
		switch c {
		case '\n':
			return stateStart, skip
		case eof:
			return stateStart, hold
		default:
			return stateLineComment, skip
		}

	case stateBlockComment:
		switch c {
		case '*':
			return stateBlockStar, skip
		case eof:
			return stateBlockComment, reject
		default:
			return stateBlockComment, skip
		}

	case stateBlockStar:
		switch c {
		case '/':
			return stateStart, skip
		case '*':
			return stateBlockStar, skip
		case eof:
			return stateBlockStar, reject
		default:
			return stateBlockComment, skip
		}

	case stateInteger:
		if isDigit(c) {
			return stateInteger, keep
		}
		return acceptInteger, hold

	case stateWord:
		if isWordPart(c) {
			return stateWord, keep
		}
		return acceptWord, hold

	case stateString:
		switch c {
		case '"':
			return acceptString, skip
		case eof:
			return stateString, reject
		default:
			return stateString, keep
		}
	}

	panic(fmt.Sprintf("scanner: no transitions out of %v", s))
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isWordStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isWordPart(c rune) bool {
	return c == '_' || unicode.IsLetter(c) || unicode.IsDigit(c)
}
