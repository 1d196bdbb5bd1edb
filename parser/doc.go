// Package parser contains the logic for parsing Eck source code into an AST
// (abstract syntax tree).
//
// The parser is recursive descent with a single token of lookahead. Every
// grammar production reads its input through the same two primitives:
// expect, which consumes the next token and asserts its kind, and check,
// which asserts the kind of the token most recently consumed. A production
// may peek at the following token, but only once before consuming it.
//
// Binary operators bind in five levels, from loosest to tightest:
//
//	0: &  |
//	1: <  >  =
//	2: +  -
//	3: *  /
//	4: unary -  ~ , constants, variables, calls and parenthesized expressions
//
// Operators within a level associate to the right, so a-b-c is parsed as
// a-(b-c).
//
// The first syntax error ends the parse of a file. There is no recovery.
package parser
