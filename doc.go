// Package eckfront provides the entry point for the front end of an Eck
// compiler. "Compile" in this case means scanning and parsing source files
// into syntax trees; later phases such as type checking and code generation
// are not part of this module.
//
// The various sub-packages represent the phases and their models:
//  1. Scan source text into tokens.
//     Also see: scanner.New
//  2. Parse tokens into an AST.
//     Also see: parser.Parse
//  3. Render or export the AST.
//     Also see: printer.Print, export.ToYAML
//
// This package provides an easy-to-use interface that runs the phases for a
// list of files, parsing several of them in parallel.
//
// # Resolvers
//
// A Resolver is how the compiler locates the files it compiles. It can
// answer a query either with source code, which the compiler then parses, or
// with an AST, in which case parsing is skipped.
//
// # Compiler
//
// A Compiler accepts a list of file names and produces a syntax tree for
// each. Only the Resolver field is required. A minimal Compiler, that loads
// files from the file system relative to the current working directory, can
// be had with the following simple snippet:
//
//	compiler := eckfront.Compiler{
//	    Resolver: &eckfront.SourceResolver{},
//	}
//
// This minimal Compiler uses default parallelism, equal to the number of CPU
// cores detected, and fails fast at the first error. Both can be customized
// by setting other fields.
package eckfront
