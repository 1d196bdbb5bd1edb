// Package ast defines types for modeling the AST (Abstract Syntax
// Tree) of one Eck compilation unit.
//
// All nodes of the tree implement the Node interface, and every node records
// the source line of the token that defines it. Statements additionally
// implement Statement and expressions implement Expression. The root of the
// tree for a source file is a *ClassNode.
//
// The tree is strictly owned: every child belongs to exactly one parent and
// there are no back references. Nodes are built bottom-up by the parser and
// are not modified once returned.
//
// Creation of AST nodes should use the factory functions in this package
// instead of struct literals.
//
// This package defines a few interfaces. User code should not attempt to
// implement them: consumers of an AST switch over the concrete node types
// defined here and will not work correctly with any others.
package ast
