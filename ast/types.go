package ast

import "fmt"

// DataType is the closed set of types a variable, subroutine or constant
// may have.
type DataType uint8

const (
	BooleanScalar DataType = 1 + iota
	BooleanArray
	CharScalar
	CharArray
	ClassScalar
	IntScalar
	IntArray
	String
	Void
)

func (t DataType) String() string {
	switch t {
	case BooleanScalar:
		return "BOOLEAN_SCALAR"
	case BooleanArray:
		return "BOOLEAN_ARRAY"
	case CharScalar:
		return "CHAR_SCALAR"
	case CharArray:
		return "CHAR_ARRAY"
	case ClassScalar:
		return "CLASS_SCALAR"
	case IntScalar:
		return "INT_SCALAR"
	case IntArray:
		return "INT_ARRAY"
	case String:
		return "STRING"
	case Void:
		return "VOID"
	default:
		return fmt.Sprintf("ast.DataType(%d)", int(t))
	}
}

// IsArray returns whether t is one of the array types.
func (t DataType) IsArray() bool {
	return t == BooleanArray || t == CharArray || t == IntArray
}

// Element returns the scalar type stored in an array of type t. Scalar types
// are returned unchanged.
func (t DataType) Element() DataType {
	switch t {
	case BooleanArray:
		return BooleanScalar
	case CharArray:
		return CharScalar
	case IntArray:
		return IntScalar
	default:
		return t
	}
}

// Type is a DataType plus, for ClassScalar, the name of the class.
type Type struct {
	Kind  DataType
	Class string
}

// ScalarType returns a Type of the given non-class kind.
func ScalarType(kind DataType) Type {
	return Type{Kind: kind}
}

// ClassType returns the type of instances of the named class.
func ClassType(name string) Type {
	return Type{Kind: ClassScalar, Class: name}
}

func (t Type) String() string {
	if t.Kind == ClassScalar && t.Class != "" {
		return t.Kind.String() + ":" + t.Class
	}
	return t.Kind.String()
}

// Scope says where a variable is declared.
type Scope uint8

const (
	Field Scope = 1 + iota
	Local
	Parameter
	Static
)

func (s Scope) String() string {
	switch s {
	case Field:
		return "FIELD"
	case Local:
		return "LOCAL"
	case Parameter:
		return "PARAMETER"
	case Static:
		return "STATIC"
	default:
		return fmt.Sprintf("ast.Scope(%d)", int(s))
	}
}

// SubroutineKind distinguishes the three kinds of subroutine.
type SubroutineKind uint8

const (
	Constructor SubroutineKind = 1 + iota
	Function
	Method
)

func (k SubroutineKind) String() string {
	switch k {
	case Constructor:
		return "CONSTRUCTOR"
	case Function:
		return "FUNCTION"
	case Method:
		return "METHOD"
	default:
		return fmt.Sprintf("ast.SubroutineKind(%d)", int(k))
	}
}
