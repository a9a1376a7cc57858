package codegen

import (
	"go/ast"
	"go/constant"
	"go/token"
)

// Derive names a generator that can be attached to a type declaration.
type Derive string

const (
	DeriveSwapEndian Derive = "swapendian"
	DeriveTryFrom    Derive = "tryfrom"
)

// derives lists every known Derive in generation order.
var derives = []Derive{DeriveSwapEndian, DeriveTryFrom}

// Kind classifies an extracted declaration.
type Kind int

const (
	KindRecord Kind = iota + 1
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindEnum:
		return "enumeration"
	default:
		return "unknown"
	}
}

// Shape is the field layout of a record.
type Shape int

const (
	// ShapeUnit has no fields.
	ShapeUnit Shape = iota
	// ShapeNamed is a struct whose fields are keyed by name.
	ShapeNamed
	// ShapePositional is an array type whose elements are keyed by index.
	ShapePositional
)

func (s Shape) String() string {
	switch s {
	case ShapeNamed:
		return "named"
	case ShapePositional:
		return "positional"
	default:
		return "unit"
	}
}

// TypeInfo holds an annotated type declaration parsed from Go source.
// Exactly one of Record and Enum is set, according to Kind.
type TypeInfo struct {
	// Name is the declared type name
	Name string

	// Package is the package name this type belongs to
	Package string

	// FilePath is the path to the source file containing the declaration
	FilePath string

	// Pos is the position of the type name
	Pos token.Position

	// Kind is the declaration kind
	Kind Kind

	// Derives lists the directives attached to the declaration, without
	// duplicates, in generation order
	Derives []Derive

	// Record is set for KindRecord
	Record *RecordInfo

	// Enum is set for KindEnum
	Enum *EnumInfo

	// Comments contains the declaration's doc comment lines
	Comments []string

	// ASTNode is the declared type expression
	ASTNode ast.Expr
}

// Has reports whether d is attached to the declaration.
func (t *TypeInfo) Has(d Derive) bool {
	for _, x := range t.Derives {
		if x == d {
			return true
		}
	}
	return false
}

// RecordInfo describes a struct or array declaration.
type RecordInfo struct {
	Shape Shape

	// Fields holds named fields in declaration order, or positional fields
	// in index order.
	Fields []*FieldInfo

	// Len is the length of a positional record, or -1 when the array
	// length is not an integer literal. Fields is only populated for
	// positional records when Len is known and at most MaxPositional.
	Len int

	// Elem is the element type of a positional record
	Elem ast.Expr
}

// MaxPositional bounds the number of positions spelled out one by one in
// generated code. Longer arrays are handled with a loop.
const MaxPositional = 64

// FieldInfo holds one field of a record.
type FieldInfo struct {
	// Name is the field name; empty for positional fields
	Name string

	// Index is the zero based position of the field
	Index int

	// ASTType is the field type. It is never inspected.
	ASTType ast.Expr

	// IsEmbedded indicates the field name was taken from its type
	IsEmbedded bool
}

// EnumInfo describes an integer type and the constants declared for it.
type EnumInfo struct {
	// Repr is the declared underlying type as written (e.g. "uint8",
	// "byte"). It is empty when the underlying type is not a fixed-width
	// integer.
	Repr string

	// Underlying is the underlying type expression as written
	Underlying ast.Expr

	// Variants holds the constants of the type in declaration order
	Variants []*VariantInfo
}

// VariantInfo holds one typed constant of an enumeration.
type VariantInfo struct {
	Name string

	// Discriminant is the constant's value expression. For constants relying
	// on implicit repetition it is the inherited expression.
	Discriminant ast.Expr

	// Implicit reports the discriminant was inherited from an earlier line
	Implicit bool

	// Value is the resolved constant value, or nil when type information
	// was not available
	Value constant.Value

	Pos token.Position
}

// PackageInfo holds information about a Go package
type PackageInfo struct {
	// Path is the package import path, as reported by go/build
	Path string

	// Dir is the directory containing the package
	Dir string

	// Name is the package name (e.g., "wire")
	Name string

	// Files contains paths to all non-test .go files in the package
	Files []string
}
