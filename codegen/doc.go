// Package codegen generates companion Go code for annotated type
// declarations.
//
// Two derives are supported, attached with doc-comment directives:
//
//   - //derive:swapendian on a struct or array type emits a SwapEndian
//     method reversing the byte order of every field.
//   - //derive:tryfrom on an integer type with typed constants emits a
//     <Type>From<Repr> function converting a raw value to one of the
//     declared constants, or failing with derive.ErrInvalidTag.
//
// The constants of an enumeration are those declared with its type
// (A Kind = 3, including implicit repetition in iota blocks) or as a
// conversion to it (A = Kind(3)). Other constants that merely evaluate to
// the type, such as C = A, are not recognised.
//
// Generated code appears in *_gen.go files, one per package.
//
// # Related Packages
//
//   - github.com/signadot/derive - Runtime contracts used by generated code
//   - github.com/signadot/derive/cmd/derive-gen - The generator command
package codegen
