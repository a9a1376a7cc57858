// Package derive holds the runtime contracts that code generated by
// derive-gen depends on.
//
// Annotate a type and run the generator through go generate:
//
//	//go:generate derive-gen
//
//	//derive:swapendian
//	type Header struct {
//	    Magic uint32
//	    Count uint16
//	}
//
//	//derive:tryfrom
//	type Kind uint8
//
//	const (
//	    KindData Kind = 0
//	    KindAck  Kind = 2
//	    KindFin  Kind = 5
//	)
//
// The generated file gives Header a SwapEndian method satisfying
// Swapper[Header], and adds KindFromUint8, which returns ErrInvalidTag for
// any raw value other than 0, 2 and 5.
//
// # Related Packages
//
//   - github.com/signadot/derive/codegen - Declaration extraction and code generation
//   - github.com/signadot/derive/cmd/derive-gen - The generator command
package derive
