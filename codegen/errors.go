package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

var (
	// ErrUnsupportedKind is returned for declarations a derive cannot be
	// attached to.
	ErrUnsupportedKind = errors.New("unsupported declaration kind")

	// ErrMissingDiscriminant is returned when an enum constant has no
	// value expression.
	ErrMissingDiscriminant = errors.New("every enum variant must declare a discriminant")

	// ErrMissingRepr is returned when an enumeration's underlying type is
	// not a fixed-width integer.
	ErrMissingRepr = errors.New("enumeration must declare a fixed-width integer representation")

	// ErrEmptyEnum is returned for enumerations without constants.
	ErrEmptyEnum = errors.New("at least one enum variant must exist")

	// ErrUnknownDirective is returned for malformed //derive: directives.
	ErrUnknownDirective = errors.New("unknown derive directive")
)

// DeclError reports a failure to extract or generate code for one type
// declaration.
type DeclError struct {
	Type   string
	Pos    token.Position
	Derive Derive // empty during extraction
	Err    error
}

func (e *DeclError) Error() string {
	var b strings.Builder
	if e.Pos.IsValid() {
		b.WriteString(e.Pos.String())
		b.WriteString(": ")
	}
	if e.Derive != "" {
		fmt.Fprintf(&b, "derive %s: ", e.Derive)
	}
	fmt.Fprintf(&b, "type %s: %v", e.Type, e.Err)
	return b.String()
}

func (e *DeclError) Unwrap() error {
	return e.Err
}

func declErr(info *TypeInfo, d Derive, err error) error {
	return &DeclError{Type: info.Name, Pos: info.Pos, Derive: d, Err: err}
}
