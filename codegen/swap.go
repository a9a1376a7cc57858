package codegen

import (
	"fmt"
	"strings"

	"github.com/signadot/derive/debug"
)

// GenerateSwapEndian returns the SwapEndian method for a record.
//
// Every field is replaced by the result of applying rt's SwapEndian to it,
// so nested records and scalars are handled the same way. Named fields are
// keyed by name, positional fields keep their index order, and unit
// records are rebuilt empty.
func GenerateSwapEndian(info *TypeInfo, rt Runtime) (string, error) {
	if info.Kind != KindRecord || info.Record == nil {
		err := fmt.Errorf("%w: %s is not a struct or array type", ErrUnsupportedKind, info.Name)
		if info.Kind == KindEnum {
			err = fmt.Errorf("%w: %s is an integer type; named scalars are swapped by %s.SwapEndian directly",
				ErrUnsupportedKind, info.Name, rt.Name)
		}
		return "", declErr(info, DeriveSwapEndian, err)
	}
	rec := info.Record
	swap := rt.Name + ".SwapEndian"

	var code strings.Builder
	fmt.Fprintf(&code, "// SwapEndian returns v with the byte order of every field reversed.\n")
	fmt.Fprintf(&code, "func (v %s) SwapEndian() %s {\n", info.Name, info.Name)

	switch {
	case rec.Shape == ShapeNamed && len(rec.Fields) > 0:
		fmt.Fprintf(&code, "\treturn %s{\n", info.Name)
		for _, f := range rec.Fields {
			fmt.Fprintf(&code, "\t\t%s: %s(v.%s),\n", f.Name, swap, f.Name)
		}
		code.WriteString("\t}\n")
	case rec.Shape == ShapePositional && rec.Fields == nil && rec.Len != 0:
		fmt.Fprintf(&code, "\tvar out %s\n", info.Name)
		code.WriteString("\tfor i := range v {\n")
		fmt.Fprintf(&code, "\t\tout[i] = %s(v[i])\n", swap)
		code.WriteString("\t}\n")
		code.WriteString("\treturn out\n")
	case rec.Shape == ShapePositional && len(rec.Fields) > 0:
		fmt.Fprintf(&code, "\treturn %s{\n", info.Name)
		for _, f := range rec.Fields {
			fmt.Fprintf(&code, "\t\t%s(v[%d]),\n", swap, f.Index)
		}
		code.WriteString("\t}\n")
	default:
		fmt.Fprintf(&code, "\treturn %s{}\n", info.Name)
	}
	code.WriteString("}\n")

	if debug.Gen() {
		debug.Logf("generated SwapEndian for %s record %s (%d fields)", rec.Shape, info.Name, len(rec.Fields))
	}
	return code.String(), nil
}
