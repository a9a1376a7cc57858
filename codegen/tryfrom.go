package codegen

import (
	"fmt"
	"go/constant"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/signadot/derive/debug"
)

// TryFromName returns the name of the converter generated for an
// enumeration, e.g. KindFromUint8 for a uint8 based Kind.
func TryFromName(info *TypeInfo) string {
	return info.Name + "From" + fixedWidth[info.Enum.Repr]
}

// GenerateTryFrom returns a function converting a raw integer of the
// enumeration's declared representation to the enumeration.
//
// The raw value is accepted when it equals any declared constant and is
// then converted directly; the membership check always immediately
// precedes the conversion. Anything else yields rt's ErrInvalidTag.
func GenerateTryFrom(info *TypeInfo, rt Runtime) (string, error) {
	if info.Kind != KindEnum || info.Enum == nil {
		return "", declErr(info, DeriveTryFrom, fmt.Errorf("%w: must be used on an integer type, %s is a %s",
			ErrUnsupportedKind, info.Name, info.Kind))
	}
	enum := info.Enum
	if enum.Repr == "" {
		return "", declErr(info, DeriveTryFrom, fmt.Errorf("%w, got %s", ErrMissingRepr, exprString(enum.Underlying)))
	}
	variants := distinctVariants(info)
	if len(variants) == 0 {
		return "", declErr(info, DeriveTryFrom, ErrEmptyEnum)
	}

	cases := make([]string, len(variants))
	for i, v := range variants {
		cases[i] = fmt.Sprintf("%s(%s)", enum.Repr, v.Name)
	}
	name := TryFromName(info)
	if !isExported(info.Name) {
		name = lowerFirst(name)
	}

	param := paramName(info, rt)

	var code strings.Builder
	fmt.Fprintf(&code, "// %s converts %s to a %s. It returns %s.ErrInvalidTag when %s\n", name, param, info.Name, rt.Name, param)
	fmt.Fprintf(&code, "// is not one of the declared %s values.\n", info.Name)
	fmt.Fprintf(&code, "func %s(%s %s) (%s, error) {\n", name, param, enum.Repr, info.Name)
	fmt.Fprintf(&code, "\tswitch %s {\n", param)
	fmt.Fprintf(&code, "\tcase %s:\n", strings.Join(cases, ", "))
	fmt.Fprintf(&code, "\t\treturn %s(%s), nil\n", info.Name, param)
	code.WriteString("\t}\n")
	fmt.Fprintf(&code, "\treturn 0, %s.ErrInvalidTag\n", rt.Name)
	code.WriteString("}\n")

	if debug.Gen() {
		debug.Logf("generated %s over %d of %d constants", name, len(variants), len(enum.Variants))
	}
	return code.String(), nil
}

// paramName returns the name of the converter's parameter. It must not
// shadow a constant, the enumeration, its representation or the runtime
// package inside the converter body.
func paramName(info *TypeInfo, rt Runtime) string {
	taken := map[string]bool{info.Name: true, info.Enum.Repr: true, rt.Name: true}
	for _, v := range info.Enum.Variants {
		taken[v.Name] = true
	}
	name := "raw"
	for i := 0; taken[name]; i++ {
		name = "raw" + strconv.Itoa(i)
	}
	return name
}

// distinctVariants drops constants whose resolved value equals the value
// of an earlier constant, so aliases do not produce duplicate cases.
// Constants without a resolved value are always kept.
func distinctVariants(info *TypeInfo) []*VariantInfo {
	var res []*VariantInfo
	var seen []constant.Value
outer:
	for _, v := range info.Enum.Variants {
		if v.Value != nil {
			for _, s := range seen {
				if constant.Compare(s, token.EQL, v.Value) {
					if debug.Gen() {
						debug.Logf("%s.%s aliases value %s, skipped", info.Name, v.Name, v.Value)
					}
					continue outer
				}
			}
			seen = append(seen, v.Value)
		}
		res = append(res, v)
	}
	return res
}

func isExported(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
