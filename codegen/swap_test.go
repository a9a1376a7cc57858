package codegen

import (
	"errors"
	"strings"
	"testing"
)

func singleType(t *testing.T, src string) *TypeInfo {
	t.Helper()
	infos := extract(t, src)
	if len(infos) != 1 {
		t.Fatalf("expected 1 type, got %d", len(infos))
	}
	return infos[0]
}

func TestGenerateSwapEndian_NamedFields(t *testing.T) {
	info := singleType(t, `package test

//derive:swapendian
type Header struct {
	Magic  uint32
	Inner  Nested
	Values [4]uint16
	Nested
}
`)
	code, err := GenerateSwapEndian(info, DefaultRuntime)
	if err != nil {
		t.Fatalf("GenerateSwapEndian failed: %v", err)
	}
	if !strings.Contains(code, "func (v Header) SwapEndian() Header {") {
		t.Errorf("expected SwapEndian method signature, got:\n%s", code)
	}
	for _, want := range []string{
		"Magic: derive.SwapEndian(v.Magic),",
		"Inner: derive.SwapEndian(v.Inner),",
		"Values: derive.SwapEndian(v.Values),",
		"Nested: derive.SwapEndian(v.Nested),",
	} {
		if strings.Count(code, want) != 1 {
			t.Errorf("expected exactly one %q, got:\n%s", want, code)
		}
	}
	if strings.Index(code, "Magic:") > strings.Index(code, "Inner:") {
		t.Errorf("expected declaration order, got:\n%s", code)
	}
}

func TestGenerateSwapEndian_Positional(t *testing.T) {
	info := singleType(t, `package test

//derive:swapendian
type Triple [3]uint32
`)
	code, err := GenerateSwapEndian(info, DefaultRuntime)
	if err != nil {
		t.Fatalf("GenerateSwapEndian failed: %v", err)
	}
	want := "\treturn Triple{\n" +
		"\t\tderive.SwapEndian(v[0]),\n" +
		"\t\tderive.SwapEndian(v[1]),\n" +
		"\t\tderive.SwapEndian(v[2]),\n" +
		"\t}\n"
	if !strings.Contains(code, want) {
		t.Errorf("expected positional literal in index order, got:\n%s", code)
	}
}

func TestGenerateSwapEndian_PositionalLoop(t *testing.T) {
	for _, decl := range []string{"type Block [Size]uint16", "type Block [128]uint16"} {
		info := singleType(t, "package test\n\n//derive:swapendian\n"+decl+"\n")
		code, err := GenerateSwapEndian(info, DefaultRuntime)
		if err != nil {
			t.Fatalf("GenerateSwapEndian failed: %v", err)
		}
		if !strings.Contains(code, "for i := range v {") || !strings.Contains(code, "out[i] = derive.SwapEndian(v[i])") {
			t.Errorf("%s: expected index loop, got:\n%s", decl, code)
		}
	}
}

func TestGenerateSwapEndian_Unit(t *testing.T) {
	for _, decl := range []string{"type Marker struct{}", "type Marker struct{ _ uint32 }", "type Marker [0]uint32"} {
		info := singleType(t, "package test\n\n//derive:swapendian\n"+decl+"\n")
		code, err := GenerateSwapEndian(info, DefaultRuntime)
		if err != nil {
			t.Fatalf("GenerateSwapEndian failed: %v", err)
		}
		if !strings.Contains(code, "\treturn Marker{}\n") {
			t.Errorf("%s: expected empty literal, got:\n%s", decl, code)
		}
		if strings.Contains(code, "derive.SwapEndian") {
			t.Errorf("%s: expected no recursive calls, got:\n%s", decl, code)
		}
	}
}

func TestGenerateSwapEndian_CustomRuntime(t *testing.T) {
	info := singleType(t, `package test

//derive:swapendian
type Pair struct {
	A uint16
	B uint16
}
`)
	code, err := GenerateSwapEndian(info, Runtime{Path: "example.com/proj/endianness", Name: "endianness"})
	if err != nil {
		t.Fatalf("GenerateSwapEndian failed: %v", err)
	}
	if !strings.Contains(code, "A: endianness.SwapEndian(v.A),") {
		t.Errorf("expected runtime qualifier, got:\n%s", code)
	}
}

func TestGenerateSwapEndian_Enum(t *testing.T) {
	info := singleType(t, `package test

//derive:swapendian
type Kind uint8

const KindA Kind = 1
`)
	_, err := GenerateSwapEndian(info, DefaultRuntime)
	if !errors.Is(err, ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	var declErr *DeclError
	if !errors.As(err, &declErr) || declErr.Derive != DeriveSwapEndian {
		t.Errorf("expected DeclError for swapendian, got %v", err)
	}
}
