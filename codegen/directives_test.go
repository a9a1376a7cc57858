package codegen

import (
	"errors"
	"go/ast"
	"reflect"
	"testing"
)

func TestParseDirectiveArgs(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    map[string]string
		wantErr bool
	}{
		{
			name:    "Empty",
			content: "",
			want:    map[string]string{},
		},
		{
			name:    "Single flag",
			content: "swapendian",
			want:    map[string]string{"swapendian": ""},
		},
		{
			name:    "Multiple flags",
			content: "swapendian,tryfrom",
			want:    map[string]string{"swapendian": "", "tryfrom": ""},
		},
		{
			name:    "Spaces around flags",
			content: " swapendian , tryfrom ",
			want:    map[string]string{"swapendian": "", "tryfrom": ""},
		},
		{
			name:    "Key-value",
			content: "tryfrom=x",
			want:    map[string]string{"tryfrom": "x"},
		},
		{
			name:    "Quoted value",
			content: `note="a, b",swapendian`,
			want:    map[string]string{"note": "a, b", "swapendian": ""},
		},
		{
			name:    "Empty entries",
			content: "swapendian,,",
			want:    map[string]string{"swapendian": ""},
		},
		{
			name:    "Unterminated quote",
			content: `note="open`,
			wantErr: true,
		},
		{
			name:    "Missing key",
			content: "=x",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirectiveArgs(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDirectiveArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDirectiveArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func commentGroup(lines ...string) *ast.CommentGroup {
	cg := &ast.CommentGroup{}
	for _, l := range lines {
		cg.List = append(cg.List, &ast.Comment{Text: l})
	}
	return cg
}

func TestExtractDirectives(t *testing.T) {
	tests := []struct {
		name    string
		doc     *ast.CommentGroup
		want    []Derive
		wantErr error
	}{
		{
			name: "No doc",
		},
		{
			name: "No directive",
			doc:  commentGroup("// Header is a header."),
		},
		{
			name: "Single",
			doc:  commentGroup("// Header is a header.", "//", "//derive:swapendian"),
			want: []Derive{DeriveSwapEndian},
		},
		{
			name: "Combined in generation order",
			doc:  commentGroup("//derive:tryfrom,swapendian"),
			want: []Derive{DeriveSwapEndian, DeriveTryFrom},
		},
		{
			name: "Separate lines with duplicates",
			doc:  commentGroup("//derive:tryfrom", "//derive:swapendian", "//derive:tryfrom"),
			want: []Derive{DeriveSwapEndian, DeriveTryFrom},
		},
		{
			name: "Spaced comment is not a directive",
			doc:  commentGroup("// derive:swapendian"),
		},
		{
			name:    "Unknown",
			doc:     commentGroup("//derive:stringer"),
			wantErr: ErrUnknownDirective,
		},
		{
			name:    "Value given",
			doc:     commentGroup("//derive:tryfrom=u32"),
			wantErr: ErrUnknownDirective,
		},
		{
			name:    "Empty",
			doc:     commentGroup("//derive:"),
			wantErr: ErrUnknownDirective,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDirectives(tt.doc)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
