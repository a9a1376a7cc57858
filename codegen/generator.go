package codegen

import (
	"bytes"
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/signadot/derive/debug"
	"golang.org/x/tools/imports"
)

// GeneratedHeader marks files written by derive-gen.
const GeneratedHeader = "// Code generated by derive-gen. DO NOT EDIT."

// Output is the generated file for one package.
type Output struct {
	// Path is where the generated file belongs
	Path string

	// Code is the formatted file content, nil when the package has no
	// annotated types
	Code []byte

	// Types holds the extracted declarations
	Types []*TypeInfo
}

// GeneratePackage extracts the annotated declarations of pkg and renders
// its generated file. Files previously generated by derive-gen are ignored.
//
// When loader is not nil, the package is type-checked to resolve constant
// values so that aliased enum constants collapse into one case. A failure
// to load is logged and generation proceeds without values.
func GeneratePackage(pkg *PackageInfo, config *CodegenConfig, loader *PackageLoader) (*Output, error) {
	out := &Output{Path: config.OutputPath(pkg)}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, filePath := range pkg.Files {
		if sameFile(filePath, out.Path) {
			continue
		}
		file, err := ParseFile(fset, filePath)
		if err != nil {
			return nil, err
		}
		if IsDeriveGenerated(file) {
			continue
		}
		files = append(files, file)
	}

	infos, err := ExtractTypes(fset, files)
	if err != nil {
		return nil, err
	}
	infos = slices.DeleteFunc(infos, func(info *TypeInfo) bool {
		return config.Skip(info.Name)
	})
	if len(infos) == 0 {
		return out, nil
	}
	out.Types = infos

	if loader != nil && slices.ContainsFunc(infos, func(info *TypeInfo) bool { return info.Kind == KindEnum }) {
		tpkg, err := loader.LoadDir(pkg.Dir)
		if err != nil {
			if debug.Load() {
				debug.Logf("constant values unavailable for %s: %v", pkg.Dir, err)
			}
		} else {
			ResolveConstants(infos, tpkg.Types.Scope())
		}
	}

	code, err := GenerateCode(pkg.Name, infos, config)
	if err != nil {
		return nil, err
	}
	out.Code = code
	return out, nil
}

// GenerateCode renders the complete generated file for the given
// declarations of package pkgName. Declarations are emitted sorted by
// name, SwapEndian before the tag converter. Any failure aborts the whole
// file.
func GenerateCode(pkgName string, infos []*TypeInfo, config *CodegenConfig) ([]byte, error) {
	rt := config.Runtime
	if rt.Path == "" {
		rt = DefaultRuntime
	}

	sorted := slices.Clone(infos)
	slices.SortStableFunc(sorted, func(a, b *TypeInfo) int {
		return cmp.Compare(a.Name, b.Name)
	})

	var body strings.Builder
	for _, info := range sorted {
		for _, d := range info.Derives {
			var frag string
			var err error
			switch d {
			case DeriveSwapEndian:
				frag, err = GenerateSwapEndian(info, rt)
			case DeriveTryFrom:
				frag, err = GenerateTryFrom(info, rt)
			default:
				err = declErr(info, d, ErrUnknownDirective)
			}
			if err != nil {
				return nil, err
			}
			body.WriteString("\n")
			body.WriteString(frag)
		}
	}

	var src bytes.Buffer
	src.WriteString(GeneratedHeader + "\n")
	if config.Header != "" {
		fmt.Fprintf(&src, "// %s\n", config.Header)
	}
	fmt.Fprintf(&src, "\npackage %s\n\n", pkgName)
	if rt.Name == path.Base(rt.Path) {
		fmt.Fprintf(&src, "import %q\n", rt.Path)
	} else {
		fmt.Fprintf(&src, "import %s %q\n", rt.Name, rt.Path)
	}
	src.WriteString(body.String())

	formatted, err := imports.Process(pkgName+"_gen.go", src.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w\n%s", err, src.String())
	}
	return formatted, nil
}

// IsDeriveGenerated reports whether file carries the derive-gen header.
func IsDeriveGenerated(file *ast.File) bool {
	for _, cg := range file.Comments {
		if cg.Pos() > file.Package {
			break
		}
		for _, c := range cg.List {
			if c.Text == GeneratedHeader {
				return true
			}
		}
	}
	return false
}

func sameFile(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}

func exprString(expr ast.Expr) string {
	if expr == nil {
		return "nothing"
	}
	return types.ExprString(expr)
}
