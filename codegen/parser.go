package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"

	"github.com/signadot/derive/debug"
)

// ParseFile parses a Go source file and returns its AST.
func ParseFile(fset *token.FileSet, filename string) (*ast.File, error) {
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %q: %w", filename, err)
	}
	return file, nil
}

// fixedWidth maps the fixed-width integer types to the suffix used in
// generated converter names.
var fixedWidth = map[string]string{
	"int8":   "Int8",
	"int16":  "Int16",
	"int32":  "Int32",
	"int64":  "Int64",
	"uint8":  "Uint8",
	"uint16": "Uint16",
	"uint32": "Uint32",
	"uint64": "Uint64",
	"byte":   "Uint8",
	"rune":   "Int32",
}

// ExtractTypes extracts all annotated type declarations from the files of
// one package, in source order. Constants are matched to enumerations
// across all files.
//
// Extraction fails on the first annotated declaration that cannot carry a
// derive, and on the first constant of an annotated enumeration without a
// discriminant.
func ExtractTypes(fset *token.FileSet, files []*ast.File) ([]*TypeInfo, error) {
	var infos []*TypeInfo
	enums := map[string]*TypeInfo{}

	for _, file := range files {
		filePath := fset.Position(file.Package).Filename
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				doc := typeSpec.Doc
				if doc == nil && genDecl.Lparen == token.NoPos {
					doc = genDecl.Doc
				}
				ds, err := ExtractDirectives(doc)
				if err != nil {
					return nil, &DeclError{Type: typeSpec.Name.Name, Pos: fset.Position(typeSpec.Name.Pos()), Err: err}
				}
				if len(ds) == 0 {
					continue
				}
				info := &TypeInfo{
					Name:     typeSpec.Name.Name,
					Package:  file.Name.Name,
					FilePath: filePath,
					Pos:      fset.Position(typeSpec.Name.Pos()),
					Derives:  ds,
					Comments: ExtractComments(doc),
					ASTNode:  typeSpec.Type,
				}
				if err := classify(info, typeSpec); err != nil {
					return nil, declErr(info, "", err)
				}
				if info.Kind == KindEnum {
					enums[info.Name] = info
				}
				if debug.Extract() {
					debug.Logf("extracted %s %s (%v) at %s", info.Kind, info.Name, info.Derives, info.Pos)
				}
				infos = append(infos, info)
			}
		}
	}

	if len(enums) == 0 {
		return infos, nil
	}
	for _, file := range files {
		if err := extractVariants(fset, file, enums); err != nil {
			return nil, err
		}
	}
	return infos, nil
}

// classify fills in the kind specific part of info.
func classify(info *TypeInfo, typeSpec *ast.TypeSpec) error {
	if typeSpec.Assign.IsValid() {
		return fmt.Errorf("%w: type alias", ErrUnsupportedKind)
	}
	if typeSpec.TypeParams != nil && len(typeSpec.TypeParams.List) > 0 {
		return fmt.Errorf("%w: generic type", ErrUnsupportedKind)
	}
	switch x := ast.Unparen(typeSpec.Type).(type) {
	case *ast.StructType:
		rec, err := extractFields(x)
		if err != nil {
			return err
		}
		info.Kind = KindRecord
		info.Record = rec
	case *ast.ArrayType:
		if x.Len == nil {
			return fmt.Errorf("%w: slice", ErrUnsupportedKind)
		}
		info.Kind = KindRecord
		info.Record = extractPositions(x)
	case *ast.Ident:
		info.Kind = KindEnum
		info.Enum = &EnumInfo{Underlying: x}
		if _, ok := fixedWidth[x.Name]; ok {
			info.Enum.Repr = x.Name
		}
	case *ast.SelectorExpr:
		info.Kind = KindEnum
		info.Enum = &EnumInfo{Underlying: x}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedKind, describeExpr(ast.Unparen(typeSpec.Type)))
	}
	return nil
}

func describeExpr(expr ast.Expr) string {
	switch expr.(type) {
	case *ast.InterfaceType:
		return "interface"
	case *ast.MapType:
		return "map"
	case *ast.FuncType:
		return "func"
	case *ast.ChanType:
		return "chan"
	case *ast.StarExpr:
		return "pointer"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// extractFields extracts the fields of a struct type in declaration order.
func extractFields(structType *ast.StructType) (*RecordInfo, error) {
	rec := &RecordInfo{Shape: ShapeUnit, Len: -1}
	if structType.Fields == nil || len(structType.Fields.List) == 0 {
		return rec, nil
	}
	rec.Shape = ShapeNamed
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			name, err := getEmbeddedFieldName(field.Type)
			if err != nil {
				return nil, fmt.Errorf("failed to get embedded field name: %w", err)
			}
			rec.Fields = append(rec.Fields, &FieldInfo{
				Name:       name,
				Index:      len(rec.Fields),
				ASTType:    field.Type,
				IsEmbedded: true,
			})
			continue
		}
		for _, name := range field.Names {
			// Blank fields cannot be read or keyed in a composite literal.
			if name.Name == "_" {
				continue
			}
			rec.Fields = append(rec.Fields, &FieldInfo{
				Name:    name.Name,
				Index:   len(rec.Fields),
				ASTType: field.Type,
			})
		}
	}
	return rec, nil
}

// extractPositions describes an array type as a positional record.
func extractPositions(arrayType *ast.ArrayType) *RecordInfo {
	rec := &RecordInfo{Shape: ShapePositional, Len: -1, Elem: arrayType.Elt}
	lit, ok := arrayType.Len.(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return rec
	}
	n, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil || n < 0 {
		return rec
	}
	rec.Len = int(n)
	if rec.Len > MaxPositional {
		return rec
	}
	for i := range rec.Len {
		rec.Fields = append(rec.Fields, &FieldInfo{Index: i, ASTType: arrayType.Elt})
	}
	return rec
}

// extractVariants appends the constants declared in file for the given
// enumerations.
func extractVariants(fset *token.FileSet, file *ast.File, enums map[string]*TypeInfo) error {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.CONST {
			continue
		}
		// Implicit repetition carries the last type and expression list
		// forward within one const declaration.
		var lastType ast.Expr
		var lastValues []ast.Expr
		for _, spec := range genDecl.Specs {
			valueSpec, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			typ, values, implicit := valueSpec.Type, valueSpec.Values, false
			if typ == nil && len(values) == 0 {
				typ, values, implicit = lastType, lastValues, true
			} else {
				lastType, lastValues = typ, values
			}
			for i, name := range valueSpec.Names {
				if name.Name == "_" {
					continue
				}
				var value ast.Expr
				if i < len(values) {
					value = values[i]
				}
				info := enumOf(typ, value, enums)
				if info == nil {
					continue
				}
				pos := fset.Position(name.Pos())
				if value == nil {
					return &DeclError{
						Type: info.Name,
						Pos:  pos,
						Err:  fmt.Errorf("%w: constant %s has no value", ErrMissingDiscriminant, name.Name),
					}
				}
				v := &VariantInfo{
					Name:         name.Name,
					Discriminant: value,
					Implicit:     implicit,
					Pos:          pos,
				}
				info.Enum.Variants = append(info.Enum.Variants, v)
				if debug.Extract() {
					debug.Logf("variant %s.%s at %s (implicit=%t)", info.Name, v.Name, v.Pos, v.Implicit)
				}
			}
		}
	}
	return nil
}

// enumOf returns the enumeration a constant belongs to: its declared type,
// or, for an untyped constant, the type its value is converted to as in
// A = Kind(3).
func enumOf(typ, value ast.Expr, enums map[string]*TypeInfo) *TypeInfo {
	if typ == nil {
		call, ok := value.(*ast.CallExpr)
		if !ok || len(call.Args) != 1 || call.Ellipsis.IsValid() {
			return nil
		}
		typ = call.Fun
	}
	ident, ok := ast.Unparen(typ).(*ast.Ident)
	if !ok {
		return nil
	}
	return enums[ident.Name]
}

// ExtractComments returns the text lines of a doc comment, directives
// excluded.
func ExtractComments(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}
	var comments []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			comments = append(comments, line)
		}
	}
	return comments
}

// getEmbeddedFieldName extracts the field name from an embedded field type.
func getEmbeddedFieldName(expr ast.Expr) (string, error) {
	switch x := expr.(type) {
	case *ast.Ident:
		return x.Name, nil
	case *ast.SelectorExpr:
		return x.Sel.Name, nil
	case *ast.StarExpr:
		return getEmbeddedFieldName(x.X)
	case *ast.IndexExpr:
		return getEmbeddedFieldName(x.X)
	case *ast.IndexListExpr:
		return getEmbeddedFieldName(x.X)
	default:
		return "", fmt.Errorf("unsupported embedded field type: %T", expr)
	}
}
