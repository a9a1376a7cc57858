package codegen

import (
	"fmt"
	"go/ast"
	"strings"
)

const directivePrefix = "//derive:"

// ExtractDirectives returns the derives named by //derive: lines in a doc
// comment, in generation order. Several derives may share a line
// (//derive:swapendian,tryfrom) or use one line each.
func ExtractDirectives(doc *ast.CommentGroup) ([]Derive, error) {
	if doc == nil {
		return nil, nil
	}
	seen := map[Derive]bool{}
	found := false
	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, directivePrefix) {
			continue
		}
		found = true
		content := strings.TrimSpace(strings.TrimPrefix(c.Text, directivePrefix))
		if content == "" {
			return nil, fmt.Errorf("%w: empty %s line", ErrUnknownDirective, strings.TrimSuffix(directivePrefix, ":"))
		}
		args, err := ParseDirectiveArgs(content)
		if err != nil {
			return nil, err
		}
		for k, v := range args {
			d := Derive(k)
			if !isDerive(d) {
				return nil, fmt.Errorf("%w %q", ErrUnknownDirective, k)
			}
			if v != "" {
				return nil, fmt.Errorf("%w: %s takes no value, got %q", ErrUnknownDirective, k, v)
			}
			seen[d] = true
		}
	}
	if !found {
		return nil, nil
	}
	var res []Derive
	for _, d := range derives {
		if seen[d] {
			res = append(res, d)
		}
	}
	return res, nil
}

func isDerive(d Derive) bool {
	for _, x := range derives {
		if x == d {
			return true
		}
	}
	return false
}

// ParseDirectiveArgs parses the comma separated content of a directive into
// a map. Bare words map to "", key=value pairs to their value. Values may be
// double quoted to protect commas and spaces.
func ParseDirectiveArgs(content string) (map[string]string, error) {
	result := make(map[string]string)

	var key, value strings.Builder
	inValue := false
	inQuote := false
	quoted := false

	flush := func() error {
		k := strings.TrimSpace(key.String())
		v := value.String()
		if !quoted {
			v = strings.TrimSpace(v)
		}
		if k == "" {
			if inValue {
				return fmt.Errorf("%w: missing name before %q", ErrUnknownDirective, "="+v)
			}
			return nil
		}
		result[k] = v
		key.Reset()
		value.Reset()
		inValue = false
		quoted = false
		return nil
	}

	for _, r := range strings.TrimSpace(content) {
		switch {
		case inQuote:
			if r == '"' {
				inQuote = false
				continue
			}
			value.WriteRune(r)
		case r == ',':
			if err := flush(); err != nil {
				return nil, err
			}
		case !inValue && r == '=':
			inValue = true
		case inValue && r == '"' && strings.TrimSpace(value.String()) == "":
			value.Reset()
			inQuote = true
			quoted = true
		case inValue:
			value.WriteRune(r)
		default:
			key.WriteRune(r)
		}
	}
	if inQuote {
		return nil, fmt.Errorf("%w: unterminated quote in %q", ErrUnknownDirective, content)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return result, nil
}
