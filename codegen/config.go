package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Runtime identifies the package providing the contracts generated code
// calls into: SwapEndian and ErrInvalidTag.
type Runtime struct {
	// Path is the import path of the runtime package
	Path string `yaml:"path"`

	// Name is the package name used to qualify references
	Name string `yaml:"name"`
}

// DefaultRuntime is the runtime package shipped with derive.
var DefaultRuntime = Runtime{Path: "github.com/signadot/derive", Name: "derive"}

// CodegenConfig holds configuration for code generation
type CodegenConfig struct {
	// OutputFile is the output file for generated Go code. A relative name
	// is placed in the package directory; "{package}" is replaced by the
	// package name. Default: {package}_gen.go
	OutputFile string `yaml:"output"`

	// Dir is the directory to scan for Go files (default: current directory)
	Dir string `yaml:"dir"`

	// Recursive indicates whether to scan subdirectories recursively
	Recursive bool `yaml:"recursive"`

	// Runtime is the package generated code depends on
	Runtime Runtime `yaml:"runtime"`

	// SkipTypes lists annotated types to leave alone
	SkipTypes []string `yaml:"skipTypes"`

	// Header is an extra comment line placed under the generated-code
	// header
	Header string `yaml:"header"`
}

// DefaultOutputFile is the output file name used when none is configured.
const DefaultOutputFile = "{package}_gen.go"

// DefaultConfig returns a configuration with every default filled in.
func DefaultConfig() *CodegenConfig {
	cfg := &CodegenConfig{}
	cfg.setDefaults()
	return cfg
}

func (c *CodegenConfig) setDefaults() {
	if c.OutputFile == "" {
		c.OutputFile = DefaultOutputFile
	}
	if c.Runtime.Path == "" {
		c.Runtime.Path = DefaultRuntime.Path
	}
	if c.Runtime.Name == "" {
		name := path.Base(c.Runtime.Path)
		name = strings.TrimPrefix(name, "go-")
		c.Runtime.Name = strings.TrimSuffix(name, ".go")
	}
}

// LoadConfig reads a YAML configuration file. Unknown keys are an error.
func LoadConfig(filename string) (*CodegenConfig, error) {
	d, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", filename, err)
	}
	cfg, err := ParseConfig(d)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", filename, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML configuration document.
func ParseConfig(d []byte) (*CodegenConfig, error) {
	cfg := &CodegenConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(d))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.setDefaults()
	if !token.IsIdentifier(cfg.Runtime.Name) {
		return nil, fmt.Errorf("runtime name %q is not a package name", cfg.Runtime.Name)
	}
	return cfg, nil
}

// OutputPath returns the path of the generated file for pkg.
func (c *CodegenConfig) OutputPath(pkg *PackageInfo) string {
	out := c.OutputFile
	if out == "" {
		out = DefaultOutputFile
	}
	out = strings.ReplaceAll(out, "{package}", pkg.Name)
	if !filepath.IsAbs(out) && filepath.Dir(out) == "." {
		out = filepath.Join(pkg.Dir, out)
	}
	return out
}

// Skip reports whether the named type is excluded by SkipTypes.
func (c *CodegenConfig) Skip(name string) bool {
	for _, s := range c.SkipTypes {
		if s == name {
			return true
		}
	}
	return false
}
