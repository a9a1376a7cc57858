package codegen

import (
	"fmt"
	"go/types"
	"sync"

	"github.com/signadot/derive/debug"
	"golang.org/x/tools/go/packages"
)

// PackageLoader loads and caches type-checked Go packages.
type PackageLoader struct {
	cache map[string]*packages.Package
	mu    sync.RWMutex
}

// NewPackageLoader creates a new PackageLoader.
func NewPackageLoader() *PackageLoader {
	return &PackageLoader{
		cache: make(map[string]*packages.Package),
	}
}

// LoadDir loads the package in dir.
func (l *PackageLoader) LoadDir(dir string) (*packages.Package, error) {
	l.mu.RLock()
	if pkg, ok := l.cache[dir]; ok {
		l.mu.RUnlock()
		return pkg, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Check again in case it was loaded while we were waiting for the lock
	if pkg, ok := l.cache[dir]; ok {
		return pkg, nil
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load package in %q: %w", dir, err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no package found in %q", dir)
	}

	pkg := pkgs[0]
	if pkg.Types == nil {
		return nil, fmt.Errorf("package in %q has no type information", dir)
	}
	// Type errors are expected while a stale generated file is still in
	// place; constants stay resolvable.
	if len(pkg.Errors) > 0 && debug.Load() {
		debug.Logf("loading %s: %d errors, first: %v", dir, len(pkg.Errors), pkg.Errors[0])
	}

	l.cache[dir] = pkg
	return pkg, nil
}

// ResolveConstants records the value of every enumeration constant found
// in scope. Constants missing from scope keep a nil Value.
func ResolveConstants(infos []*TypeInfo, scope *types.Scope) {
	for _, info := range infos {
		if info.Kind != KindEnum {
			continue
		}
		for _, v := range info.Enum.Variants {
			c, ok := scope.Lookup(v.Name).(*types.Const)
			if !ok {
				continue
			}
			v.Value = c.Val()
			if debug.Load() {
				debug.Logf("resolved %s.%s = %s", info.Name, v.Name, v.Value)
			}
		}
	}
}
