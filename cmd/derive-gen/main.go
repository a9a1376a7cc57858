// Command derive-gen generates SwapEndian methods and tag converters for
// Go types annotated with //derive: directives.
//
// It is meant to be run by go generate:
//
//	//go:generate go run github.com/signadot/derive/cmd/derive-gen
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/derive/codegen"
	"github.com/signadot/derive/debug"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("derive-gen").
		WithSynopsis("derive-gen [opts]").
		WithDescription("Generate SwapEndian methods and tag converters for types annotated with //derive:swapendian and //derive:tryfrom.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	OutputFile string `cli:"name=o desc='output file for generated Go code (default: <package>_gen.go)'"`
	Dir        string `cli:"name=dir desc='directory to scan for Go files (default: current directory)'"`
	Recursive  bool   `cli:"name=recursive desc='scan subdirectories recursively'"`
	ConfigFile string `cli:"name=config desc='YAML configuration file'"`
	Check      bool   `cli:"name=check desc='report out of date generated files instead of writing them'"`
	Color      bool   `cli:"name=color desc='colour -check diffs even when output is not a terminal'"`
	Verbose    bool   `cli:"name=v desc='log extraction, generation and package loading to stderr'"`
}

// codegenConfig merges the configuration file, if any, with the options
// given on the command line. Options win.
func (cfg *Config) codegenConfig() (*codegen.CodegenConfig, error) {
	config := codegen.DefaultConfig()
	if cfg.ConfigFile != "" {
		var err error
		config, err = codegen.LoadConfig(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
	}
	if cfg.OutputFile != "" {
		config.OutputFile = cfg.OutputFile
	}
	if cfg.Dir != "" {
		config.Dir = cfg.Dir
	}
	if cfg.Recursive {
		config.Recursive = true
	}
	return config, nil
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: unexpected arguments %v", cli.ErrUsage, args)
	}
	if cfg.Verbose {
		debug.EnableAll()
	}
	config, err := cfg.codegenConfig()
	if err != nil {
		return err
	}

	// Set default directory to current directory if not specified
	dir := config.Dir
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
	}

	packages, err := codegen.DiscoverPackages(dir, config.Recursive)
	if err != nil {
		return fmt.Errorf("failed to discover packages: %w", err)
	}
	if len(packages) == 0 {
		return fmt.Errorf("no Go packages found in %q", dir)
	}

	chk := &checker{out: cc.Out, colored: useColor(cfg, cc.Out)}
	loader := codegen.NewPackageLoader()
	for _, pkg := range packages {
		if debug.Gen() {
			debug.Logf("processing package %s in %s", pkg.Name, pkg.Dir)
		}
		out, err := codegen.GeneratePackage(pkg, config, loader)
		if err != nil {
			return fmt.Errorf("failed to process package %q: %w", pkg.Path, err)
		}
		if out.Code == nil {
			continue
		}
		if cfg.Check {
			if err := chk.check(out); err != nil {
				return err
			}
			continue
		}
		if err := os.WriteFile(out.Path, out.Code, 0644); err != nil {
			return fmt.Errorf("failed to write output file %q: %w", out.Path, err)
		}
	}
	if chk.stale > 0 {
		return fmt.Errorf("%d generated file(s) out of date, run derive-gen", chk.stale)
	}
	return nil
}

func readExisting(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return d, err
}
