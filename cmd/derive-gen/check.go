package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/signadot/derive/codegen"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// checker compares generated output with the files on disk.
type checker struct {
	out     io.Writer
	colored bool
	stale   int
}

func (c *checker) check(out *codegen.Output) error {
	have, err := readExisting(out.Path)
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", out.Path, err)
	}
	if bytes.Equal(have, out.Code) {
		return nil
	}
	c.stale++
	_, err = io.WriteString(c.out, lineDiff(out.Path, have, out.Code, c.colored))
	return err
}

// lineDiff renders the lines removed from and added to have, as a
// minimal unified-style listing without context lines.
func lineDiff(path string, have, want []byte, colored bool) string {
	del := fmt.Sprint
	add := fmt.Sprint
	if colored {
		red, green := color.New(color.FgRed), color.New(color.FgGreen)
		red.EnableColor()
		green.EnableColor()
		del, add = red.Sprint, green.Sprint
	}

	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(string(have), string(want))
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s (generated)\n", path, path)
	for _, d := range diffs {
		var mark string
		var paint func(...any) string
		switch d.Type {
		case diffpatch.DiffDelete:
			mark, paint = "-", del
		case diffpatch.DiffInsert:
			mark, paint = "+", add
		default:
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			buf.WriteString(paint(mark + line))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// useColor reports whether diffs written to w are coloured: always with
// -color, otherwise only on a terminal.
func useColor(cfg *Config, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
