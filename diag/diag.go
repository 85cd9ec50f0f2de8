// Package diag renders tokenize and expansion failures as
// caret-annotated source snippets.
package diag

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/jagprog5/language-expression/eval"
	"github.com/jagprog5/language-expression/token"
)

type renderOpts struct {
	color bool
}

type RenderOpt func(*renderOpts)

// RenderColor turns on ANSI color for the message line and the caret.
func RenderColor() RenderOpt {
	return func(o *renderOpts) { o.color = true }
}

// Render formats err against the source it was produced from:
//
//	unclosed function at offset 0 (line=1, col=1)
//	  1 | {hi,ab
//	    | ^
//
// It recognizes *token.Diagnostic, *token.DepthError, and
// *eval.CallError; any other error comes back as err.Error() unchanged.
// Lines and columns are 1-based; an offset one past the input puts the
// caret past the line end.
func Render(src []byte, err error, opts ...RenderOpt) string {
	o := &renderOpts{}
	for _, opt := range opts {
		opt(o)
	}

	off, ok := offsetOf(err)
	if !ok {
		return err.Error()
	}
	line, col := LineCol(src, off)

	header := fmt.Sprintf("%s (line=%d, col=%d)", err.Error(), line, col)
	caret := "^"
	if o.color {
		header = color.RedString("%s", header)
		caret = color.RedString("^")
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "%3d | %s\n", line, lineAt(src, line))
	fmt.Fprintf(&b, "    | %s%s\n", strings.Repeat(" ", col-1), caret)
	return b.String()
}

// LineCol converts a byte offset into 1-based line and column. Offsets
// past the input clamp to one past its last unit.
func LineCol(src []byte, off int) (line, col int) {
	if off > len(src) {
		off = len(src)
	}
	line, col = 1, 1
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func offsetOf(err error) (int, bool) {
	var d *token.Diagnostic
	if errors.As(err, &d) {
		return d.Offset, true
	}
	var de *token.DepthError
	if errors.As(err, &de) {
		return de.Offset, true
	}
	var ce *eval.CallError
	if errors.As(err, &ce) {
		return ce.Offset, true
	}
	return 0, false
}

func lineAt(src []byte, line int) string {
	lines := bytes.Split(src, []byte{'\n'})
	if line < 1 || line > len(lines) {
		return ""
	}
	return string(lines[line-1])
}
