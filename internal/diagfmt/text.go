// Package diagfmt renders diagnostics for the CLI. The text form is the
// tool's primary output contract; JSON is a convenience for scripting.
package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pystyle/internal/diag"
	"pystyle/internal/source"
)

// TextOpts controls plain-text rendering.
type TextOpts struct {
	// Color highlights the rule code when enabled.
	Color bool
}

var codeColor = color.New(color.FgYellow, color.Bold)

// Text writes one line per diagnostic, in bag order:
//
//	<file>: Line <n>: <CODE> <message>
func Text(w io.Writer, bag *diag.Bag, fileSet *source.FileSet, opts TextOpts) {
	for _, d := range bag.Items() {
		file := fileSet.Get(d.File)
		code := d.Code.ID()
		if opts.Color {
			code = codeColor.Sprint(code)
		}
		fmt.Fprintf(w, "%s: Line %d: %s %s\n", file.Path, d.Line, code, d.Message)
	}
}
