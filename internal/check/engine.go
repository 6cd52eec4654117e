// Package check implements the line rule engine: every non-blank physical
// line runs through the twelve style checks in fixed code order, consulting
// the attribute map for the name-based rules. Blank lines only feed the
// consecutive-blank-line counter and are never checked themselves.
package check

import (
	"pystyle/internal/analyze"
	"pystyle/internal/diag"
	"pystyle/internal/source"
)

// Engine checks one file. The blank-run counter is the engine's only mutable
// state; construct a fresh engine per file.
type Engine struct {
	attrs    *analyze.Attributes
	blankRun int
}

// New creates an engine over the file's attribute map. The map must be fully
// collected before any line is checked.
func New(attrs *analyze.Attributes) *Engine {
	return &Engine{attrs: attrs}
}

// Run walks the file's physical lines in order and reports every violation.
// Multiple rules may fire on one line; each code fires at most once per line,
// and diagnostics arrive in line order with rule order fixed within a line.
func (e *Engine) Run(file *source.File, reporter diag.Reporter) {
	e.blankRun = 0
	total := file.NumLines()
	for n := uint32(1); n <= total; n++ {
		text := file.Line(n)
		if text == "\n" {
			e.blankRun++
			continue
		}

		ctx := &lineContext{
			text:     text,
			line:     n,
			attrs:    e.attrs,
			blankRun: e.blankRun,
		}
		for _, rl := range ruleTable {
			if msg, fired := rl.check(ctx); fired {
				reporter.Report(rl.code, diag.SevWarning, file.ID, n, msg)
			}
		}
		e.blankRun = 0
	}
}

// lineContext is everything one rule may look at: the raw line (trailing
// newline included), its 1-based number, the file's attribute map, and the
// number of blank lines immediately preceding it.
type lineContext struct {
	text     string
	line     uint32
	attrs    *analyze.Attributes
	blankRun int
}
