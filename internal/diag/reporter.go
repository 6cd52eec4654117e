package diag

import "pystyle/internal/source"

// Reporter is the minimal contract for receiving diagnostics from the rule
// engine. Implementations: BagReporter (append to a Bag), NopReporter.
type Reporter interface {
	Report(code Code, sev Severity, file source.FileID, line uint32, msg string)
}

// BagReporter appends every reported diagnostic to Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(code Code, sev Severity, file source.FileID, line uint32, msg string) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(Diagnostic{
		Severity: sev,
		Code:     code,
		File:     file,
		Line:     line,
		Message:  msg,
	})
}

// NopReporter discards everything.
type NopReporter struct{}

func (NopReporter) Report(Code, Severity, source.FileID, uint32, string) {}
