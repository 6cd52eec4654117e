package diag

import (
	"pystyle/internal/source"
)

// Diagnostic is one reported style violation. Immutable once created;
// diagnostics are never merged or deduplicated.
type Diagnostic struct {
	Severity Severity
	Code     Code
	File     source.FileID
	Line     uint32 // 1-based physical line
	Message  string
}
