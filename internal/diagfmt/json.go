package diagfmt

import (
	"encoding/json"
	"io"

	"pystyle/internal/diag"
	"pystyle/internal/source"
)

// JSONDiagnostic is the wire form of one diagnostic.
type JSONDiagnostic struct {
	Path     string `json:"path"`
	Line     uint32 `json:"line"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// JSON writes the bag as an indented JSON array, preserving bag order.
func JSON(w io.Writer, bag *diag.Bag, fileSet *source.FileSet) error {
	out := make([]JSONDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		file := fileSet.Get(d.File)
		out = append(out, JSONDiagnostic{
			Path:     file.Path,
			Line:     d.Line,
			Code:     d.Code.ID(),
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
