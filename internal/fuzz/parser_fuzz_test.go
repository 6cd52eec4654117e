package fuzztests

import (
	"testing"

	"pystyle/internal/analyze"
	"pystyle/internal/parser"
	"pystyle/internal/source"
)

func FuzzParseAndCollect(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.py", input))

		module, err := parser.Parse(file)
		if err != nil {
			// Malformed input is skipped, not a crash.
			return
		}
		// The attribute walk must hold up on anything that parsed.
		analyze.Collect(module)
	})
}
