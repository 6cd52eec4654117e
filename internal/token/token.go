package token

import (
	"fmt"

	"pystyle/internal/source"
)

// Token is one lexical unit of a Python source file.
// Line is the 1-based physical line the token starts on; synthetic tokens
// (Indent/Dedent/Newline/EOF) carry the line they were emitted at.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
	Line uint32
}

func (t Token) String() string {
	if t.Text == "" {
		return fmt.Sprintf("%s@%d", t.Kind, t.Line)
	}
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Line)
}
