package lexer

import (
	"strings"

	"pystyle/internal/token"
)

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// scanIdentOrKeyword consumes an identifier and classifies it: keyword,
// string prefix (r/b/u/f and combinations directly followed by a quote), or
// plain identifier. Bytes >= 0x80 are accepted as identifier characters; the
// naming rules downstream are ASCII-pattern checks either way.
func (lx *Lexer) scanIdentOrKeyword() (token.Token, error) {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump(1)
	}
	text := lx.cursor.Slice(start, lx.cursor.Off)

	if isStringPrefix(text) && (lx.cursor.Peek() == '\'' || lx.cursor.Peek() == '"') {
		lx.cursor.Off = start
		return lx.scanString(text)
	}

	kind := token.LookupKeyword(text)
	tok := lx.make(kind, start, lx.cursor.Off)
	return tok, nil
}

func isStringPrefix(text string) bool {
	if len(text) == 0 || len(text) > 2 {
		return false
	}
	switch strings.ToLower(text) {
	case "r", "b", "u", "f", "rb", "br", "rf", "fr":
		return true
	default:
		return false
	}
}
