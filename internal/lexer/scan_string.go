package lexer

import "pystyle/internal/token"

// scanString consumes a string literal starting at the optional prefix.
// Handles single and triple quotes; a newline inside a single-quoted string
// or EOF before the closing quote is a tokenization error.
func (lx *Lexer) scanString(prefix string) (token.Token, error) {
	start := lx.cursor.Off
	lx.cursor.Bump(uint32(len(prefix)))

	quote := lx.cursor.Peek()
	triple := lx.cursor.PeekAt(1) == quote && lx.cursor.PeekAt(2) == quote
	if triple {
		lx.cursor.Bump(3)
	} else {
		lx.cursor.Bump(1)
	}

	for {
		if lx.cursor.EOF() {
			return token.Token{}, lx.errorf("unterminated string literal")
		}
		ch := lx.cursor.Peek()

		if ch == '\\' {
			// Escape: the next byte cannot close the string. A raw string
			// cannot end in a backslash, so this is safe for raw forms too.
			if lx.cursor.PeekAt(1) == '\n' {
				lx.line++
			}
			lx.cursor.Bump(2)
			continue
		}

		if ch == '\n' {
			if !triple {
				return token.Token{}, lx.errorf("unterminated string literal")
			}
			lx.line++
			lx.cursor.Bump(1)
			continue
		}

		if ch == quote {
			if !triple {
				lx.cursor.Bump(1)
				break
			}
			if lx.cursor.PeekAt(1) == quote && lx.cursor.PeekAt(2) == quote {
				lx.cursor.Bump(3)
				break
			}
		}
		lx.cursor.Bump(1)
	}

	return lx.make(token.String, start, lx.cursor.Off), nil
}
