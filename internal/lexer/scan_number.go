package lexer

import "pystyle/internal/token"

// scanNumber consumes an integer or float literal, including 0x/0o/0b forms,
// digit-group underscores, exponents and the imaginary 'j' suffix. The value
// is never interpreted; only the token boundary matters here.
func (lx *Lexer) scanNumber() (token.Token, error) {
	start := lx.cursor.Off
	kind := token.Int

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			lx.cursor.Bump(2)
			if !isBaseDigit(lx.cursor.Peek()) {
				return token.Token{}, lx.errorf("invalid number literal")
			}
			for isBaseDigit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump(1)
			}
			return lx.make(kind, start, lx.cursor.Off), nil
		}
	}

	lx.eatDigits()
	if lx.cursor.Peek() == '.' {
		kind = token.Float
		lx.cursor.Bump(1)
		lx.eatDigits()
	}
	if ch := lx.cursor.Peek(); ch == 'e' || ch == 'E' {
		next := lx.cursor.PeekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(lx.cursor.PeekAt(2))) {
			kind = token.Float
			lx.cursor.Bump(2)
			lx.eatDigits()
		}
	}
	if ch := lx.cursor.Peek(); ch == 'j' || ch == 'J' {
		lx.cursor.Bump(1)
	}
	return lx.make(kind, start, lx.cursor.Off), nil
}

func (lx *Lexer) eatDigits() {
	for isDigit(lx.cursor.Peek()) || (lx.cursor.Peek() == '_' && isDigit(lx.cursor.PeekAt(1))) {
		lx.cursor.Bump(1)
	}
}

func isBaseDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
