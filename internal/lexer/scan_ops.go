package lexer

import "pystyle/internal/token"

// Longest-match operator tables. Three-byte forms first.
var ops3 = map[string]token.Kind{
	"**=": token.AugAssign,
	"//=": token.AugAssign,
	">>=": token.AugAssign,
	"<<=": token.AugAssign,
	"...": token.Op,
}

var ops2 = map[string]token.Kind{
	"+=": token.AugAssign,
	"-=": token.AugAssign,
	"*=": token.AugAssign,
	"/=": token.AugAssign,
	"%=": token.AugAssign,
	"&=": token.AugAssign,
	"|=": token.AugAssign,
	"^=": token.AugAssign,
	"@=": token.AugAssign,
	"**": token.Op,
	"//": token.Op,
	"<<": token.Op,
	">>": token.Op,
	"==": token.Op,
	"!=": token.Op,
	"<=": token.Op,
	">=": token.Op,
	"->": token.Arrow,
	":=": token.Walrus,
}

var ops1 = map[byte]token.Kind{
	'=': token.Assign,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
	'[': token.LBracket,
	']': token.RBracket,
	'{': token.LBrace,
	'}': token.RBrace,
	'+': token.Op,
	'-': token.Op,
	'*': token.Op,
	'/': token.Op,
	'%': token.Op,
	'&': token.Op,
	'|': token.Op,
	'^': token.Op,
	'~': token.Op,
	'<': token.Op,
	'>': token.Op,
	'@': token.Op,
}

// scanOperatorOrPunct consumes one operator or punctuation token, tracking
// bracket depth for implicit line joining.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, error) {
	start := lx.cursor.Off

	b0 := lx.cursor.Peek()
	b1 := lx.cursor.PeekAt(1)
	b2 := lx.cursor.PeekAt(2)

	if kind, ok := ops3[string([]byte{b0, b1, b2})]; ok {
		lx.cursor.Bump(3)
		return lx.make(kind, start, lx.cursor.Off), nil
	}
	if kind, ok := ops2[string([]byte{b0, b1})]; ok {
		lx.cursor.Bump(2)
		return lx.make(kind, start, lx.cursor.Off), nil
	}
	kind, ok := ops1[b0]
	if !ok {
		return token.Token{}, lx.errorf("unexpected character %q", b0)
	}
	lx.cursor.Bump(1)

	tok := lx.make(kind, start, lx.cursor.Off)
	if kind.OpensBracket() {
		lx.depth++
	}
	if kind.ClosesBracket() {
		if lx.depth == 0 {
			return token.Token{}, lx.errorf("unmatched %q", b0)
		}
		lx.depth--
	}
	return tok, nil
}
