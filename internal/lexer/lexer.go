package lexer

import (
	"fmt"

	"pystyle/internal/source"
	"pystyle/internal/token"
)

// Error is a tokenization failure. Any Error aborts analysis of the whole
// file; the lexer never produces diagnostics.
type Error struct {
	Path string
	Line uint32
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Lexer produces logical-line tokens for a Python source file: identifiers,
// keywords, literals and operators, with Newline/Indent/Dedent synthesized
// the way Python's tokenizer does. Physical lines continue inside open
// brackets and after a trailing backslash.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	line    uint32         // current physical line, 1-based
	indents []uint32       // indentation stack, always starts with 0
	pending []token.Token  // queued synthetic tokens (dedents, eof)
	depth   int            // open bracket nesting
	atStart bool           // positioned at the start of a logical line
	eof     bool
}

// New creates a lexer over file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		line:    1,
		indents: []uint32{0},
		atStart: true,
	}
}

// Scan tokenizes the whole file.
func Scan(file *source.File) ([]token.Token, error) {
	lx := New(file)
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, nil
		}
	}
}

// Next returns the next token. After the first EOF it keeps returning EOF.
func (lx *Lexer) Next() (token.Token, error) {
	if len(lx.pending) > 0 {
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		return tok, nil
	}
	if lx.eof {
		return lx.make(token.EOF, lx.cursor.Off, lx.cursor.Off), nil
	}

	if lx.atStart && lx.depth == 0 {
		if tok, emitted, err := lx.handleIndentation(); err != nil {
			return token.Token{}, err
		} else if emitted {
			return tok, nil
		}
	}

	lx.skipSpacing()

	if lx.cursor.EOF() {
		return lx.finish()
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '#':
		lx.skipComment()
		return lx.Next()

	case ch == '\n':
		lx.cursor.Bump(1)
		lineTok := lx.make(token.Newline, lx.cursor.Off-1, lx.cursor.Off)
		lx.line++
		if lx.depth > 0 {
			// Implicit line joining: no logical line break.
			return lx.Next()
		}
		lx.atStart = true
		return lineTok, nil

	case ch == '\\' && lx.cursor.PeekAt(1) == '\n':
		// Explicit line joining.
		lx.cursor.Bump(2)
		lx.line++
		return lx.Next()

	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()

	case isDigit(ch) || (ch == '.' && isDigit(lx.cursor.PeekAt(1))):
		return lx.scanNumber()

	case ch == '\'' || ch == '"':
		return lx.scanString("")

	default:
		return lx.scanOperatorOrPunct()
	}
}

// handleIndentation measures the indentation of the upcoming logical line and
// emits Indent/Dedent tokens against the stack. Blank and comment-only lines
// produce nothing.
func (lx *Lexer) handleIndentation() (token.Token, bool, error) {
	width := uint32(0)
	for {
		switch lx.cursor.Peek() {
		case ' ':
			width++
			lx.cursor.Bump(1)
			continue
		case '\t':
			width = (width/tabSize + 1) * tabSize
			lx.cursor.Bump(1)
			continue
		}
		break
	}

	if lx.cursor.EOF() {
		// Leave atStart set: the file ended on a line boundary, so no
		// synthetic Newline is owed.
		return token.Token{}, false, nil
	}

	// Blank or comment-only physical line: not a logical line.
	switch lx.cursor.Peek() {
	case '\n':
		lx.cursor.Bump(1)
		lx.line++
		return lx.handleIndentation()
	case '#':
		lx.skipComment()
		if lx.cursor.Peek() == '\n' {
			lx.cursor.Bump(1)
			lx.line++
		}
		return lx.handleIndentation()
	}

	lx.atStart = false
	top := lx.indents[len(lx.indents)-1]
	switch {
	case width > top:
		lx.indents = append(lx.indents, width)
		return lx.make(token.Indent, lx.cursor.Off, lx.cursor.Off), true, nil
	case width < top:
		for len(lx.indents) > 1 && lx.indents[len(lx.indents)-1] > width {
			lx.indents = lx.indents[:len(lx.indents)-1]
			lx.pending = append(lx.pending, lx.make(token.Dedent, lx.cursor.Off, lx.cursor.Off))
		}
		if lx.indents[len(lx.indents)-1] != width {
			return token.Token{}, false, lx.errorf("unindent does not match any outer indentation level")
		}
		tok := lx.pending[0]
		lx.pending = lx.pending[1:]
		return tok, true, nil
	}
	return token.Token{}, false, nil
}

// finish emits the closing Newline/Dedent/EOF sequence.
func (lx *Lexer) finish() (token.Token, error) {
	if lx.depth > 0 {
		return token.Token{}, lx.errorf("unexpected end of file inside brackets")
	}
	off := lx.cursor.Off
	if !lx.atStart {
		lx.atStart = true
		lx.queue(token.Newline, off)
	}
	for len(lx.indents) > 1 {
		lx.indents = lx.indents[:len(lx.indents)-1]
		lx.queue(token.Dedent, off)
	}
	lx.queue(token.EOF, off)
	lx.eof = true

	tok := lx.pending[0]
	lx.pending = lx.pending[1:]
	return tok, nil
}

func (lx *Lexer) queue(kind token.Kind, off uint32) {
	lx.pending = append(lx.pending, lx.make(kind, off, off))
}

func (lx *Lexer) skipSpacing() {
	for {
		ch := lx.cursor.Peek()
		if ch == ' ' || ch == '\t' {
			lx.cursor.Bump(1)
			continue
		}
		return
	}
}

func (lx *Lexer) skipComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump(1)
	}
}

func (lx *Lexer) make(kind token.Kind, start, end uint32) token.Token {
	text := ""
	if end > start {
		text = lx.cursor.Slice(start, end)
	}
	return token.Token{
		Kind: kind,
		Span: source.Span{File: lx.file.ID, Start: start, End: end},
		Text: text,
		Line: lx.line,
	}
}

func (lx *Lexer) errorf(format string, args ...any) error {
	return &Error{Path: lx.file.Path, Line: lx.line, Msg: fmt.Sprintf(format, args...)}
}

const tabSize = 8
