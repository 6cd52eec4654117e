// Package parser builds the checker's syntax-tree subset from a token
// stream. It is structural, not validating: statements outside the subset
// are consumed as opaque lines, but every nested suite is entered so that
// definitions and assignments attach to their own source lines. Failures the
// subset can detect (malformed def/class headers, missing suite) abort the
// whole file, as does any tokenization error.
package parser

import (
	"fmt"

	"pystyle/internal/ast"
	"pystyle/internal/lexer"
	"pystyle/internal/source"
	"pystyle/internal/token"
)

// Error is a structural parse failure; the file is skipped entirely.
type Error struct {
	Path string
	Line uint32
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Parse tokenizes and parses file into the analysis subset.
func Parse(file *source.File) (*ast.Module, error) {
	toks, err := lexer.Scan(file)
	if err != nil {
		return nil, err
	}
	p := &parser{path: file.Path, toks: toks}
	body, err := p.stmts(false)
	if err != nil {
		return nil, err
	}
	return &ast.Module{Body: body}, nil
}

type parser struct {
	path string
	toks []token.Token
	pos  int
}

func (p *parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *parser) next() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.errorf(tok, "expected %s, found %s", kind, tok.Kind)
	}
	return p.next(), nil
}

func (p *parser) errorf(at token.Token, format string, args ...any) error {
	return &Error{Path: p.path, Line: at.Line, Msg: fmt.Sprintf(format, args...)}
}

// stmts parses statements until EOF, or until the Dedent closing the current
// suite when insideSuite is set.
func (p *parser) stmts(insideSuite bool) ([]ast.Stmt, error) {
	var body []ast.Stmt
	for {
		switch p.peek().Kind {
		case token.EOF:
			return body, nil
		case token.Dedent:
			if insideSuite {
				p.next()
				return body, nil
			}
			return body, p.errorf(p.peek(), "unexpected dedent")
		case token.Newline:
			p.next()
			continue
		}

		stmt, err := p.stmt()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt...)
	}
}

// stmt parses one statement (compound or a full simple-statement line, which
// may hold several ';'-separated statements).
func (p *parser) stmt() ([]ast.Stmt, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwAsync:
		// 'async' prefixes def/for/with; the statement parses the same.
		p.next()
		return p.stmt()
	case token.KwDef:
		s, err := p.funcDef()
		return wrap(s, err)
	case token.KwClass:
		s, err := p.classDef()
		return wrap(s, err)
	case token.KwFor:
		s, err := p.forStmt()
		return wrap(s, err)
	case token.KwWith:
		s, err := p.withStmt()
		return wrap(s, err)
	case token.KwIf, token.KwElif, token.KwElse, token.KwWhile,
		token.KwTry, token.KwExcept, token.KwFinally:
		s, err := p.blockStmt()
		return wrap(s, err)
	default:
		return p.simpleLine()
	}
}

func wrap(s ast.Stmt, err error) ([]ast.Stmt, error) {
	if err != nil {
		return nil, err
	}
	return []ast.Stmt{s}, nil
}

// suite parses the body after a compound statement's ':'. Either an indented
// block on the following lines, or inline simple statements on the same line.
func (p *parser) suite() ([]ast.Stmt, error) {
	if p.at(token.Newline) {
		p.next()
		if _, err := p.expect(token.Indent); err != nil {
			return nil, err
		}
		return p.stmts(true)
	}
	return p.simpleLine()
}

// simpleLine consumes one physical simple-statement line: ';'-separated
// statements up to the Newline. Assignment-like statements become nodes;
// everything else is dropped.
func (p *parser) simpleLine() ([]ast.Stmt, error) {
	var out []ast.Stmt
	for {
		group, err := p.collectUntil(token.Semicolon, token.Newline)
		if err != nil {
			return nil, err
		}
		if stmt := classifySimple(group); stmt != nil {
			out = append(out, stmt)
		}
		out = append(out, walrusAssigns(group)...)
		sep := p.next() // the Semicolon, Newline or EOF that ended the group
		if sep.Kind != token.Semicolon {
			return out, nil
		}
		if p.at(token.Newline) { // trailing ';'
			p.next()
			return out, nil
		}
	}
}

// collectUntil gathers tokens until one of the stop kinds appears at bracket
// depth zero (or EOF). The stop token is not consumed.
func (p *parser) collectUntil(stops ...token.Kind) ([]token.Token, error) {
	var out []token.Token
	depth := 0
	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			return out, nil
		}
		if depth == 0 {
			for _, stop := range stops {
				if tok.Kind == stop {
					return out, nil
				}
			}
			if tok.Kind.ClosesBracket() {
				// The enclosing bracket: belongs to the caller.
				return out, nil
			}
		}
		if tok.Kind.OpensBracket() {
			depth++
		} else if tok.Kind.ClosesBracket() {
			depth--
		}
		out = append(out, p.next())
	}
}
