package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/token"
)

// funcDef parses 'def NAME ( params ) [-> type] : suite'. Parameter names
// attach to the 'def' line even when the header spans physical lines, which
// is where the attribute collector will look them up.
func (p *parser) funcDef() (ast.Stmt, error) {
	defTok, err := p.expect(token.KwDef)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.LParen); err != nil {
		return nil, err
	}
	params, err := p.paramList()
	if err != nil {
		return nil, err
	}
	if p.at(token.Arrow) {
		p.next()
		if _, err = p.collectUntil(token.Colon); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{
		Line:   defTok.Line,
		Name:   nameTok.Text,
		Params: params,
		Body:   body,
	}, nil
}

// paramList parses up to and including the closing ')'. Only positional
// parameters declared before a '*' or '**' marker are recorded; keyword-only
// parameters and catch-alls are consumed without recording, mirroring which
// names the attribute map tracks.
func (p *parser) paramList() ([]ast.Param, error) {
	var params []ast.Param
	record := true
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.RParen:
			p.next()
			return params, nil

		case tok.Kind == token.EOF:
			return nil, p.errorf(tok, "unterminated parameter list")

		case tok.Kind == token.Op && (tok.Text == "*" || tok.Text == "**"):
			record = false
			p.next()
			if err := p.skipParamRemainder(); err != nil {
				return nil, err
			}

		case tok.Kind == token.Op && tok.Text == "/":
			// Positional-only marker; the names keep their slots.
			p.next()

		case tok.Kind == token.Comma:
			p.next()

		case tok.Kind == token.Ident:
			p.next()
			param := ast.Param{Name: tok.Text}
			if p.at(token.Colon) {
				p.next()
				if _, err := p.collectUntil(token.Comma, token.Assign, token.RParen); err != nil {
					return nil, err
				}
			}
			if p.at(token.Assign) {
				p.next()
				defToks, err := p.collectUntil(token.Comma, token.RParen)
				if err != nil {
					return nil, err
				}
				param.Default = classifyExpr(defToks)
			}
			if record {
				params = append(params, param)
			}

		default:
			return nil, p.errorf(tok, "unexpected %s in parameter list", tok.Kind)
		}
	}
}

// skipParamRemainder consumes one parameter after a '*'/'**' marker: the
// optional name, annotation and default.
func (p *parser) skipParamRemainder() error {
	if p.at(token.Ident) {
		p.next()
	}
	if p.at(token.Colon) {
		p.next()
		if _, err := p.collectUntil(token.Comma, token.Assign, token.RParen); err != nil {
			return err
		}
	}
	if p.at(token.Assign) {
		p.next()
		if _, err := p.collectUntil(token.Comma, token.RParen); err != nil {
			return err
		}
	}
	return nil
}

// classDef parses 'class NAME [( bases )] : suite'.
func (p *parser) classDef() (ast.Stmt, error) {
	classTok, err := p.expect(token.KwClass)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Ident)
	if err != nil {
		return nil, err
	}
	if p.at(token.LParen) {
		if _, err = p.collectUntil(token.Colon); err != nil {
			return nil, err
		}
	}
	if _, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.ClassDef{Line: classTok.Line, Name: nameTok.Text, Body: body}, nil
}

// forStmt parses 'for targets in iterable : suite'.
func (p *parser) forStmt() (ast.Stmt, error) {
	forTok, err := p.expect(token.KwFor)
	if err != nil {
		return nil, err
	}
	targetToks, err := p.collectUntil(token.KwIn, token.Newline)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.KwIn); err != nil {
		return nil, err
	}
	iterToks, err := p.collectUntil(token.Colon)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.For{
		Line:    forTok.Line,
		Targets: simpleNames(targetToks),
		Body:    append(walrusAssigns(iterToks), body...),
	}, nil
}

// withStmt parses 'with item [as target], ... : suite'.
func (p *parser) withStmt() (ast.Stmt, error) {
	withTok, err := p.expect(token.KwWith)
	if err != nil {
		return nil, err
	}
	headerToks, err := p.collectUntil(token.Colon, token.Newline)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(token.Colon); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}

	var targets []string
	for _, item := range splitTopLevel(headerToks, token.Comma) {
		for i, tok := range item {
			if tok.Kind == token.KwAs && topLevelAt(item, i) {
				targets = append(targets, simpleNames(item[i+1:])...)
			}
		}
	}
	return &ast.With{
		Line:    withTok.Line,
		Targets: targets,
		Body:    append(walrusAssigns(headerToks), body...),
	}, nil
}

// blockStmt parses the remaining compound statements (if/elif/else, while,
// try/except/finally): header up to the suite ':' then the suite. The only
// names a header binds are ':=' targets.
func (p *parser) blockStmt() (ast.Stmt, error) {
	head := p.next()
	headerToks, err := p.collectUntil(token.Colon, token.Newline)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Colon); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	return &ast.Block{
		Line: head.Line,
		Body: append(walrusAssigns(headerToks), body...),
	}, nil
}
