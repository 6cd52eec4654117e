package parser

import (
	"pystyle/internal/ast"
	"pystyle/internal/token"
)

// classifySimple turns one ';'-free simple statement into a node, or nil for
// statements that bind no names (expressions, returns, imports, ...).
func classifySimple(toks []token.Token) ast.Stmt {
	if len(toks) == 0 {
		return nil
	}

	// Compound assignment: 'NAME op= expr'.
	if len(toks) >= 2 && toks[0].Kind == token.Ident && toks[1].Kind == token.AugAssign {
		return &ast.AugAssign{Line: toks[0].Line, Target: toks[0].Text}
	}

	groups := splitTopLevel(toks, token.Assign)
	if len(groups) < 2 {
		// Bare annotation: 'NAME : type' with no value still binds the name.
		if len(toks) >= 3 && toks[0].Kind == token.Ident && toks[1].Kind == token.Colon {
			return &ast.Assign{Line: toks[0].Line, Targets: []string{toks[0].Text}}
		}
		return nil
	}

	// Every group but the last is a target group of the (possibly chained)
	// assignment; the last is the assigned expression.
	var targets []string
	for _, group := range groups[:len(groups)-1] {
		targets = append(targets, simpleNames(group)...)
	}
	if len(targets) == 0 {
		return nil
	}
	return &ast.Assign{Line: toks[0].Line, Targets: targets}
}

// walrusAssigns returns one Assign per ':=' binding in toks, at any bracket
// depth. Each name binds on the physical line of its own identifier, which
// matters for multi-line headers.
func walrusAssigns(toks []token.Token) []ast.Stmt {
	var out []ast.Stmt
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Kind == token.Ident && toks[i+1].Kind == token.Walrus {
			out = append(out, &ast.Assign{Line: toks[i].Line, Targets: []string{toks[i].Text}})
		}
	}
	return out
}

// classifyExpr coarsely classifies a default-value expression.
func classifyExpr(toks []token.Token) ast.Expr {
	if len(toks) == 1 {
		tok := toks[0]
		if tok.Kind.IsLiteralConstant() {
			return &ast.Literal{Text: tok.Text}
		}
		if tok.Kind == token.Ident {
			return &ast.NameRef{Name: tok.Text}
		}
	}
	return &ast.OtherExpr{}
}

// simpleNames extracts the simple-name binding targets from a target group:
// a comma-separated list whose elements are single identifiers, possibly
// parenthesized as a tuple. Attribute, subscript and starred targets are not
// simple names and yield nothing; an annotated target ('x: int') yields the
// name alone.
func simpleNames(toks []token.Token) []string {
	toks = stripParens(toks)
	if len(toks) == 0 {
		return nil
	}

	// Annotated single target.
	if len(toks) >= 2 && toks[0].Kind == token.Ident && toks[1].Kind == token.Colon {
		return []string{toks[0].Text}
	}

	elements := splitTopLevel(toks, token.Comma)
	if len(elements) == 1 && len(elements[0]) == len(toks) {
		// No top-level comma: a single target.
		if len(toks) == 1 && toks[0].Kind == token.Ident {
			return []string{toks[0].Text}
		}
		// Attribute, subscript, starred, call, ...: not a name binding.
		return nil
	}

	var names []string
	for _, element := range elements {
		names = append(names, simpleNames(element)...)
	}
	return names
}

// stripParens removes one level of brackets enclosing the whole group.
func stripParens(toks []token.Token) []token.Token {
	for len(toks) >= 2 && toks[0].Kind.OpensBracket() &&
		matchingClose(toks[0].Kind) == toks[len(toks)-1].Kind &&
		encloses(toks) {
		toks = toks[1 : len(toks)-1]
	}
	return toks
}

func matchingClose(open token.Kind) token.Kind {
	switch open {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	case token.LBrace:
		return token.RBrace
	}
	return token.Invalid
}

// encloses reports whether the first token's bracket closes at the last
// token, i.e. the brackets wrap the entire group.
func encloses(toks []token.Token) bool {
	depth := 0
	for i, tok := range toks {
		if tok.Kind.OpensBracket() {
			depth++
		} else if tok.Kind.ClosesBracket() {
			depth--
			if depth == 0 {
				return i == len(toks)-1
			}
		}
	}
	return false
}

// splitTopLevel splits toks on every separator occurring at bracket depth
// zero. Empty segments are dropped.
func splitTopLevel(toks []token.Token, sep token.Kind) [][]token.Token {
	var out [][]token.Token
	depth := 0
	start := 0
	for i, tok := range toks {
		switch {
		case tok.Kind.OpensBracket():
			depth++
		case tok.Kind.ClosesBracket():
			depth--
		case tok.Kind == sep && depth == 0:
			if i > start {
				out = append(out, toks[start:i])
			}
			start = i + 1
		}
	}
	if start < len(toks) {
		out = append(out, toks[start:])
	}
	return out
}

// topLevelAt reports whether position i in toks sits at bracket depth zero.
func topLevelAt(toks []token.Token, i int) bool {
	depth := 0
	for j := 0; j < i; j++ {
		if toks[j].Kind.OpensBracket() {
			depth++
		} else if toks[j].Kind.ClosesBracket() {
			depth--
		}
	}
	return depth == 0
}
