package ast

// Walk calls fn for every statement in body, preorder, descending into every
// nested suite. The type switch is exhaustive over the closed statement set.
func Walk(body []Stmt, fn func(Stmt)) {
	for _, stmt := range body {
		fn(stmt)
		switch s := stmt.(type) {
		case *FuncDef:
			Walk(s.Body, fn)
		case *ClassDef:
			Walk(s.Body, fn)
		case *For:
			Walk(s.Body, fn)
		case *With:
			Walk(s.Body, fn)
		case *Block:
			Walk(s.Body, fn)
		case *Assign, *AugAssign:
			// Leaf statements.
		}
	}
}
