// Package ast defines the syntax-tree subset the checker analyzes: function
// and class definitions, name-binding statements, and the compound statements
// whose suites can contain them. The node set is closed; Walk dispatches over
// every kind so new variants cannot be added without extending the traversal.
package ast

// Module is the root of one parsed file.
type Module struct {
	Body []Stmt
}

// Stmt is one statement variant. The set is sealed via the unexported marker.
type Stmt interface {
	isStmt()
}

// FuncDef is a 'def' (or 'async def') statement.
type FuncDef struct {
	Line   uint32 // line of the 'def' keyword
	Name   string
	Params []Param
	Body   []Stmt
}

// ClassDef is a 'class' statement.
type ClassDef struct {
	Line uint32
	Name string
	Body []Stmt
}

// Assign is an '=' statement. Targets holds the simple-name targets of every
// target group of a chained assignment, tuple elements unpacked; attribute
// and subscript targets are not name bindings and are omitted.
type Assign struct {
	Line    uint32
	Targets []string
}

// AugAssign is a compound assignment ('+=' family) to a simple name.
type AugAssign struct {
	Line   uint32
	Target string
}

// For is a 'for ... in ...' statement; Targets are its simple-name loop
// variables.
type For struct {
	Line    uint32
	Targets []string
	Body    []Stmt
}

// With is a 'with' statement; Targets are the simple names bound by
// 'as' clauses.
type With struct {
	Line    uint32
	Targets []string
	Body    []Stmt
}

// Block carries the suites of compound statements that bind no names
// themselves (if/elif/else, while, try/except/finally). Nested definitions
// and assignments inside those suites still need to be reachable.
type Block struct {
	Line uint32
	Body []Stmt
}

func (*FuncDef) isStmt()   {}
func (*ClassDef) isStmt()  {}
func (*Assign) isStmt()    {}
func (*AugAssign) isStmt() {}
func (*For) isStmt()       {}
func (*With) isStmt()      {}
func (*Block) isStmt()     {}

// Param is one declared positional parameter. Default is nil when the
// parameter carries no default value.
type Param struct {
	Name    string
	Default Expr
}

// Expr classifies a default-value expression. Only constant-ness matters to
// the checker, so the variants are coarse.
type Expr interface {
	isExpr()
}

// Literal is a single literal-constant token: number, string, True, False
// or None.
type Literal struct {
	Text string
}

// NameRef is a bare identifier reference.
type NameRef struct {
	Name string
}

// OtherExpr is any remaining expression form (call, container display,
// unary/binary operation, lambda, ...). Never a constant.
type OtherExpr struct{}

func (*Literal) isExpr()   {}
func (*NameRef) isExpr()   {}
func (*OtherExpr) isExpr() {}

// IsConstant reports whether e is a literal constant. Only direct literals
// count: a negated number or an empty list is not constant.
func IsConstant(e Expr) bool {
	_, ok := e.(*Literal)
	return ok
}
