// Package analyze walks a parsed module and builds the line-keyed attribute
// map the rule engine consults: which names each line binds, which parameters
// each 'def' line declares, and whether each default value is a literal
// constant.
package analyze

import (
	"pystyle/internal/ast"
)

// Attributes is the per-file attribute map. Keys are 1-based source lines;
// a line with no entry simply binds nothing. The map is read-only after
// Collect returns.
type Attributes struct {
	variables     map[uint32][]string
	parameters    map[uint32][]string
	constDefaults map[uint32][]bool
}

// Collect traverses the whole module, nested scopes included. Parameters of a
// nested function attach to that function's own definition line.
func Collect(module *ast.Module) *Attributes {
	attrs := &Attributes{
		variables:     make(map[uint32][]string),
		parameters:    make(map[uint32][]string),
		constDefaults: make(map[uint32][]bool),
	}
	ast.Walk(module.Body, attrs.visit)
	return attrs
}

func (attrs *Attributes) visit(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Assign:
		attrs.variables[s.Line] = append(attrs.variables[s.Line], s.Targets...)
	case *ast.AugAssign:
		attrs.variables[s.Line] = append(attrs.variables[s.Line], s.Target)
	case *ast.For:
		attrs.variables[s.Line] = append(attrs.variables[s.Line], s.Targets...)
	case *ast.With:
		attrs.variables[s.Line] = append(attrs.variables[s.Line], s.Targets...)
	case *ast.FuncDef:
		for _, param := range s.Params {
			attrs.parameters[s.Line] = append(attrs.parameters[s.Line], param.Name)
		}
		// Flags cover only the trailing parameters that carry defaults, in
		// declaration order; positional pairing against the full parameter
		// list is the caller's concern.
		for _, param := range s.Params {
			if param.Default != nil {
				attrs.constDefaults[s.Line] = append(attrs.constDefaults[s.Line], ast.IsConstant(param.Default))
			}
		}
	case *ast.ClassDef, *ast.Block:
		// Bind no names themselves.
	}
}

// Variables returns the names bound on line by assignment-like statements,
// in source order.
func (attrs *Attributes) Variables(line uint32) []string {
	return attrs.variables[line]
}

// Parameters returns the parameter names declared by the function defined on
// line.
func (attrs *Attributes) Parameters(line uint32) []string {
	return attrs.parameters[line]
}

// DefaultConstants returns one flag per defaulted parameter on line: true
// when that default is a literal constant.
func (attrs *Attributes) DefaultConstants(line uint32) []bool {
	return attrs.constDefaults[line]
}
