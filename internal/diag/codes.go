package diag

import (
	"fmt"
)

// Code identifies one style rule. The twelve rules are evaluated in code
// order on every non-blank line; the numbering is part of the output
// contract.
type Code uint16

const (
	// UnknownCode is the zero value; never emitted by the engine.
	UnknownCode Code = 0

	// LineTooLong fires when a physical line exceeds 79 characters.
	LineTooLong Code = 1
	// BadIndentation fires when leading spaces are not a multiple of four.
	BadIndentation Code = 2
	// UnnecessarySemicolon fires on a statement-terminating ';'.
	UnnecessarySemicolon Code = 3
	// InlineCommentSpacing fires when '#' follows code with fewer than two
	// spaces of separation.
	InlineCommentSpacing Code = 4
	// TodoComment fires when a comment contains 'todo' in any casing.
	TodoComment Code = 5
	// TooManyBlankLines fires when more than two blank lines precede a line.
	TooManyBlankLines Code = 6
	// ConstructionSpacing fires when 'def' or 'class' is followed by more
	// than one space.
	ConstructionSpacing Code = 7
	// ClassNameStyle fires when a class name is not CamelCase.
	ClassNameStyle Code = 8
	// FuncNameStyle fires when a function name is not snake_case.
	FuncNameStyle Code = 9
	// ArgNameStyle fires when a parameter name is not snake_case.
	ArgNameStyle Code = 10
	// VarNameStyle fires when an assigned variable name is not snake_case.
	VarNameStyle Code = 11
	// MutableDefault fires when a default argument value is not a literal
	// constant.
	MutableDefault Code = 12
)

var codeTitles = map[Code]string{
	UnknownCode:          "Unknown check",
	LineTooLong:          "Too long",
	BadIndentation:       "Indentation is not a multiple of four",
	UnnecessarySemicolon: "Unnecessary semicolon",
	InlineCommentSpacing: "At least two spaces before inline comment required",
	TodoComment:          "TODO found",
	TooManyBlankLines:    "More than two blank lines used before this line",
	ConstructionSpacing:  "Too many spaces after construction_name (def or class)",
	ClassNameStyle:       "Class name %s should use CamelCase",
	FuncNameStyle:        "Function name %s should use snake_case",
	ArgNameStyle:         "Argument name '%s' should be snake_case",
	VarNameStyle:         "Variable '%s' in function should be snake_case",
	MutableDefault:       "Default argument value is mutable",
}

// ID renders the wire identifier, e.g. "S001".
func (c Code) ID() string {
	return fmt.Sprintf("S%03d", uint16(c))
}

// Title returns the fixed message for c. For the naming rules the title is a
// format string taking the offending name.
func (c Code) Title() string {
	title, ok := codeTitles[c]
	if !ok {
		return codeTitles[UnknownCode]
	}
	return title
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
