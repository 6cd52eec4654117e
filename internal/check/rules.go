package check

import (
	"fmt"
	"regexp"

	"pystyle/internal/diag"
)

// ruleTable is evaluated top to bottom on every non-blank line. The order is
// part of the output contract; never reorder.
var ruleTable = []rule{
	{diag.LineTooLong, checkLineLength},
	{diag.BadIndentation, checkIndentation},
	{diag.UnnecessarySemicolon, checkSemicolon},
	{diag.InlineCommentSpacing, checkInlineComment},
	{diag.TodoComment, checkTodo},
	{diag.TooManyBlankLines, checkBlankRun},
	{diag.ConstructionSpacing, checkConstructSpacing},
	{diag.ClassNameStyle, checkClassName},
	{diag.FuncNameStyle, checkFuncName},
	{diag.ArgNameStyle, checkArgNames},
	{diag.VarNameStyle, checkVarNames},
	{diag.MutableDefault, checkMutableDefault},
}

type rule struct {
	code  diag.Code
	check func(*lineContext) (string, bool)
}

const maxLineLength = 79

var (
	reInlineComment   = regexp.MustCompile(`^[^#]*[^ ] ?#`)
	reTodo            = regexp.MustCompile(`(?i)# *todo`)
	reConstructSpaces = regexp.MustCompile(`^[ ]*(?:class|def) {2}`)
	reClassHeader     = regexp.MustCompile(`^[ ]*class (\w+)`)
	reFuncHeader      = regexp.MustCompile(`^[ ]*def (\w+)`)

	// Naming patterns, anchored to the whole name. The character classes are
	// deliberately strict: snake_case is lowercase letters and underscores
	// only, CamelCase words start uppercase and continue with lowercase
	// letters or digits.
	reSnakeCase = regexp.MustCompile(`^[a-z_]+$`)
	reCamelCase = regexp.MustCompile(`^(?:[A-Z][a-z0-9]+)+$`)
)

// checkLineLength measures the raw physical line, trailing newline included.
func checkLineLength(ctx *lineContext) (string, bool) {
	if len(ctx.text) > maxLineLength {
		return diag.LineTooLong.Title(), true
	}
	return "", false
}

// checkIndentation fires unless the run of leading spaces has length 4k and
// is followed directly by some character. Counting is equivalent to the
// anchored pattern ( {4})*[^ ] over the line start: a terminated line of
// spaces anchors on its '\n', but a final unterminated line of spaces has no
// byte left to anchor and always fires.
func checkIndentation(ctx *lineContext) (string, bool) {
	indent := 0
	for indent < len(ctx.text) && ctx.text[indent] == ' ' {
		indent++
	}
	if indent%4 != 0 || indent == len(ctx.text) {
		return diag.BadIndentation.Title(), true
	}
	return "", false
}

// checkSemicolon looks for a ';' before the first '#' that is not
// immediately followed by non-whitespace. Semicolons inside a comment never
// count; semicolons inside string literals do, as in the original
// line-lexical rule.
func checkSemicolon(ctx *lineContext) (string, bool) {
	for i := 0; i < len(ctx.text); i++ {
		switch ctx.text[i] {
		case '#':
			return "", false
		case ';':
			if i+1 >= len(ctx.text) || isSpaceByte(ctx.text[i+1]) {
				return diag.UnnecessarySemicolon.Title(), true
			}
		}
	}
	return "", false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// checkInlineComment fires when a '#' follows a non-space character with at
// most one space of separation.
func checkInlineComment(ctx *lineContext) (string, bool) {
	if reInlineComment.MatchString(ctx.text) {
		return diag.InlineCommentSpacing.Title(), true
	}
	return "", false
}

func checkTodo(ctx *lineContext) (string, bool) {
	if reTodo.MatchString(ctx.text) {
		return diag.TodoComment.Title(), true
	}
	return "", false
}

func checkBlankRun(ctx *lineContext) (string, bool) {
	if ctx.blankRun > 2 {
		return diag.TooManyBlankLines.Title(), true
	}
	return "", false
}

func checkConstructSpacing(ctx *lineContext) (string, bool) {
	if reConstructSpaces.MatchString(ctx.text) {
		return diag.ConstructionSpacing.Title(), true
	}
	return "", false
}

// checkClassName validates the identifier directly after 'class '. With more
// than one space after the keyword the header pattern does not match and the
// name is not checked at all (S007 covers that line instead).
func checkClassName(ctx *lineContext) (string, bool) {
	m := reClassHeader.FindStringSubmatch(ctx.text)
	if m == nil {
		return "", false
	}
	if !reCamelCase.MatchString(m[1]) {
		return fmt.Sprintf(diag.ClassNameStyle.Title(), m[1]), true
	}
	return "", false
}

func checkFuncName(ctx *lineContext) (string, bool) {
	m := reFuncHeader.FindStringSubmatch(ctx.text)
	if m == nil {
		return "", false
	}
	if !reSnakeCase.MatchString(m[1]) {
		return fmt.Sprintf(diag.FuncNameStyle.Title(), m[1]), true
	}
	return "", false
}

// checkArgNames reports only the first offending parameter on the line.
func checkArgNames(ctx *lineContext) (string, bool) {
	for _, name := range ctx.attrs.Parameters(ctx.line) {
		if !reSnakeCase.MatchString(name) {
			return fmt.Sprintf(diag.ArgNameStyle.Title(), name), true
		}
	}
	return "", false
}

// checkVarNames reports only the first offending variable on the line.
func checkVarNames(ctx *lineContext) (string, bool) {
	for _, name := range ctx.attrs.Variables(ctx.line) {
		if !reSnakeCase.MatchString(name) {
			return fmt.Sprintf(diag.VarNameStyle.Title(), name), true
		}
	}
	return "", false
}

// checkMutableDefault pairs the full parameter list against the default-flag
// list by position, exactly like zipping the two sequences: once any leading
// parameter lacks a default the pairing is offset, and the rule fires on the
// first pair whose flag is false regardless of which parameter actually owns
// the mutable default.
func checkMutableDefault(ctx *lineContext) (string, bool) {
	params := ctx.attrs.Parameters(ctx.line)
	flags := ctx.attrs.DefaultConstants(ctx.line)
	n := min(len(params), len(flags))
	for i := 0; i < n; i++ {
		if !flags[i] {
			return diag.MutableDefault.Title(), true
		}
	}
	return "", false
}
