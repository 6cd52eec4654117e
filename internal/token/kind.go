package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Newline terminates a logical line.
	Newline
	// Indent opens a deeper indentation block.
	Indent
	// Dedent closes an indentation block.
	Dedent

	// Ident represents an identifier token.
	Ident
	// Int represents an integer literal.
	Int
	// Float represents a floating point literal.
	Float
	// String represents a string literal (any prefix/quote form).
	String

	// KwDef represents the 'def' keyword.
	KwDef // def
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElif represents the 'elif' keyword.
	KwElif // elif
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwTry represents the 'try' keyword.
	KwTry // try
	// KwExcept represents the 'except' keyword.
	KwExcept // except
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwPass represents the 'pass' keyword.
	KwPass // pass
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwLambda represents the 'lambda' keyword.
	KwLambda // lambda
	// KwGlobal represents the 'global' keyword.
	KwGlobal // global
	// KwNonlocal represents the 'nonlocal' keyword.
	KwNonlocal // nonlocal
	// KwDel represents the 'del' keyword.
	KwDel // del
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwTrue represents the 'True' literal keyword.
	KwTrue // True
	// KwFalse represents the 'False' literal keyword.
	KwFalse // False
	// KwNone represents the 'None' literal keyword.
	KwNone // None

	// Assign represents '='.
	Assign // =
	// AugAssign represents compound assignment operators (+=, -=, ...).
	AugAssign
	// Walrus represents ':='.
	Walrus // :=
	// Arrow represents '->'.
	Arrow // ->
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// Op represents any remaining operator (comparison, arithmetic, bitwise).
	Op
)

var kindNames = map[Kind]string{
	Invalid:    "Invalid",
	EOF:        "EOF",
	Newline:    "Newline",
	Indent:     "Indent",
	Dedent:     "Dedent",
	Ident:      "Ident",
	Int:        "Int",
	Float:      "Float",
	String:     "String",
	KwDef:      "def",
	KwClass:    "class",
	KwReturn:   "return",
	KwIf:       "if",
	KwElif:     "elif",
	KwElse:     "else",
	KwWhile:    "while",
	KwFor:      "for",
	KwIn:       "in",
	KwWith:     "with",
	KwAs:       "as",
	KwTry:      "try",
	KwExcept:   "except",
	KwFinally:  "finally",
	KwRaise:    "raise",
	KwPass:     "pass",
	KwBreak:    "break",
	KwContinue: "continue",
	KwImport:   "import",
	KwFrom:     "from",
	KwLambda:   "lambda",
	KwGlobal:   "global",
	KwNonlocal: "nonlocal",
	KwDel:      "del",
	KwAssert:   "assert",
	KwYield:    "yield",
	KwAsync:    "async",
	KwAwait:    "await",
	KwNot:      "not",
	KwAnd:      "and",
	KwOr:       "or",
	KwIs:       "is",
	KwTrue:     "True",
	KwFalse:    "False",
	KwNone:     "None",
	Assign:     "=",
	AugAssign:  "AugAssign",
	Walrus:     ":=",
	Arrow:      "->",
	Colon:      ":",
	Semicolon:  ";",
	Comma:      ",",
	Dot:        ".",
	LParen:     "(",
	RParen:     ")",
	LBracket:   "[",
	RBracket:   "]",
	LBrace:     "{",
	RBrace:     "}",
	Op:         "Op",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k Kind) IsKeyword() bool {
	return k >= KwDef && k <= KwNone
}

// IsLiteralConstant reports whether a single token of this kind forms a
// literal constant expression (number, string, True/False/None).
func (k Kind) IsLiteralConstant() bool {
	switch k {
	case Int, Float, String, KwTrue, KwFalse, KwNone:
		return true
	default:
		return false
	}
}

// OpensBracket reports whether k is an opening bracket.
func (k Kind) OpensBracket() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// ClosesBracket reports whether k is a closing bracket.
func (k Kind) ClosesBracket() bool {
	return k == RParen || k == RBracket || k == RBrace
}
