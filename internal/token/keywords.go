package token

var keywords = map[string]Kind{
	"def":      KwDef,
	"class":    KwClass,
	"return":   KwReturn,
	"if":       KwIf,
	"elif":     KwElif,
	"else":     KwElse,
	"while":    KwWhile,
	"for":      KwFor,
	"in":       KwIn,
	"with":     KwWith,
	"as":       KwAs,
	"try":      KwTry,
	"except":   KwExcept,
	"finally":  KwFinally,
	"raise":    KwRaise,
	"pass":     KwPass,
	"break":    KwBreak,
	"continue": KwContinue,
	"import":   KwImport,
	"from":     KwFrom,
	"lambda":   KwLambda,
	"global":   KwGlobal,
	"nonlocal": KwNonlocal,
	"del":      KwDel,
	"assert":   KwAssert,
	"yield":    KwYield,
	"async":    KwAsync,
	"await":    KwAwait,
	"not":      KwNot,
	"and":      KwAnd,
	"or":       KwOr,
	"is":       KwIs,
	"True":     KwTrue,
	"False":    KwFalse,
	"None":     KwNone,
}

// LookupKeyword maps an identifier spelling to its keyword kind.
// Returns Ident when the spelling is not reserved.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}
