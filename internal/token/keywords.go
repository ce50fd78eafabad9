package token

var keywords = map[string]Kind{
	"if":       KwIf,
	"elif":     KwElif,
	"else":     KwElse,
	"endif":    KwEndif,
	"for":      KwFor,
	"in":       KwIn,
	"endfor":   KwEndfor,
	"set":      KwSet,
	"block":    KwBlock,
	"endblock": KwEndblock,
	"extends":  KwExtends,
	"include":  KwInclude,
	"macro":    KwMacro,
	"endmacro": KwEndmacro,
	"not":      KwNot,
	"and":      KwAnd,
	"or":       KwOr,
	"is":       KwIs,
	"true":     KwTrue,
	"false":    KwFalse,
	"none":     KwNone,
	// Python-style spellings
	"True":  KwTrue,
	"False": KwFalse,
	"None":  KwNone,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые, кроме алиасов True/False/None.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
