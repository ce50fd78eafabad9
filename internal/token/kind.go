package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Text is raw template data outside of tags.
	Text
	// Comment is a complete `{# ... #}` tag.
	Comment

	OutputOpen  // {{ or {{-
	OutputClose // }} or -}}
	StmtOpen    // {% or {%-
	StmtClose   // %} or -%}

	// Ident represents an identifier token.
	Ident

	KwIf       // if
	KwElif     // elif
	KwElse     // else
	KwEndif    // endif
	KwFor      // for
	KwIn       // in
	KwEndfor   // endfor
	KwSet      // set
	KwBlock    // block
	KwEndblock // endblock
	KwExtends  // extends
	KwInclude  // include
	KwMacro    // macro
	KwEndmacro // endmacro
	KwNot      // not
	KwAnd      // and
	KwOr       // or
	KwIs       // is
	KwTrue     // true
	KwFalse    // false
	KwNone     // none

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit is a single- or double-quoted string, quotes included.
	StringLit

	Plus       // +
	Minus      // -
	Star       // *
	StarStar   // **
	Slash      // /
	SlashSlash // //
	Percent    // %
	Tilde      // ~
	Assign     // =
	EqEq       // ==
	BangEq     // !=
	Lt         // <
	LtEq       // <=
	Gt         // >
	GtEq       // >=
	Pipe       // |
	Dot        // .
	Comma      // ,
	Colon      // :
	LParen     // (
	RParen     // )
	LBracket   // [
	RBracket   // ]
	LBrace     // {
	RBrace     // }
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Text:        "Text",
	Comment:     "Comment",
	OutputOpen:  "{{",
	OutputClose: "}}",
	StmtOpen:    "{%",
	StmtClose:   "%}",
	Ident:       "Ident",
	KwIf:        "if",
	KwElif:      "elif",
	KwElse:      "else",
	KwEndif:     "endif",
	KwFor:       "for",
	KwIn:        "in",
	KwEndfor:    "endfor",
	KwSet:       "set",
	KwBlock:     "block",
	KwEndblock:  "endblock",
	KwExtends:   "extends",
	KwInclude:   "include",
	KwMacro:     "macro",
	KwEndmacro:  "endmacro",
	KwNot:       "not",
	KwAnd:       "and",
	KwOr:        "or",
	KwIs:        "is",
	KwTrue:      "true",
	KwFalse:     "false",
	KwNone:      "none",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	StarStar:    "**",
	Slash:       "/",
	SlashSlash:  "//",
	Percent:     "%",
	Tilde:       "~",
	Assign:      "=",
	EqEq:        "==",
	BangEq:      "!=",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	Pipe:        "|",
	Dot:         ".",
	Comma:       ",",
	Colon:       ":",
	LParen:      "(",
	RParen:      ")",
	LBracket:    "[",
	RBracket:    "]",
	LBrace:      "{",
	RBrace:      "}",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
