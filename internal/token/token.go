package token

import (
	"strings"

	"bracketlint/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, none or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNone:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwIf && t.Kind <= KwNone
}

// IsTagOpen reports whether the token opens an output or statement tag.
func (t Token) IsTagOpen() bool {
	return t.Kind == OutputOpen || t.Kind == StmtOpen
}

// IsTagClose reports whether the token closes an output or statement tag.
func (t Token) IsTagClose() bool {
	return t.Kind == OutputClose || t.Kind == StmtClose
}

// TrimsWhitespace reports whether a tag delimiter carries the
// whitespace-control dash.
func (t Token) TrimsWhitespace() bool {
	return (t.IsTagOpen() || t.IsTagClose()) && strings.Contains(t.Text, "-")
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsWord reports whether the token is spelled as an identifier, keyword or
// not. Block and macro names may reuse keywords.
func (t Token) IsWord() bool { return t.Kind == Ident || t.IsKeyword() }
