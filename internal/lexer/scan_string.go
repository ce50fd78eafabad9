package lexer

import (
	"bracketlint/internal/diag"
	"bracketlint/internal/token"
)

// scanString reads a '...' or "..." literal. Escapes are skipped, not
// validated. Template strings may span lines.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if sp.Len() > maxTokenLength {
				lx.errLex(diag.LexTokenTooLong, sp, "string literal is too long")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.TextFrom(start)}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
		}
		lx.cursor.Bump()
	}
	// EOF без закрывающей кавычки
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.TextFrom(start)}
}
