package lexer

import (
	"bracketlint/internal/diag"
	"bracketlint/internal/token"
)

// scanText consumes raw data up to the next tag opener or EOF.
func (lx *Lexer) scanText() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '{' && (b1 == '{' || b1 == '%' || b1 == '#') {
			break
		}
		lx.cursor.Bump()
	}
	return token.Token{Kind: token.Text, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}

// scanComment consumes a whole `{# ... #}` tag.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // {
	lx.cursor.Bump() // #
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("#}") {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return token.Token{Kind: token.Comment, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedComment, sp, "unterminated comment")
	return token.Token{Kind: token.Comment, Span: sp, Text: lx.cursor.TextFrom(start)}
}

// scanTagOpen consumes "{{" or "{%" with an optional dash and switches to
// tag mode.
func (lx *Lexer) scanTagOpen(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Eat('-')
	lx.inTag = true
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}

// scanTagClose recognizes "}}", "%}" and their dashed forms.
func (lx *Lexer) scanTagClose() (token.Token, bool) {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch {
	case lx.try3('-', '}', '}'), lx.try2('}', '}'):
		kind = token.OutputClose
	case lx.try3('-', '%', '}'), lx.try2('%', '}'):
		kind = token.StmtClose
	default:
		return token.Token{}, false
	}
	lx.inTag = false
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}, true
}
