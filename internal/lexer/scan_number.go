package lexer

import (
	"bracketlint/internal/diag"
	"bracketlint/internal/token"
)

// Поддержка: 0, 123, 1_000, 1.5, 1e-3, 1.0e+10.
// Суффикс из букв, не образующий экспоненту, остаётся следующему токену.
// Неверные формы: репорт в opts.Reporter, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	lx.eatDigits()

	// дробная часть: "1.5", но не "1.foo" (атрибут) и не "1..2"
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDigits()
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			kind = token.FloatLit
			lx.eatDigits()
		} else {
			// "1else": буква относится уже к следующему токену
			lx.cursor.Reset(mark)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.TextFrom(start)
	if text[len(text)-1] == '_' {
		lx.errLex(diag.LexBadNumber, sp, "number literal cannot end with '_'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	if len(text) > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, sp, "number literal is too long")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}
