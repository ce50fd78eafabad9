package lexer

// skipSpace consumes whitespace inside a tag. Whitespace carries no meaning
// there and is not kept.
func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
