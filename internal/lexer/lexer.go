package lexer

import (
	"iter"

	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

// maxTokenLength bounds a single identifier, number or string inside a tag.
const maxTokenLength = 4096

// Lexer splits a template into tokens. It alternates between data mode,
// where everything up to the next tag opener is one Text token, and tag mode,
// where expressions are tokenized until the matching closer.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	inTag  bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.inTag {
		return lx.nextInTag()
	}
	return lx.nextData()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.Next()
		lx.look = &t
	}
	return *lx.look
}

// All yields every token up to and including EOF.
func (lx *Lexer) All() iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for {
			tok := lx.Next()
			if !yield(tok) || tok.Kind == token.EOF {
				return
			}
		}
	}
}

func (lx *Lexer) nextData() token.Token {
	if lx.cursor.EOF() {
		return lx.eof()
	}
	switch {
	case lx.cursor.HasPrefix("{#"):
		return lx.scanComment()
	case lx.cursor.HasPrefix("{{"):
		return lx.scanTagOpen(token.OutputOpen)
	case lx.cursor.HasPrefix("{%"):
		return lx.scanTagOpen(token.StmtOpen)
	}
	return lx.scanText()
}

func (lx *Lexer) nextInTag() token.Token {
	lx.skipSpace()
	if lx.cursor.EOF() {
		// незакрытый тег: парсер сообщит об ошибке сам
		lx.inTag = false
		return lx.eof()
	}
	if tok, ok := lx.scanTagClose(); ok {
		return tok
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch), ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

func (lx *Lexer) eof() token.Token {
	return token.Token{
		Kind: token.EOF,
		Span: source.NewSpan(lx.file.ID, lx.cursor.Off, lx.cursor.Off),
	}
}
