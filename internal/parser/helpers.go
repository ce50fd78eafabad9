package parser

import (
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

func (p *Parser) peek() token.Token {
	return p.peekN(0)
}

// peekN смотрит на n токенов вперёд, не съедая их.
func (p *Parser) peekN(n int) token.Token {
	for len(p.look) <= n {
		p.look = append(p.look, p.lx.Next())
	}
	return p.look[n]
}

// advance: съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.peek()
	p.look = p.look[1:]
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan: лучший span для диагностики: на EOF указываем сразу
// за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF {
		end := p.lastSpan.End()
		return source.NewSpan(p.file.ID, end, end)
	}
	return peek.Span
}

// expect: ожидаем конкретный токен. Если нет, репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

// expectWord accepts an identifier or a keyword used as a name.
func (p *Parser) expectWord(msg string) (token.Token, bool) {
	if p.peek().IsWord() {
		return p.advance(), true
	}
	return p.expect(token.Ident, diag.SynExpectIdentifier, msg)
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	return p.emit(diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg))
}

func (p *Parser) emit(b *diag.ReportBuilder) bool {
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	if b.Diagnostic().Severity == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false // достигли максимального количества ошибок
	}
	b.Emit()
	return true
}

// skipTag прокручивает до закрывающего разделителя тега включительно или до
// EOF. Возвращает смещение, на котором закончился тег.
func (p *Parser) skipTag() uint32 {
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.EOF:
			return tok.Span.Start()
		case tok.IsTagClose():
			p.advance()
			return tok.Span.End()
		}
		p.advance()
	}
}

// closeTag expects the closer of the tag opened by open and returns the
// offset right after the tag. Junk before the closer is reported and skipped.
func (p *Parser) closeTag(open token.Token) uint32 {
	want := token.StmtClose
	if open.Kind == token.OutputOpen {
		want = token.OutputClose
	}
	tok := p.peek()
	switch {
	case tok.Kind == want:
		p.advance()
		return tok.Span.End()
	case tok.Kind == token.EOF:
		p.emit(diag.ReportError(p.opts.Reporter, diag.SynUnclosedTag, open.Span,
			"tag is not closed, expected '"+want.String()+"'"))
		return tok.Span.Start()
	case tok.IsTagClose():
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			"mismatched tag delimiter, expected '"+want.String()+"'")
		p.advance()
		return tok.Span.End()
	default:
		p.emit(diag.ReportError(p.opts.Reporter, diag.SynUnexpectedToken, tok.Span,
			"unexpected '"+tok.Text+"', expected '"+want.String()+"'").
			WithNote(open.Span, "tag opened here"))
		return p.skipTag()
	}
}
