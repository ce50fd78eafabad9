package parser

import (
	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

// {% block name [scoped] %}...{% endblock [name] %}
func (p *Parser) parseBlock(open token.Token) (ast.Node[ast.Stmt], bool) {
	p.advance() // block
	name, ok := p.expectWord("expected block name")
	if !ok {
		p.skipTag()
		return p.skipBlock(open, token.KwEndblock), false
	}
	if p.atWord("scoped") {
		p.advance()
	}
	headEnd := p.closeTag(open)

	body, stop := p.parseNested(token.KwEndblock)
	list := p.stmtList(body, source.NewByteRange(headEnd, p.peek().Span.Start()))
	if stop.Kind == token.KwEndblock {
		if closing := p.peekN(2); closing.IsWord() && closing.Text != name.Text {
			p.emit(diag.ReportWarning(p.opts.Reporter, diag.SynUnexpectedToken, closing.Span,
				"endblock name '"+closing.Text+"' does not match block '"+name.Text+"'").
				WithNote(name.Span, "block opened here"))
		}
	}
	end := p.closeBlock(stop, token.KwEndblock, open)
	return p.stmt(ast.Block{Name: name.Text, Body: list}, source.NewByteRange(open.Span.Start(), end)), true
}

// {% macro name(params) %}...{% endmacro [name] %}
func (p *Parser) parseMacro(open token.Token) (ast.Node[ast.Stmt], bool) {
	p.advance() // macro
	name, ok := p.expectWord("expected macro name")
	if !ok {
		p.skipTag()
		return p.skipBlock(open, token.KwEndmacro), false
	}
	lparen, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after macro name")
	if !ok {
		p.skipTag()
		return p.skipBlock(open, token.KwEndmacro), false
	}
	params, rparen, ok := p.parseItems(token.RParen, true)
	if !ok {
		p.skipTag()
		return p.skipBlock(open, token.KwEndmacro), false
	}
	for _, prm := range params {
		switch (*prm.n.Body()).(type) {
		case ast.Name, ast.Keyword:
		default:
			p.report(diag.SynExpectIdentifier, diag.SevError, p.span(prm.r), "macro parameter must be a name")
		}
	}
	paramList := p.exprList(params, lparen.Span.Range.Union(rparen))
	headEnd := p.closeTag(open)

	body, stop := p.parseNested(token.KwEndmacro)
	list := p.stmtList(body, source.NewByteRange(headEnd, p.peek().Span.Start()))
	end := p.closeBlock(stop, token.KwEndmacro, open)
	return p.stmt(ast.Macro{Name: name.Text, Params: paramList, Body: list}, source.NewByteRange(open.Span.Start(), end)), true
}
