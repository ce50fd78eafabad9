package parser

import (
	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

// parseIf разбирает цепочку if/elif/else/endif. elif превращается во
// вложенный If в ветке Else.
func (p *Parser) parseIf(open token.Token) (ast.Node[ast.Stmt], bool) {
	p.advance() // if
	n, _, _ := p.parseIfChain(open)
	return n, true
}

// parseIfChain parses from the condition to the shared endif. It returns the
// node, the offset where the `{% endif %}` tag starts and the offset after it.
func (p *Parser) parseIfChain(open token.Token) (ast.Node[ast.Stmt], uint32, uint32) {
	var (
		out     ast.If
		headEnd uint32
	)
	if cond, skippedTo, ok := p.parseTagExpr(); ok {
		out.Cond = cond.n
		headEnd = p.closeTag(open)
	} else {
		headEnd = skippedTo
	}

	body, stop := p.parseNested(token.KwElif, token.KwElse, token.KwEndif)
	bodyEnd := p.peek().Span.Start()
	out.Then = p.stmtList(body, source.NewByteRange(headEnd, bodyEnd))

	var closeStart, end uint32
	switch stop.Kind {
	case token.KwElif:
		elifOpen := p.advance()
		p.advance() // elif
		nested, nestedClose, nestedEnd := p.parseIfChain(elifOpen)
		out.Else = p.stmtList([]ast.Node[ast.Stmt]{nested}, source.NewByteRange(elifOpen.Span.Start(), nestedEnd))
		return p.stmt(out, source.NewByteRange(open.Span.Start(), nestedEnd)), nestedClose, nestedEnd

	case token.KwElse:
		elseOpen := p.advance()
		p.advance() // else
		elseStart := p.closeTag(elseOpen)
		elseBody, elseStop := p.parseElseBody(token.KwEndif)
		closeStart = p.peek().Span.Start()
		out.Else = p.stmtList(elseBody, source.NewByteRange(elseStart, closeStart))
		end = p.closeBlock(elseStop, token.KwEndif, open)

	default:
		closeStart = bodyEnd
		end = p.closeBlock(stop, token.KwEndif, open)
	}
	return p.stmt(out, source.NewByteRange(open.Span.Start(), end)), closeStart, end
}

// parseElseBody parses an else branch up to endKw. A second else or an elif
// inside it is reported and its tag dropped.
func (p *Parser) parseElseBody(endKw token.Kind) ([]ast.Node[ast.Stmt], token.Token) {
	var nodes []ast.Node[ast.Stmt]
	for {
		body, stop := p.parseNested(endKw, token.KwElse, token.KwElif)
		nodes = append(nodes, body...)
		if stop.Kind != token.KwElse && stop.Kind != token.KwElif {
			return nodes, stop
		}
		p.advance() // {%
		p.report(diag.SynDuplicateElse, diag.SevError, stop.Span, "'"+stop.Text+"' after 'else'")
		p.skipTag()
	}
}

// {% for target in iter %}...[{% else %}...]{% endfor %}
func (p *Parser) parseFor(open token.Token) (ast.Node[ast.Stmt], bool) {
	p.advance() // for
	var out ast.For
	target, ok := p.parseTarget()
	if !ok {
		p.skipTag()
		return p.skipBlock(open, token.KwEndfor), false
	}
	out.Target = target.n
	if _, ok := p.expect(token.KwIn, diag.SynForMissingIn, "expected 'in' in for loop"); !ok {
		p.skipTag()
		return p.skipBlock(open, token.KwEndfor), false
	}

	var headEnd uint32
	if iter, skippedTo, ok := p.parseTagExpr(); ok {
		out.Iter = iter.n
		headEnd = p.closeTag(open)
	} else {
		headEnd = skippedTo
	}

	body, stop := p.parseNested(token.KwElse, token.KwEndfor)
	bodyEnd := p.peek().Span.Start()
	out.Body = p.stmtList(body, source.NewByteRange(headEnd, bodyEnd))

	if stop.Kind == token.KwElse {
		elseOpen := p.advance()
		p.advance() // else
		elseStart := p.closeTag(elseOpen)
		var elseBody []ast.Node[ast.Stmt]
		elseBody, stop = p.parseElseBody(token.KwEndfor)
		out.Else = p.stmtList(elseBody, source.NewByteRange(elseStart, p.peek().Span.Start()))
	}
	end := p.closeBlock(stop, token.KwEndfor, open)
	return p.stmt(out, source.NewByteRange(open.Span.Start(), end)), true
}

// skipBlock drops the body of a block whose header could not be parsed, so
// that its end tag is not reported a second time.
func (p *Parser) skipBlock(open token.Token, endKw token.Kind) ast.Node[ast.Stmt] {
	_, stop := p.parseNested(endKw)
	p.closeBlock(stop, endKw, open)
	return ast.Node[ast.Stmt]{}
}

// closeBlock consumes `{% endkw [name] %}` when stop is the end keyword and
// returns the offset after it. At EOF the block is reported as unclosed.
func (p *Parser) closeBlock(stop token.Token, endKw token.Kind, open token.Token) uint32 {
	if stop.Kind != endKw {
		sp := p.getDiagnosticSpan()
		p.emit(diag.ReportError(p.opts.Reporter, diag.SynUnclosedBlock, open.Span,
			"block is not closed, expected '{% "+endKw.String()+" %}'").
			WithNote(sp, "reached end of file"))
		return sp.End()
	}
	closeOpen := p.advance() // {%
	p.advance()              // endkw
	if p.peek().IsWord() {
		p.advance() // {% endblock name %}
	}
	return p.closeTag(closeOpen)
}
