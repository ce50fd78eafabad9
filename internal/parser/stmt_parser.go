package parser

import (
	"strings"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

// parseStmt разбирает один оператор шаблона. false означает, что тег был
// ошибочным и пропущен.
func (p *Parser) parseStmt() (ast.Node[ast.Stmt], bool) {
	tok := p.peek()
	var (
		n  ast.Node[ast.Stmt]
		ok bool
	)
	switch tok.Kind {
	case token.Text:
		p.advance()
		n, ok = p.stmt(ast.Text{Raw: tok.Text}, tok.Span.Range), true
	case token.Comment:
		p.advance()
		n, ok = p.stmt(ast.Comment{Text: commentBody(tok.Text)}, tok.Span.Range), true
	case token.OutputOpen:
		n, ok = p.parseOutput()
	case token.StmtOpen:
		n, ok = p.parseTag()
	default:
		// в режиме данных лексер других токенов не выдаёт
		p.advance()
		return n, false
	}
	if ok && p.depth == 0 && countsAsContent(*n.Body()) {
		p.sawContent = true
	}
	return n, ok
}

func commentBody(raw string) string {
	raw = strings.TrimPrefix(raw, "{#")
	return strings.TrimSuffix(raw, "#}")
}

// countsAsContent reports whether s makes a later extends tag misplaced.
func countsAsContent(s ast.Stmt) bool {
	switch s := s.(type) {
	case ast.Text:
		return strings.TrimSpace(s.Raw) != ""
	case ast.Comment, ast.Extends:
		return false
	}
	return true
}

func (p *Parser) parseOutput() (ast.Node[ast.Stmt], bool) {
	open := p.advance()
	e, ok := p.parseExpr()
	if !ok {
		p.skipTag()
		return ast.Node[ast.Stmt]{}, false
	}
	end := p.closeTag(open)
	return p.stmt(ast.Output{Expr: e.n}, source.NewByteRange(open.Span.Start(), end)), true
}

// parseTag выбирает разбор по ключевому слову после `{%`.
func (p *Parser) parseTag() (ast.Node[ast.Stmt], bool) {
	open := p.advance()
	kw := p.peek()
	switch kw.Kind {
	case token.KwIf:
		return p.parseIf(open)
	case token.KwFor:
		return p.parseFor(open)
	case token.KwSet:
		return p.parseSet(open)
	case token.KwBlock:
		return p.parseBlock(open)
	case token.KwExtends:
		return p.parseExtends(open)
	case token.KwInclude:
		return p.parseInclude(open)
	case token.KwMacro:
		return p.parseMacro(open)
	case token.KwElif, token.KwElse, token.KwEndif, token.KwEndfor, token.KwEndblock, token.KwEndmacro:
		p.report(diag.SynUnexpectedEndTag, diag.SevError, kw.Span, "unexpected '"+kw.Text+"' without a matching block")
	case token.Ident:
		p.report(diag.SynUnknownTag, diag.SevError, kw.Span, "unknown tag '"+kw.Text+"'")
	case token.StmtClose, token.EOF:
		p.report(diag.SynUnknownTag, diag.SevError, open.Span, "empty tag")
	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, kw.Span, "unexpected '"+kw.Text+"' at start of tag")
	}
	p.skipTag()
	return ast.Node[ast.Stmt]{}, false
}

// parseTagExpr parses an expression inside a tag. On failure the rest of
// the tag is skipped and false is returned; the tag is then already closed.
func (p *Parser) parseTagExpr() (pexpr, uint32, bool) {
	e, ok := p.parseExpr()
	if !ok {
		return pexpr{}, p.skipTag(), false
	}
	return e, 0, true
}

// parseTarget разбирает цель присваивания: имя или `a, b`.
func (p *Parser) parseTarget() (pexpr, bool) {
	first, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a name")
	if !ok {
		return pexpr{}, false
	}
	names := []pexpr{p.expr(ast.Name{Ident: first.Text}, first.Span.Range)}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a name after ','")
		if !ok {
			return pexpr{}, false
		}
		names = append(names, p.expr(ast.Name{Ident: next.Text}, next.Span.Range))
	}
	if len(names) == 1 {
		return names[0], true
	}
	rng := names[0].r.Union(names[len(names)-1].r)
	return p.expr(ast.List{Items: p.exprList(names, rng)}, rng), true
}

// {% set target = value %}
func (p *Parser) parseSet(open token.Token) (ast.Node[ast.Stmt], bool) {
	p.advance() // set
	target, ok := p.parseTarget()
	if !ok {
		p.skipTag()
		return ast.Node[ast.Stmt]{}, false
	}
	if _, ok := p.expect(token.Assign, diag.SynSetExpectAssign, "expected '=' after set target"); !ok {
		p.skipTag()
		return ast.Node[ast.Stmt]{}, false
	}
	value, _, ok := p.parseTagExpr()
	if !ok {
		return ast.Node[ast.Stmt]{}, false
	}
	end := p.closeTag(open)
	return p.stmt(ast.Set{Target: target.n, Value: value.n}, source.NewByteRange(open.Span.Start(), end)), true
}

// {% extends template %}
func (p *Parser) parseExtends(open token.Token) (ast.Node[ast.Stmt], bool) {
	kw := p.advance()
	if p.depth > 0 || p.sawContent {
		p.report(diag.SynExtendsNotFirst, diag.SevWarning, kw.Span, "'extends' should be the first tag of the template")
	}
	tmpl, _, ok := p.parseTagExpr()
	if !ok {
		return ast.Node[ast.Stmt]{}, false
	}
	end := p.closeTag(open)
	return p.stmt(ast.Extends{Template: tmpl.n}, source.NewByteRange(open.Span.Start(), end)), true
}

// {% include template [ignore missing] [with|without context] %}
func (p *Parser) parseInclude(open token.Token) (ast.Node[ast.Stmt], bool) {
	p.advance() // include
	tmpl, _, ok := p.parseTagExpr()
	if !ok {
		return ast.Node[ast.Stmt]{}, false
	}
	inc := ast.Include{Template: tmpl.n}
	if p.atWord("ignore") && p.peekN(1).Text == "missing" {
		p.advance()
		p.advance()
		inc.IgnoreMissing = true
	}
	if (p.atWord("with") || p.atWord("without")) && p.peekN(1).Text == "context" {
		p.advance()
		p.advance()
	}
	end := p.closeTag(open)
	return p.stmt(inc, source.NewByteRange(open.Span.Start(), end)), true
}

// atWord reports whether the next token is the identifier w.
func (p *Parser) atWord(w string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == w
}
