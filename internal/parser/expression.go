package parser

import (
	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений:
// `then if cond [else otherwise]` поверх бинарных операторов.
func (p *Parser) parseExpr() (pexpr, bool) {
	then, ok := p.parseBinary(ast.PrecOr)
	if !ok || !p.at(token.KwIf) {
		return then, ok
	}
	p.advance() // if
	cond, ok := p.parseBinary(ast.PrecOr)
	if !ok {
		return pexpr{}, false
	}
	out := ast.Cond{Cond: cond.n, Then: then.n}
	rng := then.r.Union(cond.r)
	if p.at(token.KwElse) {
		p.advance()
		els, ok := p.parseExpr()
		if !ok {
			return pexpr{}, false
		}
		out.Else = els.n
		rng = rng.Union(els.r)
	}
	return p.expr(out, rng), true
}

// parseBinary реализует Pratt parsing для бинарных операторов и тестов `is`.
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinary(minPrec int) (pexpr, bool) {
	left, ok := p.parseOperand()
	if !ok {
		return pexpr{}, false
	}

	for {
		if p.at(token.KwIs) && ast.PrecCompare >= minPrec {
			if left, ok = p.parseTest(left); !ok {
				return pexpr{}, false
			}
			continue
		}

		op, width, isOp := p.binaryOpAt()
		if !isOp || op.Precedence() < minPrec {
			break
		}
		for range width {
			p.advance()
		}

		// все операторы левоассоциативны
		right, ok := p.parseBinary(op.Precedence() + 1)
		if !ok {
			return pexpr{}, false
		}
		left = p.expr(ast.Binary{Op: op, Lhs: left.n, Rhs: right.n}, left.r.Union(right.r))
	}
	return left, true
}

// parseOperand handles the `not` prefix, which binds looser than comparisons.
func (p *Parser) parseOperand() (pexpr, bool) {
	if !p.at(token.KwNot) {
		return p.parseUnary()
	}
	notTok := p.advance()
	operand, ok := p.parseBinary(ast.PrecNot)
	if !ok {
		return pexpr{}, false
	}
	return p.expr(ast.Unary{Op: ast.UnNot, Operand: operand.n}, notTok.Span.Range.Union(operand.r)), true
}

// parseUnary обрабатывает унарные + и -
func (p *Parser) parseUnary() (pexpr, bool) {
	op, isUnary := unaryOp(p.peek().Kind)
	if !isUnary {
		return p.parsePostfix()
	}
	opTok := p.advance()
	operand, ok := p.parseUnary()
	if !ok {
		return pexpr{}, false
	}
	return p.expr(ast.Unary{Op: op, Operand: operand.n}, opTok.Span.Range.Union(operand.r)), true
}

// parseTest разбирает `subject is [not] name`.
func (p *Parser) parseTest(subject pexpr) (pexpr, bool) {
	p.advance() // is
	negated := false
	if p.at(token.KwNot) {
		p.advance()
		negated = true
	}
	name, ok := p.expectWord("expected test name after 'is'")
	if !ok {
		return pexpr{}, false
	}
	return p.expr(ast.Test{Subject: subject.n, Name: name.Text, Negated: negated}, subject.r.Union(name.Span.Range)), true
}

// parsePrimary: имена, литералы, скобки и списки.
func (p *Parser) parsePrimary() (pexpr, bool) {
	tok := p.peek()
	if kind, ok := literalKind(tok.Kind); ok {
		p.advance()
		return p.expr(ast.Literal{Kind: kind, Raw: tok.Text}, tok.Span.Range), true
	}
	switch tok.Kind {
	case token.Ident:
		p.advance()
		return p.expr(ast.Name{Ident: tok.Text}, tok.Span.Range), true
	case token.LParen:
		// скобки входят в range родителя, но не в span самого узла:
		// замена узла сохраняет их в тексте
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return pexpr{}, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return pexpr{}, false
		}
		return pexpr{n: inner.n, r: open.Span.Range.Union(closeTok.Span.Range)}, true
	case token.LBracket:
		open := p.advance()
		items, end, ok := p.parseItems(token.RBracket, false)
		if !ok {
			return pexpr{}, false
		}
		rng := open.Span.Range.Union(end)
		return p.expr(ast.List{Items: p.exprList(items, rng)}, rng), true
	}
	p.err(diag.SynExpectExpression, "expected expression, got '"+tok.Text+"'")
	return pexpr{}, false
}
