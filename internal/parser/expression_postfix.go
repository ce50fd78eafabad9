package parser

import (
	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

// parsePostfix обрабатывает постфиксные операторы: .attr, [key], (args), |filter
func (p *Parser) parsePostfix() (pexpr, bool) {
	expr, ok := p.parsePrimary()
	if !ok {
		return pexpr{}, false
	}

	for {
		switch p.peek().Kind {
		case token.Dot:
			p.advance()
			name := p.peek()
			if !name.IsWord() && name.Kind != token.IntLit {
				p.err(diag.SynExpectIdentifier, "expected attribute name after '.'")
				return pexpr{}, false
			}
			p.advance()
			expr = p.expr(ast.Attr{Object: expr.n, Name: name.Text}, expr.r.Union(name.Span.Range))

		case token.LBracket:
			p.advance()
			key, ok := p.parseExpr()
			if !ok {
				return pexpr{}, false
			}
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']'")
			if !ok {
				return pexpr{}, false
			}
			expr = p.expr(ast.Index{Object: expr.n, Key: key.n}, expr.r.Union(closeTok.Span.Range))

		case token.LParen:
			open := p.advance()
			args, end, ok := p.parseItems(token.RParen, true)
			if !ok {
				return pexpr{}, false
			}
			argsRange := open.Span.Range.Union(end)
			expr = p.expr(ast.Call{Callee: expr.n, Args: p.exprList(args, argsRange)}, expr.r.Union(end))

		case token.Pipe:
			p.advance()
			name, ok := p.expectWord("expected filter name after '|'")
			if !ok {
				return pexpr{}, false
			}
			filter := ast.Filter{Subject: expr.n, Name: name.Text}
			rng := expr.r.Union(name.Span.Range)
			if p.at(token.LParen) {
				open := p.advance()
				args, end, ok := p.parseItems(token.RParen, true)
				if !ok {
					return pexpr{}, false
				}
				filter.Args = p.exprList(args, open.Span.Range.Union(end))
				rng = rng.Union(end)
			}
			expr = p.expr(filter, rng)

		default:
			return expr, true
		}
	}
}

// parseItems разбирает элементы через запятую до closer (открывающая скобка
// уже съедена). Допускается завершающая запятая. С keywords элементы вида
// `name=value` становятся ast.Keyword. Возвращает range закрывающей скобки.
func (p *Parser) parseItems(closer token.Kind, keywords bool) ([]pexpr, source.ByteRange, bool) {
	code := diag.SynUnclosedParen
	if closer == token.RBracket {
		code = diag.SynUnclosedBracket
	}

	var items []pexpr
	for !p.at(closer) {
		item, ok := p.parseItem(keywords)
		if !ok {
			return nil, source.ByteRange{}, false
		}
		items = append(items, item)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	closeTok, ok := p.expect(closer, code, "expected '"+closer.String()+"'")
	if !ok {
		return nil, source.ByteRange{}, false
	}
	return items, closeTok.Span.Range, true
}

func (p *Parser) parseItem(keywords bool) (pexpr, bool) {
	if keywords && p.at(token.Ident) && p.peekN(1).Kind == token.Assign {
		name := p.advance()
		p.advance() // =
		value, ok := p.parseExpr()
		if !ok {
			return pexpr{}, false
		}
		rng := name.Span.Range.Union(value.r)
		return p.expr(ast.Keyword{Name: name.Text, Value: value.n}, rng), true
	}
	return p.parseExpr()
}
