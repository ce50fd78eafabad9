package parser

import (
	"bracketlint/internal/ast"
	"bracketlint/internal/token"
)

// binaryOpAt распознаёт бинарный оператор в текущей позиции.
// Возвращает оператор и число токенов, которые он занимает ("not in" занимает два).
func (p *Parser) binaryOpAt() (ast.BinaryOp, int, bool) {
	switch p.peek().Kind {
	case token.KwOr:
		return ast.BinOr, 1, true
	case token.KwAnd:
		return ast.BinAnd, 1, true
	case token.EqEq:
		return ast.BinEq, 1, true
	case token.BangEq:
		return ast.BinNe, 1, true
	case token.Lt:
		return ast.BinLt, 1, true
	case token.LtEq:
		return ast.BinLe, 1, true
	case token.Gt:
		return ast.BinGt, 1, true
	case token.GtEq:
		return ast.BinGe, 1, true
	case token.KwIn:
		return ast.BinIn, 1, true
	case token.KwNot:
		if p.peekN(1).Kind == token.KwIn {
			return ast.BinNotIn, 2, true
		}
	case token.Tilde:
		return ast.BinConcat, 1, true
	case token.Plus:
		return ast.BinAdd, 1, true
	case token.Minus:
		return ast.BinSub, 1, true
	case token.Star:
		return ast.BinMul, 1, true
	case token.Slash:
		return ast.BinDiv, 1, true
	case token.SlashSlash:
		return ast.BinFloorDiv, 1, true
	case token.Percent:
		return ast.BinMod, 1, true
	case token.StarStar:
		return ast.BinPow, 1, true
	}
	return 0, 0, false
}

func unaryOp(k token.Kind) (ast.UnaryOp, bool) {
	switch k {
	case token.Minus:
		return ast.UnNeg, true
	case token.Plus:
		return ast.UnPos, true
	}
	return 0, false
}

func literalKind(k token.Kind) (ast.LitKind, bool) {
	switch k {
	case token.StringLit:
		return ast.LitString, true
	case token.IntLit:
		return ast.LitInt, true
	case token.FloatLit:
		return ast.LitFloat, true
	case token.KwTrue, token.KwFalse:
		return ast.LitBool, true
	case token.KwNone:
		return ast.LitNone, true
	}
	return 0, false
}
