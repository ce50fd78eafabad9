package ast

import (
	"strings"
)

// FormatExpr renders e back to template source with the minimal set of
// parentheses. It is used to turn a rewritten payload into a text edit.
func FormatExpr(e Expr) string {
	var sb strings.Builder
	writeExpr(&sb, e, PrecCond)
	return sb.String()
}

// FormatReplacement renders next for the place old occupied in the source,
// adding parentheses when next binds looser than old did.
func FormatReplacement(old, next Expr) string {
	var sb strings.Builder
	writeExpr(&sb, next, exprPrec(old))
	return sb.String()
}

func exprPrec(e Expr) int {
	switch e := e.(type) {
	case Cond, Keyword:
		return PrecCond
	case Binary:
		return e.Op.Precedence()
	case Unary:
		if e.Op == UnNot {
			return PrecNot
		}
		return PrecUnary
	case Test:
		return PrecCompare
	}
	return PrecPostfix
}

func writeExpr(sb *strings.Builder, e Expr, minPrec int) {
	paren := exprPrec(e) < minPrec
	if paren {
		sb.WriteByte('(')
	}
	switch e := e.(type) {
	case Literal:
		sb.WriteString(e.Raw)
	case Name:
		sb.WriteString(e.Ident)
	case Unary:
		sb.WriteString(e.Op.String())
		if e.Op == UnNot {
			sb.WriteByte(' ')
		}
		writeChild(sb, e.Operand, exprPrec(e))
	case Binary:
		p := e.Op.Precedence()
		writeChild(sb, e.Lhs, p)
		sb.WriteByte(' ')
		sb.WriteString(e.Op.String())
		sb.WriteByte(' ')
		// левоассоциативно: правый операнд того же уровня берём в скобки
		writeChild(sb, e.Rhs, p+1)
	case Attr:
		writeChild(sb, e.Object, PrecPostfix)
		sb.WriteByte('.')
		sb.WriteString(e.Name)
	case Index:
		writeChild(sb, e.Object, PrecPostfix)
		sb.WriteByte('[')
		writeChild(sb, e.Key, PrecCond)
		sb.WriteByte(']')
	case Call:
		writeChild(sb, e.Callee, PrecPostfix)
		writeArgs(sb, &e.Args)
	case Filter:
		writeChild(sb, e.Subject, PrecPostfix)
		sb.WriteByte('|')
		sb.WriteString(e.Name)
		if e.Args.IsValid() {
			writeArgs(sb, &e.Args)
		}
	case Test:
		writeChild(sb, e.Subject, PrecCompare+1)
		sb.WriteString(" is ")
		if e.Negated {
			sb.WriteString("not ")
		}
		sb.WriteString(e.Name)
	case List:
		sb.WriteByte('[')
		writeList(sb, &e.Items)
		sb.WriteByte(']')
	case Cond:
		writeChild(sb, e.Then, PrecOr)
		sb.WriteString(" if ")
		writeChild(sb, e.Cond, PrecOr)
		if !e.Else.IsZero() {
			sb.WriteString(" else ")
			writeChild(sb, e.Else, PrecCond)
		}
	case Keyword:
		sb.WriteString(e.Name)
		sb.WriteByte('=')
		writeChild(sb, e.Value, PrecCond)
	}
	if paren {
		sb.WriteByte(')')
	}
}

func writeChild(sb *strings.Builder, n Node[Expr], minPrec int) {
	writeExpr(sb, *n.Body(), minPrec)
}

func writeArgs(sb *strings.Builder, args *NodeList[Expr]) {
	sb.WriteByte('(')
	writeList(sb, args)
	sb.WriteByte(')')
}

func writeList(sb *strings.Builder, items *NodeList[Expr]) {
	for i, n := range items.Nodes() {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeChild(sb, n, PrecCond)
	}
}
