package ast

// helpers for building small trees by hand; spans are arbitrary but valid

var nextOffset uint32

func at() (uint32, uint32) {
	nextOffset += 2
	return nextOffset - 2, nextOffset - 1
}

func exprNode(e Expr) Node[Expr] {
	s, e2 := at()
	return NewNode[Expr](e, sp(s, e2))
}

func stmtNode(s Stmt) Node[Stmt] {
	a, b := at()
	return NewNode[Stmt](s, sp(a, b))
}

func nameExpr(ident string) Node[Expr] { return exprNode(Name{Ident: ident}) }

func litExpr(kind LitKind, raw string) Node[Expr] { return exprNode(Literal{Kind: kind, Raw: raw}) }

func binExpr(op BinaryOp, lhs, rhs Node[Expr]) Node[Expr] {
	return exprNode(Binary{Op: op, Lhs: lhs, Rhs: rhs})
}

func exprList(items ...Node[Expr]) NodeList[Expr] {
	a, b := at()
	return NewList(items, sp(a, b))
}

func stmtList(items ...Node[Stmt]) NodeList[Stmt] {
	a, b := at()
	return NewList(items, sp(a, b))
}

func document(stmts ...Node[Stmt]) Node[Document] {
	return NewNode(Document{Body: stmtList(stmts...)}, sp(0, 1))
}
