package ast

import (
	"errors"
)

// SkipChildren may be returned by a visitor method to stop the walk from
// descending into the current node. It is never returned by a walk.
var SkipChildren = errors.New("skip children")

// Visitor receives read views in preorder: a parent before its children,
// siblings in source order. Any error other than SkipChildren aborts the walk.
type Visitor interface {
	VisitDocument(NodeRef[Document]) error
	VisitStmt(NodeRef[Stmt]) error
	VisitExpr(NodeRef[Expr]) error
}

// MutVisitor is Visitor with exclusive views. A node replaced by the visitor
// is not descended into; call WalkStmtMut or WalkExprMut on it to inspect the
// new subtree.
type MutVisitor interface {
	VisitDocument(NodeRefMut[Document]) error
	VisitStmt(NodeRefMut[Stmt]) error
	VisitExpr(NodeRefMut[Expr]) error
}

// VisitorFuncs adapts plain functions to Visitor. Nil fields visit nothing
// but still descend.
type VisitorFuncs struct {
	Document func(NodeRef[Document]) error
	Stmt     func(NodeRef[Stmt]) error
	Expr     func(NodeRef[Expr]) error
}

func (f VisitorFuncs) VisitDocument(r NodeRef[Document]) error {
	if f.Document == nil {
		return nil
	}
	return f.Document(r)
}

func (f VisitorFuncs) VisitStmt(r NodeRef[Stmt]) error {
	if f.Stmt == nil {
		return nil
	}
	return f.Stmt(r)
}

func (f VisitorFuncs) VisitExpr(r NodeRef[Expr]) error {
	if f.Expr == nil {
		return nil
	}
	return f.Expr(r)
}

// MutVisitorFuncs adapts plain functions to MutVisitor.
type MutVisitorFuncs struct {
	Document func(NodeRefMut[Document]) error
	Stmt     func(NodeRefMut[Stmt]) error
	Expr     func(NodeRefMut[Expr]) error
}

func (f MutVisitorFuncs) VisitDocument(m NodeRefMut[Document]) error {
	if f.Document == nil {
		return nil
	}
	return f.Document(m)
}

func (f MutVisitorFuncs) VisitStmt(m NodeRefMut[Stmt]) error {
	if f.Stmt == nil {
		return nil
	}
	return f.Stmt(m)
}

func (f MutVisitorFuncs) VisitExpr(m NodeRefMut[Expr]) error {
	if f.Expr == nil {
		return nil
	}
	return f.Expr(m)
}

// Walk traverses doc and everything below it.
func Walk(v Visitor, doc Node[Document]) error {
	err := v.VisitDocument(doc.Ref())
	if err != nil {
		return skipped(err)
	}
	return WalkStmts(v, &doc.Body().Body)
}

// WalkStmts traverses every statement of list in order.
func WalkStmts(v Visitor, list *NodeList[Stmt]) error {
	for _, n := range list.Nodes() {
		if err := WalkStmt(v, n); err != nil {
			return err
		}
	}
	return nil
}

// WalkStmt traverses n and its subtree.
func WalkStmt(v Visitor, n Node[Stmt]) error {
	if err := v.VisitStmt(n.Ref()); err != nil {
		return skipped(err)
	}
	return eachStmtChild(*n.Body(),
		func(s *NodeList[Stmt]) error { return WalkStmts(v, s) },
		func(e Node[Expr]) error { return WalkExpr(v, e) },
	)
}

// WalkExprs traverses every expression of list in order.
func WalkExprs(v Visitor, list *NodeList[Expr]) error {
	for _, n := range list.Nodes() {
		if err := WalkExpr(v, n); err != nil {
			return err
		}
	}
	return nil
}

// WalkExpr traverses n and its subtree. Zero nodes are skipped.
func WalkExpr(v Visitor, n Node[Expr]) error {
	if n.IsZero() {
		return nil
	}
	if err := v.VisitExpr(n.Ref()); err != nil {
		return skipped(err)
	}
	return eachExprChild(*n.Body(),
		func(e Node[Expr]) error { return WalkExpr(v, e) },
		func(l *NodeList[Expr]) error { return WalkExprs(v, l) },
	)
}

// WalkMut is the mutating counterpart of Walk.
func WalkMut(v MutVisitor, doc Node[Document]) error {
	m := doc.RefMut()
	err := v.VisitDocument(m)
	m.Release()
	if err != nil || m.Replaced() {
		return skipped(err)
	}
	return WalkStmtsMut(v, &doc.Body().Body)
}

// WalkStmtsMut traverses every statement of list with exclusive views.
func WalkStmtsMut(v MutVisitor, list *NodeList[Stmt]) error {
	for _, n := range list.Nodes() {
		if err := WalkStmtMut(v, n); err != nil {
			return err
		}
	}
	return nil
}

// WalkStmtMut traverses n and its subtree with exclusive views.
func WalkStmtMut(v MutVisitor, n Node[Stmt]) error {
	m := n.RefMut()
	err := v.VisitStmt(m)
	m.Release()
	if err != nil || m.Replaced() {
		return skipped(err)
	}
	return eachStmtChild(*n.Body(),
		func(s *NodeList[Stmt]) error { return WalkStmtsMut(v, s) },
		func(e Node[Expr]) error { return WalkExprMut(v, e) },
	)
}

// WalkExprsMut traverses every expression of list with exclusive views.
func WalkExprsMut(v MutVisitor, list *NodeList[Expr]) error {
	for _, n := range list.Nodes() {
		if err := WalkExprMut(v, n); err != nil {
			return err
		}
	}
	return nil
}

// WalkExprMut traverses n and its subtree with exclusive views.
func WalkExprMut(v MutVisitor, n Node[Expr]) error {
	if n.IsZero() {
		return nil
	}
	m := n.RefMut()
	err := v.VisitExpr(m)
	m.Release()
	if err != nil || m.Replaced() {
		return skipped(err)
	}
	return eachExprChild(*n.Body(),
		func(e Node[Expr]) error { return WalkExprMut(v, e) },
		func(l *NodeList[Expr]) error { return WalkExprsMut(v, l) },
	)
}

func skipped(err error) error {
	if errors.Is(err, SkipChildren) {
		return nil
	}
	return err
}

// eachStmtChild calls stmts and exprs for the children of s in field order.
func eachStmtChild(s Stmt, stmts func(*NodeList[Stmt]) error, exprs func(Node[Expr]) error) error {
	var err error
	switch s := s.(type) {
	case Text, Comment:
	case Output:
		err = exprs(s.Expr)
	case If:
		err = firstErr(
			func() error { return exprs(s.Cond) },
			func() error { return stmts(&s.Then) },
			func() error { return stmts(&s.Else) },
		)
	case For:
		err = firstErr(
			func() error { return exprs(s.Target) },
			func() error { return exprs(s.Iter) },
			func() error { return stmts(&s.Body) },
			func() error { return stmts(&s.Else) },
		)
	case Set:
		err = firstErr(
			func() error { return exprs(s.Target) },
			func() error { return exprs(s.Value) },
		)
	case Block:
		err = stmts(&s.Body)
	case Extends:
		err = exprs(s.Template)
	case Include:
		err = exprs(s.Template)
	case Macro:
		// параметры это выражения, но обходятся как список
		for _, p := range s.Params.Nodes() {
			if err = exprs(p); err != nil {
				return err
			}
		}
		err = stmts(&s.Body)
	}
	return err
}

// eachExprChild calls exprs and lists for the children of e in field order.
func eachExprChild(e Expr, exprs func(Node[Expr]) error, lists func(*NodeList[Expr]) error) error {
	switch e := e.(type) {
	case Literal, Name:
		return nil
	case Unary:
		return exprs(e.Operand)
	case Binary:
		return firstErr(
			func() error { return exprs(e.Lhs) },
			func() error { return exprs(e.Rhs) },
		)
	case Attr:
		return exprs(e.Object)
	case Index:
		return firstErr(
			func() error { return exprs(e.Object) },
			func() error { return exprs(e.Key) },
		)
	case Call:
		return firstErr(
			func() error { return exprs(e.Callee) },
			func() error { return lists(&e.Args) },
		)
	case Filter:
		return firstErr(
			func() error { return exprs(e.Subject) },
			func() error { return lists(&e.Args) },
		)
	case Test:
		return exprs(e.Subject)
	case List:
		return lists(&e.Items)
	case Cond:
		return firstErr(
			func() error { return exprs(e.Then) },
			func() error { return exprs(e.Cond) },
			func() error { return exprs(e.Else) },
		)
	case Keyword:
		return exprs(e.Value)
	}
	return nil
}

func firstErr(steps ...func() error) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
