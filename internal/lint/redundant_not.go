package lint

import (
	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
)

// RedundantNot flags `not not x`.
type RedundantNot struct{}

func (RedundantNot) Name() string    { return "redundant-not" }
func (RedundantNot) Code() diag.Code { return diag.LintRedundantNot }

func (RedundantNot) Match(e ast.Expr) bool {
	_, ok := doubleNot(e)
	return ok
}

func (RedundantNot) Rewrite(e ast.Expr) (ast.Expr, error) {
	inner, _ := doubleNot(e)
	return *inner.Body(), nil
}

func (r RedundantNot) Check(ctx *Context, doc ast.NodeRef[ast.Document]) {
	walkExprs(doc, func(ref ast.NodeRef[ast.Expr]) {
		if !r.Match(*ref.Body()) {
			return
		}
		b := ctx.Report(diag.SevWarning, ref.Span(), "double negation has no effect")
		if edit, ok := ctx.fixFor(r, ref); ok {
			b.WithFix("remove 'not not'", edit)
		}
		b.Emit()
	})
}

// doubleNot returns x for `not not x`.
func doubleNot(e ast.Expr) (ast.Node[ast.Expr], bool) {
	outer, ok := e.(ast.Unary)
	if !ok || outer.Op != ast.UnNot || outer.Operand.IsZero() {
		return ast.Node[ast.Expr]{}, false
	}
	inner, ok := (*outer.Operand.Body()).(ast.Unary)
	if !ok || inner.Op != ast.UnNot || inner.Operand.IsZero() {
		return ast.Node[ast.Expr]{}, false
	}
	return inner.Operand, true
}
