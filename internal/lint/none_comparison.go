package lint

import (
	"errors"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
)

// NoneComparison flags `x == none` and `x != none`, which should be written
// as the `none` test.
type NoneComparison struct{}

func (NoneComparison) Name() string    { return "none-comparison" }
func (NoneComparison) Code() diag.Code { return diag.LintNoneComparison }

var errBothNone = errors.New("both operands are none")

func (NoneComparison) Match(e ast.Expr) bool {
	bin, ok := e.(ast.Binary)
	if !ok || (bin.Op != ast.BinEq && bin.Op != ast.BinNe) {
		return false
	}
	return isNone(bin.Lhs) || isNone(bin.Rhs)
}

func (NoneComparison) Rewrite(e ast.Expr) (ast.Expr, error) {
	bin := e.(ast.Binary)
	subject := bin.Lhs
	if isNone(subject) {
		subject = bin.Rhs
	}
	if isNone(subject) {
		return nil, errBothNone
	}
	return ast.Test{Subject: subject, Name: "none", Negated: bin.Op == ast.BinNe}, nil
}

func (r NoneComparison) Check(ctx *Context, doc ast.NodeRef[ast.Document]) {
	walkExprs(doc, func(ref ast.NodeRef[ast.Expr]) {
		if !r.Match(*ref.Body()) {
			return
		}
		want := "is none"
		if (*ref.Body()).(ast.Binary).Op == ast.BinNe {
			want = "is not none"
		}
		b := ctx.Report(diag.SevWarning, ref.Span(), "comparison to none, use '"+want+"'")
		if edit, ok := ctx.fixFor(r, ref); ok {
			b.WithFix("use '"+want+"'", edit)
		}
		b.Emit()
	})
}

func isNone(n ast.Node[ast.Expr]) bool {
	if n.IsZero() {
		return false
	}
	lit, ok := (*n.Body()).(ast.Literal)
	return ok && lit.Kind == ast.LitNone
}
