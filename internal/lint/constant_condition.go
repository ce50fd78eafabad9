package lint

import (
	"strconv"
	"strings"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
)

// ConstantCondition flags if tags and conditional expressions whose
// condition is a literal, possibly negated.
type ConstantCondition struct{}

func (ConstantCondition) Name() string    { return "constant-condition" }
func (ConstantCondition) Code() diag.Code { return diag.LintConstantCondition }

func (ConstantCondition) Check(ctx *Context, doc ast.NodeRef[ast.Document]) {
	check := func(cond ast.Node[ast.Expr]) {
		if cond.IsZero() {
			return
		}
		if truth, ok := constTruth(*cond.Body()); ok {
			ctx.Report(diag.SevWarning, cond.Span(), "condition is always "+strconv.FormatBool(truth)).Emit()
		}
	}
	v := ast.VisitorFuncs{
		Stmt: func(ref ast.NodeRef[ast.Stmt]) error {
			if s, ok := (*ref.Body()).(ast.If); ok {
				check(s.Cond)
			}
			return nil
		},
		Expr: func(ref ast.NodeRef[ast.Expr]) error {
			if e, ok := (*ref.Body()).(ast.Cond); ok {
				check(e.Cond)
			}
			return nil
		},
	}
	_ = ast.WalkStmts(v, &doc.Body().Body)
}

// constTruth evaluates the truthiness of a literal the way the template
// engine would.
func constTruth(e ast.Expr) (bool, bool) {
	switch e := e.(type) {
	case ast.Literal:
		switch e.Kind {
		case ast.LitNone:
			return false, true
		case ast.LitBool:
			return strings.EqualFold(e.Raw, "true"), true
		case ast.LitString:
			return len(e.Raw) > 2, true
		case ast.LitInt, ast.LitFloat:
			f, err := strconv.ParseFloat(strings.ReplaceAll(e.Raw, "_", ""), 64)
			if err != nil {
				return false, false
			}
			return f != 0, true
		}
	case ast.Unary:
		if e.Op == ast.UnNot && !e.Operand.IsZero() {
			truth, ok := constTruth(*e.Operand.Body())
			return !truth, ok
		}
	}
	return false, false
}
