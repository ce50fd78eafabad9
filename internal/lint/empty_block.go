package lint

import (
	"strings"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
)

// EmptyBlock flags if, for, block and macro tags whose body holds nothing
// but whitespace and comments.
type EmptyBlock struct{}

func (EmptyBlock) Name() string    { return "empty-block" }
func (EmptyBlock) Code() diag.Code { return diag.LintEmptyBlock }

func (EmptyBlock) Check(ctx *Context, doc ast.NodeRef[ast.Document]) {
	walkStmts(doc, func(ref ast.NodeRef[ast.Stmt]) {
		var (
			body *ast.NodeList[ast.Stmt]
			what string
		)
		switch s := (*ref.Body()).(type) {
		case ast.If:
			body, what = &s.Then, "if"
		case ast.For:
			body, what = &s.Body, "for"
		case ast.Block:
			body, what = &s.Body, "block '"+s.Name+"'"
		case ast.Macro:
			body, what = &s.Body, "macro '"+s.Name+"'"
		default:
			return
		}
		if !body.IsValid() || !isBlank(body) {
			return
		}
		ctx.Report(diag.SevWarning, ref.Span(), "empty "+what+" body").
			WithNote(body.Span(), "body has no content").
			Emit()
	})
}

func isBlank(list *ast.NodeList[ast.Stmt]) bool {
	for ref := range list.RefIter() {
		switch s := (*ref.Body()).(type) {
		case ast.Comment:
		case ast.Text:
			if strings.TrimSpace(s.Raw) != "" {
				return false
			}
		default:
			return false
		}
	}
	return true
}
