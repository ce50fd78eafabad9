package lint

import (
	"errors"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

// FixResult is the outcome of one Autofix pass.
type FixResult struct {
	// Edits turn the file content into the rewritten tree, one per replaced
	// node, in preorder.
	Edits    []diag.FixEdit
	Replaced int
	// Failed counts matches whose rewrite was refused; their nodes are
	// left unchanged.
	Failed int
}

// Autofix rewrites every expression matched by one of the fixers among rules.
// Replaced nodes are not descended into, so the edits never overlap; a
// nested finding is picked up by the next run over the fixed source.
func Autofix(doc ast.Node[ast.Document], file *source.File, rules []Rule) (FixResult, error) {
	var fixers []Fixer
	for _, r := range rules {
		if f, ok := r.(Fixer); ok {
			fixers = append(fixers, f)
		}
	}

	var res FixResult
	if len(fixers) == 0 {
		return res, nil
	}
	v := ast.MutVisitorFuncs{Expr: func(m ast.NodeRefMut[ast.Expr]) error {
		for _, f := range fixers {
			old := *m.Body()
			if !f.Match(old) {
				continue
			}
			if err := m.Replace(f.Rewrite); err != nil {
				if errors.Is(err, ast.ErrReplaceFailed) {
					res.Failed++
					continue
				}
				return err
			}
			sp := m.Span()
			res.Edits = append(res.Edits, diag.FixEdit{
				Span:    sp,
				NewText: ast.FormatReplacement(old, *m.Body()),
				OldText: string(file.Content[sp.Start():sp.End()]),
			})
			res.Replaced++
			return nil
		}
		return nil
	}}
	if err := ast.WalkMut(v, doc); err != nil {
		return res, err
	}
	return res, nil
}
