package lint

import (
	"fmt"
	"slices"
	"strings"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

// Rule is one lint check.
type Rule interface {
	Name() string
	Code() diag.Code
	Check(ctx *Context, doc ast.NodeRef[ast.Document])
}

// Fixer is a rule whose findings are expression rewrites. Match must accept
// exactly the payloads Rewrite is meant for; Rewrite may still refuse one by
// returning an error.
type Fixer interface {
	Rule
	Match(e ast.Expr) bool
	Rewrite(e ast.Expr) (ast.Expr, error)
}

// Context is handed to a rule for one document.
type Context struct {
	File     *source.File
	Reporter diag.Reporter

	rule Rule
}

func NewContext(file *source.File, r diag.Reporter) *Context {
	return &Context{File: file, Reporter: r}
}

// Report starts a diagnostic under the code of the running rule.
func (c *Context) Report(sev diag.Severity, sp source.Span, msg string) *diag.ReportBuilder {
	return diag.NewReportBuilder(c.Reporter, sev, c.rule.Code(), sp, msg)
}

// Text returns the source text under sp.
func (c *Context) Text(sp source.Span) string {
	return string(c.File.Content[sp.Start():sp.End()])
}

// fixFor builds the fix of a Fixer finding at r, or false when the rewrite
// is refused.
func (c *Context) fixFor(f Fixer, r ast.NodeRef[ast.Expr]) (diag.FixEdit, bool) {
	next, err := f.Rewrite(*r.Body())
	if err != nil {
		return diag.FixEdit{}, false
	}
	sp := r.Span()
	return diag.FixEdit{
		Span:    sp,
		NewText: ast.FormatReplacement(*r.Body(), next),
		OldText: c.Text(sp),
	}, true
}

// Run checks doc with every rule in order.
func Run(doc ast.Node[ast.Document], file *source.File, rules []Rule, r diag.Reporter) {
	ctx := NewContext(file, r)
	ref := doc.Ref()
	for _, rule := range rules {
		ctx.rule = rule
		rule.Check(ctx, ref)
	}
}

// walkExprs calls fn for every expression of doc in preorder.
func walkExprs(doc ast.NodeRef[ast.Document], fn func(ast.NodeRef[ast.Expr])) {
	v := ast.VisitorFuncs{Expr: func(r ast.NodeRef[ast.Expr]) error {
		fn(r)
		return nil
	}}
	// visitor never fails
	_ = ast.WalkStmts(v, &doc.Body().Body)
}

func walkStmts(doc ast.NodeRef[ast.Document], fn func(ast.NodeRef[ast.Stmt])) {
	v := ast.VisitorFuncs{Stmt: func(r ast.NodeRef[ast.Stmt]) error {
		fn(r)
		return nil
	}}
	_ = ast.WalkStmts(v, &doc.Body().Body)
}

// ===== реестр правил =====

var builtin = []Rule{
	NoneComparison{},
	EmptyBlock{},
	ConstantCondition{},
	RedundantNot{},
}

// All returns the built-in rules in reporting order.
func All() []Rule {
	return slices.Clone(builtin)
}

// Names returns the names of the built-in rules.
func Names() []string {
	names := make([]string, len(builtin))
	for i, r := range builtin {
		names[i] = r.Name()
	}
	return names
}

// Lookup finds a built-in rule by name.
func Lookup(name string) (Rule, bool) {
	for _, r := range builtin {
		if r.Name() == name {
			return r, true
		}
	}
	return nil, false
}

// Select returns the built-in rules minus the disabled ones. Unknown names
// are an error so that typos in configuration do not go unnoticed.
func Select(disabled []string) ([]Rule, error) {
	var unknown []string
	for _, name := range disabled {
		if _, ok := Lookup(name); !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown lint rule(s): %s (known: %s)",
			strings.Join(unknown, ", "), strings.Join(Names(), ", "))
	}
	return slices.DeleteFunc(All(), func(r Rule) bool {
		return slices.Contains(disabled, r.Name())
	}), nil
}
