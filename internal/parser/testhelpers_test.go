package parser

import (
	"fmt"
	"strings"
	"testing"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func parseSource(t *testing.T, input string) (ast.Node[ast.Document], *source.File, *diag.Bag) {
	return parseSourceWithOptions(t, input, Options{})
}

func parseSourceWithOptions(t *testing.T, input string, opts Options) (ast.Node[ast.Document], *source.File, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.jinja", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	if opts.MaxErrors == 0 {
		opts.MaxErrors = 100
	}
	opts.Reporter = diag.BagReporter{Bag: bag}

	res := ParseFile(file, opts)
	return res.Doc, file, bag
}

// parseClean parses input and fails the test on any diagnostic.
func parseClean(t *testing.T, input string) (ast.Node[ast.Document], *source.File) {
	t.Helper()
	doc, file, bag := parseSource(t, input)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	return doc, file
}

func stmts(doc ast.Node[ast.Document]) []ast.Node[ast.Stmt] {
	return doc.Body().Body.Nodes()
}

// codes returns the diagnostic IDs in report order.
func codes(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Code.ID())
	}
	return out
}

// spanText returns the source text covered by a node span.
func spanText(file *source.File, sp source.Span) string {
	return string(file.Content[sp.Start():sp.End()])
}
