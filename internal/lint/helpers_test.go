package lint

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
	"bracketlint/internal/parser"
	"bracketlint/internal/source"
)

func parseTemplate(t *testing.T, input string) (ast.Node[ast.Document], *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.html", []byte(input)))
	bag := diag.NewBag(0)
	res := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	require.Zero(t, bag.Len(), "unexpected syntax diagnostics")
	return res.Doc, file
}

func lintTemplate(t *testing.T, input string, rules ...Rule) (*diag.Bag, *source.File) {
	t.Helper()
	doc, file := parseTemplate(t, input)
	bag := diag.NewBag(0)
	Run(doc, file, rules, diag.BagReporter{Bag: bag})
	return bag, file
}

func messages(bag *diag.Bag) []string {
	var out []string
	for _, d := range bag.Items() {
		out = append(out, d.Message)
	}
	return out
}
