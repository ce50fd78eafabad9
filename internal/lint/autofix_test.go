package lint

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketlint/internal/ast"
)

func outputs(doc ast.Node[ast.Document]) []string {
	var got []string
	for _, n := range doc.Body().Body.Nodes() {
		if out, ok := (*n.Body()).(ast.Output); ok {
			got = append(got, ast.FormatExpr(*out.Expr.Body()))
		}
	}
	return got
}

func TestAutofixRewritesTree(t *testing.T) {
	doc, file := parseTemplate(t, "{{ x == none }}{{ not not y }}")
	res, err := Autofix(doc, file, All())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Replaced)
	assert.Zero(t, res.Failed)

	if diff := cmp.Diff([]string{"x is none", "y"}, outputs(doc)); diff != "" {
		t.Fatalf("rewritten tree mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, res.Edits, 2)
	assert.Equal(t, "x == none", res.Edits[0].OldText)
	assert.Equal(t, "x is none", res.Edits[0].NewText)
	assert.Equal(t, "not not y", res.Edits[1].OldText)
	assert.Equal(t, "y", res.Edits[1].NewText)
}

func TestAutofixCountsRefusedRewrites(t *testing.T) {
	doc, file := parseTemplate(t, "{{ none == none }}{{ a != none }}")
	res, err := Autofix(doc, file, []Rule{NoneComparison{}})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 1, res.Replaced)
	// отказ не трогает узел
	assert.Equal(t, []string{"none == none", "a is not none"}, outputs(doc))
}

func TestAutofixDoesNotDescendIntoReplacement(t *testing.T) {
	doc, file := parseTemplate(t, "{{ not not (x == none) }}")
	res, err := Autofix(doc, file, All())
	require.NoError(t, err)
	require.Len(t, res.Edits, 1)
	assert.Equal(t, "x == none", res.Edits[0].NewText)
	assert.Equal(t, []string{"x == none"}, outputs(doc))

	// второй проход подхватывает вложенную находку
	res, err = Autofix(doc, file, All())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Replaced)
	assert.Equal(t, []string{"x is none"}, outputs(doc))
}

func TestAutofixWithoutFixers(t *testing.T) {
	doc, file := parseTemplate(t, "{{ x == none }}")
	res, err := Autofix(doc, file, []Rule{EmptyBlock{}})
	require.NoError(t, err)
	assert.Zero(t, res.Replaced)
	assert.Empty(t, res.Edits)
}
