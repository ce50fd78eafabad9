package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketlint/internal/ast"
	"bracketlint/internal/diag"
)

func parseOutputExpr(t *testing.T, expr string) ast.Node[ast.Expr] {
	t.Helper()
	doc, _ := parseClean(t, "{{ "+expr+" }}")
	body := stmts(doc)
	require.Len(t, body, 1)
	out, ok := (*body[0].Body()).(ast.Output)
	require.True(t, ok, "expected output, got %T", *body[0].Body())
	return out.Expr
}

func TestExpressionRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"a + b * c", "a + b * c"},
		{"(a + b) * c", "(a + b) * c"},
		{"a - b - c", "a - b - c"},
		{"a - (b - c)", "a - (b - c)"},
		{"a ~ b + c", "a ~ b + c"},
		{"(a ~ b) + c", "(a ~ b) + c"},
		{"not a == b", "not a == b"},
		{"not a and b", "not a and b"},
		{"a or b and c", "a or b and c"},
		{"a not in b", "a not in b"},
		{"x is not none", "x is not none"},
		{"x is defined and y", "x is defined and y"},
		{"-a ** 2", "-a ** 2"},
		{"2 ** -1", "2 ** -1"},
		{"a.b[0].c", "a.b[0].c"},
		{"a.0", "a.0"},
		{"f(x, y=1, )", "f(x, y=1)"},
		{"name|default('x')|upper", "name|default('x')|upper"},
		{"[1, 2.5, 'three']", "[1, 2.5, 'three']"},
		{"[]", "[]"},
		{"a if b else c", "a if b else c"},
		{"a if b", "a if b"},
		{"x // 2 % 3", "x // 2 % 3"},
		{"True or none", "True or none"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			n := parseOutputExpr(t, tt.in)
			assert.Equal(t, tt.want, ast.FormatExpr(*n.Body()))
		})
	}
}

func TestBinaryIsLeftAssociative(t *testing.T) {
	n := parseOutputExpr(t, "a - b - c")
	bin, ok := (*n.Body()).(ast.Binary)
	require.True(t, ok)
	assert.Equal(t, ast.BinSub, bin.Op)
	_, lhsIsBinary := (*bin.Lhs.Body()).(ast.Binary)
	assert.True(t, lhsIsBinary)
	assert.Equal(t, ast.Name{Ident: "c"}, *bin.Rhs.Body())
}

func TestExpressionSpans(t *testing.T) {
	doc, file := parseClean(t, "{{ user.name|upper }}")
	out := (*stmts(doc)[0].Body()).(ast.Output)
	assert.Equal(t, "user.name|upper", spanText(file, out.Expr.Span()))

	filter := (*out.Expr.Body()).(ast.Filter)
	assert.Equal(t, "user.name", spanText(file, filter.Subject.Span()))

	doc, file = parseClean(t, "{{ (a + b) * c }}")
	out = (*stmts(doc)[0].Body()).(ast.Output)
	mul := (*out.Expr.Body()).(ast.Binary)
	// скобки не входят в span вложенного узла
	assert.Equal(t, "a + b", spanText(file, mul.Lhs.Span()))
	assert.Equal(t, "(a + b) * c", spanText(file, out.Expr.Span()))
}

func TestExpressionKeywordArgs(t *testing.T) {
	n := parseOutputExpr(t, "range(1, step=2)")
	call := (*n.Body()).(ast.Call)
	require.Equal(t, 2, call.Args.Len())
	kw, ok := (*call.Args.At(1).Body()).(ast.Keyword)
	require.True(t, ok)
	assert.Equal(t, "step", kw.Name)
	assert.Equal(t, ast.Literal{Kind: ast.LitInt, Raw: "2"}, *kw.Value.Body())
}

func TestExpressionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  diag.Code
	}{
		{"missing operand", "{{ a + }}", diag.SynExpectExpression},
		{"empty output", "{{ }}", diag.SynExpectExpression},
		{"unclosed paren", "{{ (a + b }}", diag.SynUnclosedParen},
		{"unclosed call", "{{ f(a }}", diag.SynUnclosedParen},
		{"unclosed index", "{{ a[0 }}", diag.SynUnclosedBracket},
		{"bad attribute", "{{ a. }}", diag.SynExpectIdentifier},
		{"bad filter", "{{ a| }}", diag.SynExpectIdentifier},
		{"bad test", "{{ a is }}", diag.SynExpectIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _, bag := parseSource(t, tt.input)
			require.True(t, bag.HasErrors(), "expected an error")
			assert.Equal(t, tt.want, bag.Items()[0].Code, diagnosticsSummary(bag))
			assert.Empty(t, stmts(doc))
		})
	}
}
