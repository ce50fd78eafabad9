package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"bracketlint/internal/diag"
	"bracketlint/internal/lexer"
	"bracketlint/internal/source"
	"bracketlint/internal/token"
)

type lexed struct {
	Kind token.Kind
	Text string
}

func lexAll(t *testing.T, input string) ([]lexed, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.html", []byte(input)))
	bag := diag.NewBag(0)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var out []lexed
	for tok := range lx.All() {
		if got := fs.Text(tok.Span); got != tok.Text {
			t.Fatalf("token %v: Text %q does not match span text %q", tok.Kind, tok.Text, got)
		}
		out = append(out, lexed{tok.Kind, tok.Text})
	}
	return out, bag
}

func TestLexer(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []lexed
	}{
		{
			name:  "plain text",
			input: "<p>hi</p>",
			want:  []lexed{{token.Text, "<p>hi</p>"}, {token.EOF, ""}},
		},
		{
			name:  "output tag",
			input: "a{{ user.name|upper }}b",
			want: []lexed{
				{token.Text, "a"},
				{token.OutputOpen, "{{"}, {token.Ident, "user"}, {token.Dot, "."}, {token.Ident, "name"},
				{token.Pipe, "|"}, {token.Ident, "upper"}, {token.OutputClose, "}}"},
				{token.Text, "b"}, {token.EOF, ""},
			},
		},
		{
			name:  "statement with whitespace control",
			input: "{%- if x == none -%}",
			want: []lexed{
				{token.StmtOpen, "{%-"}, {token.KwIf, "if"}, {token.Ident, "x"}, {token.EqEq, "=="},
				{token.KwNone, "none"}, {token.StmtClose, "-%}"}, {token.EOF, ""},
			},
		},
		{
			name:  "comment is one token",
			input: "{# {{ not lexed }} #}x",
			want:  []lexed{{token.Comment, "{# {{ not lexed }} #}"}, {token.Text, "x"}, {token.EOF, ""}},
		},
		{
			name:  "operators",
			input: "{{ a ** 2 // 3 ~ 'x' != b <= c - -1 }}",
			want: []lexed{
				{token.OutputOpen, "{{"}, {token.Ident, "a"}, {token.StarStar, "**"}, {token.IntLit, "2"},
				{token.SlashSlash, "//"}, {token.IntLit, "3"}, {token.Tilde, "~"}, {token.StringLit, "'x'"},
				{token.BangEq, "!="}, {token.Ident, "b"}, {token.LtEq, "<="}, {token.Ident, "c"},
				{token.Minus, "-"}, {token.Minus, "-"}, {token.IntLit, "1"}, {token.OutputClose, "}}"},
				{token.EOF, ""},
			},
		},
		{
			name:  "numbers",
			input: "{{ 1.5 1e3 1_000 2.x 1else }}",
			want: []lexed{
				{token.OutputOpen, "{{"}, {token.FloatLit, "1.5"}, {token.FloatLit, "1e3"}, {token.IntLit, "1_000"},
				{token.IntLit, "2"}, {token.Dot, "."}, {token.Ident, "x"},
				{token.IntLit, "1"}, {token.KwElse, "else"},
				{token.OutputClose, "}}"}, {token.EOF, ""},
			},
		},
		{
			name:  "strings with escapes and newlines",
			input: "{{ \"a\\\"b\" 'c\nd' }}",
			want: []lexed{
				{token.OutputOpen, "{{"}, {token.StringLit, "\"a\\\"b\""}, {token.StringLit, "'c\nd'"},
				{token.OutputClose, "}}"}, {token.EOF, ""},
			},
		},
		{
			name:  "unicode identifiers",
			input: "{{ имя }}",
			want:  []lexed{{token.OutputOpen, "{{"}, {token.Ident, "имя"}, {token.OutputClose, "}}"}, {token.EOF, ""}},
		},
		{
			name:  "lone brace stays text",
			input: "a { b } c",
			want:  []lexed{{token.Text, "a { b } c"}, {token.EOF, ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, bag := lexAll(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
			if bag.Len() != 0 {
				t.Errorf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"unterminated comment", "{# open", diag.LexUnterminatedComment},
		{"unterminated string", "{{ 'abc }}", diag.LexUnterminatedString},
		{"unknown char", "{{ a $ b }}", diag.LexUnknownChar},
		{"unknown unicode char", "{{ a → b }}", diag.LexUnknownChar},
		{"bad number", "{{ 1_ }}", diag.LexBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, bag := lexAll(t, tt.input)
			if bag.Len() == 0 {
				t.Fatalf("expected a diagnostic, tokens: %v", toks)
			}
			if got := bag.Items()[0].Code; got != tt.code {
				t.Errorf("code = %v, want %v", got.ID(), tt.code.ID())
			}
			if last := toks[len(toks)-1]; last.Kind != token.EOF {
				t.Errorf("stream must end with EOF, got %v", last.Kind)
			}
		})
	}
}

func TestUnclosedTagEndsAtEOF(t *testing.T) {
	got, _ := lexAll(t, "{% if x")
	want := []lexed{{token.StmtOpen, "{%"}, {token.KwIf, "if"}, {token.Ident, "x"}, {token.EOF, ""}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	lx := lexer.New(fs.Get(fs.AddVirtual("p.html", []byte("{{ a }}"))), lexer.Options{})

	first := lx.Peek()
	if again := lx.Peek(); again != first {
		t.Fatalf("second Peek = %v, want %v", again, first)
	}
	if next := lx.Next(); next != first {
		t.Fatalf("Next after Peek = %v, want %v", next, first)
	}
	if next := lx.Next(); next.Kind != token.Ident {
		t.Fatalf("expected ident, got %v", next.Kind)
	}
}
