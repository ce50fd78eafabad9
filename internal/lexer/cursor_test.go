package lexer

import (
	"testing"

	"bracketlint/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.html", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("Peek/Bump at EOF must return 0")
	}
}

// TestPeekAhead проверяет Peek2/Peek3 на середине и конце файла
func TestPeekAhead(t *testing.T) {
	cursor := NewCursor(createFile("abc"))

	if b0, b1, b2, ok := cursor.Peek3(); !ok || b0 != 'a' || b1 != 'b' || b2 != 'c' {
		t.Fatalf("Peek3 = %q %q %q %v", b0, b1, b2, ok)
	}
	cursor.Bump()
	if _, _, _, ok := cursor.Peek3(); ok {
		t.Fatal("Peek3 past the end must fail")
	}
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'b' || b1 != 'c' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	cursor.Bump()
	if b0, b1, ok := cursor.Peek2(); ok || b0 != 0 || b1 != 0 {
		t.Fatal("Peek2 at the last byte must fail")
	}
}

func TestMarkSpanText(t *testing.T) {
	file := createFile("α{{x}}")
	cursor := NewCursor(file)

	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	sp := cursor.SpanFrom(mark)
	if sp != source.NewSpan(file.ID, 0, 2) {
		t.Fatalf("SpanFrom = %v", sp)
	}
	if got := cursor.TextFrom(mark); got != "α" {
		t.Fatalf("TextFrom = %q", got)
	}
	if !cursor.HasPrefix("{{") || cursor.HasPrefix("{{x}}}") {
		t.Fatal("HasPrefix mismatch")
	}

	cursor.Reset(mark)
	if cursor.Off != 0 {
		t.Fatalf("Reset left Off at %d", cursor.Off)
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("-%"))
	if cursor.Eat('%') {
		t.Fatal("Eat of a mismatching byte must fail")
	}
	if !cursor.Eat('-') || !cursor.Eat('%') {
		t.Fatal("Eat of matching bytes must succeed")
	}
	if cursor.Eat('x') {
		t.Fatal("Eat at EOF must fail")
	}
}
