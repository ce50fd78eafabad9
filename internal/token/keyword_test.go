package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"if":       KwIf,
		"elif":     KwElif,
		"endfor":   KwEndfor,
		"endmacro": KwEndmacro,
		"not":      KwNot,
		"is":       KwIs,
		"none":     KwNone,
		"None":     KwNone,
		"True":     KwTrue,
		"false":    KwFalse,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// контекстные слова и регистр
	notKw := []string{
		"IF", "Endif", "NONE",
		"ignore", "missing", "loop", "super",
		"identifier",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
