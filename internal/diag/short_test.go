package diag

import (
	"testing"

	"bracketlint/internal/source"
)

func TestFormatShort(t *testing.T) {
	fs := source.NewFileSetWithBase("/workspace")
	page := fs.Add("/workspace/templates/page.html", []byte("a\nb\n"), 0)
	base := fs.Add("/workspace/templates/base.html", []byte("x\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.NewSpan(page, 0, 1),
			Notes: []Note{
				{Span: source.NewSpan(page, 2, 3), Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     LintEmptyBlock,
			Message:  "another",
			Primary:  source.NewSpan(base, 0, 1),
		},
		{
			Severity: SevWarning,
			Code:     LintEmptyBlock,
			Message:  "unknown source is skipped",
			Primary:  source.NewSpan(99, 0, 1),
		},
	}

	expected := "warning LNT3002 templates/base.html:1:1 another\n" +
		"error SYN2001 templates/page.html:1:1 first line second\n" +
		"note SYN2001 templates/page.html:2:1 note line"

	if got := FormatShort(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
	if got := FormatShort(nil, fs, true); got != "" {
		t.Fatalf("empty input rendered %q", got)
	}
}
