package diag

import "testing"

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	r := BagReporter{Bag: bag}

	b := ReportWarning(r, LintNoneComparison, span(1, 3, 12), "comparison to none").
		WithNote(span(1, 3, 4), "subject").
		WithFix("use 'is none'", FixEdit{Span: span(1, 3, 12), NewText: "x is none"})
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("emitted %d diagnostics", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevWarning || len(d.Notes) != 1 || !d.Fixable() {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
}

func TestNilBuilderIsSafe(t *testing.T) {
	var b *ReportBuilder
	b.WithNote(span(1, 0, 1), "x").WithFix("t").Emit()
	if d := b.Diagnostic(); d.Code != UnknownCode {
		t.Fatalf("nil builder returned %+v", d)
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	for range 3 {
		r.Report(SynUnclosedTag, SevError, span(1, 0, 2), "unclosed tag", nil, nil)
	}
	r.Report(SynUnclosedTag, SevError, span(1, 0, 2), "another message", nil, nil)
	if bag.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2", bag.Len())
	}
}

func TestParseSeverity(t *testing.T) {
	for _, sev := range []Severity{SevInfo, SevWarning, SevError} {
		got, err := ParseSeverity(sev.Label())
		if err != nil || got != sev {
			t.Errorf("ParseSeverity(%q) = %v, %v", sev.Label(), got, err)
		}
	}
	if _, err := ParseSeverity("fatal"); err == nil {
		t.Error("expected error for unknown severity")
	}
}
