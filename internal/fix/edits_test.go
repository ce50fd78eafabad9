package fix

import (
	"testing"

	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

func edit(start, end uint32, newText, oldText string) diag.FixEdit {
	return diag.FixEdit{Span: source.NewSpan(1, start, end), NewText: newText, OldText: oldText}
}

func TestApplyEdits(t *testing.T) {
	content := []byte("{{ x == none }} {{ not not y }}")
	tests := []struct {
		name    string
		edits   []diag.FixEdit
		want    string
		applied int
		skipped []string
	}{
		{
			name:    "two edits out of order",
			edits:   []diag.FixEdit{edit(19, 28, "y", "not not y"), edit(3, 12, "x is none", "x == none")},
			want:    "{{ x is none }} {{ y }}",
			applied: 2,
		},
		{
			name:    "insertion",
			edits:   []diag.FixEdit{edit(0, 0, "<p>", "")},
			want:    "<p>{{ x == none }} {{ not not y }}",
			applied: 1,
		},
		{
			name:    "overlap skipped",
			edits:   []diag.FixEdit{edit(3, 12, "x is none", ""), edit(8, 12, "null", "")},
			want:    "{{ x is none }} {{ not not y }}",
			applied: 1,
			skipped: []string{"overlaps a previous edit"},
		},
		{
			name:    "stale guard",
			edits:   []diag.FixEdit{edit(3, 12, "x is none", "y == none")},
			want:    string(content),
			skipped: []string{"existing text does not match expected content"},
		},
		{
			name:    "out of range",
			edits:   []diag.FixEdit{edit(3, 99, "", "")},
			want:    string(content),
			skipped: []string{"edit span out of range"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied, skipped := ApplyEdits(content, tt.edits)
			if string(got) != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if applied != tt.applied {
				t.Errorf("applied = %d, want %d", applied, tt.applied)
			}
			if len(skipped) != len(tt.skipped) {
				t.Fatalf("skipped = %v, want %v", skipped, tt.skipped)
			}
			for i, s := range skipped {
				if s.Reason != tt.skipped[i] {
					t.Errorf("skip reason %d = %q, want %q", i, s.Reason, tt.skipped[i])
				}
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeDiff, ModeGenerate, ModeApply} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if m, err := ParseMode(""); err != nil || m != ModeDiff {
		t.Errorf("ParseMode(\"\") = %v, %v; want diff", m, err)
	}
	if _, err := ParseMode("rewrite"); err == nil {
		t.Error("ParseMode(\"rewrite\") succeeded")
	}
}
