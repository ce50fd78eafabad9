package fix

import (
	"bytes"
	"cmp"
	"slices"

	"bracketlint/internal/diag"
)

// ApplyEdits applies edits to content. Edits are taken in source order;
// one that overlaps an earlier edit, falls outside content or whose OldText
// no longer matches is skipped and returned with the reason.
func ApplyEdits(content []byte, edits []diag.FixEdit) ([]byte, int, []SkippedFix) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b diag.FixEdit) int {
		return cmp.Or(
			cmp.Compare(a.Span.Start(), b.Span.Start()),
			cmp.Compare(a.Span.End(), b.Span.End()),
		)
	})

	var (
		out     bytes.Buffer
		skipped []SkippedFix
		applied int
		last    uint32 // конец последней применённой правки
	)
	out.Grow(len(content))
	for _, e := range sorted {
		start, end := e.Span.Start(), e.Span.End()
		switch {
		case end < start || int(end) > len(content):
			skipped = append(skipped, SkippedFix{Edit: e, Reason: "edit span out of range"})
			continue
		case applied > 0 && start < last:
			skipped = append(skipped, SkippedFix{Edit: e, Reason: "overlaps a previous edit"})
			continue
		case e.OldText != "" && string(content[start:end]) != e.OldText:
			skipped = append(skipped, SkippedFix{Edit: e, Reason: "existing text does not match expected content"})
			continue
		}
		out.Write(content[last:start])
		out.WriteString(e.NewText)
		last = end
		applied++
	}
	out.Write(content[last:])
	return out.Bytes(), applied, skipped
}
