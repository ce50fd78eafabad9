package fix

import (
	"fmt"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const diffContext = 3

type diffLine struct {
	op   diffpatch.Operation
	text string
}

// UnifiedDiff renders the line difference between before and after in the
// unified format with three lines of context. Equal inputs give "".
func UnifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var all []diffLine
	for _, d := range diffs {
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l != "" {
				all = append(all, diffLine{op: d.Type, text: l})
			}
		}
	}

	// oldNo[i], newNo[i]: сколько строк старого/нового текста до all[i]
	oldNo := make([]int, len(all)+1)
	newNo := make([]int, len(all)+1)
	for i, l := range all {
		oldNo[i+1], newNo[i+1] = oldNo[i], newNo[i]
		if l.op != diffpatch.DiffInsert {
			oldNo[i+1]++
		}
		if l.op != diffpatch.DiffDelete {
			newNo[i+1]++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- a/%s\n+++ b/%s\n", path, path)
	for i := 0; i < len(all); {
		for i < len(all) && all[i].op == diffpatch.DiffEqual {
			i++
		}
		if i == len(all) {
			break
		}
		start := max(i-diffContext, 0)
		j := i
		for {
			for j < len(all) && all[j].op != diffpatch.DiffEqual {
				j++
			}
			k := j
			for k < len(all) && all[k].op == diffpatch.DiffEqual {
				k++
			}
			// близкие изменения сливаются в один hunk
			if k < len(all) && k-j <= 2*diffContext {
				j = k
				continue
			}
			break
		}
		end := min(j+diffContext, len(all))

		fmt.Fprintf(&sb, "@@ -%s +%s @@\n",
			hunkRange(oldNo[start], oldNo[end]-oldNo[start]),
			hunkRange(newNo[start], newNo[end]-newNo[start]))
		for _, l := range all[start:end] {
			switch l.op {
			case diffpatch.DiffInsert:
				sb.WriteByte('+')
			case diffpatch.DiffDelete:
				sb.WriteByte('-')
			default:
				sb.WriteByte(' ')
			}
			sb.WriteString(l.text)
			if !strings.HasSuffix(l.text, "\n") {
				sb.WriteString("\n\\ No newline at end of file\n")
			}
		}
		i = end
	}
	return sb.String()
}

func hunkRange(before, count int) string {
	if count == 0 {
		return fmt.Sprintf("%d,0", before)
	}
	if count == 1 {
		return fmt.Sprintf("%d", before+1)
	}
	return fmt.Sprintf("%d,%d", before+1, count)
}
