package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

type palette struct {
	sev   map[diag.Severity]*color.Color
	path  *color.Color
	gut   *color.Color
	note  *color.Color
	help  *color.Color
	del   *color.Color
	ins   *color.Color
	caret map[diag.Severity]*color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		caret: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed),
			diag.SevWarning: color.New(color.FgYellow),
			diag.SevInfo:    color.New(color.FgCyan),
		},
		path: color.New(color.Bold),
		gut:  color.New(color.FgBlue),
		note: color.New(color.FgCyan),
		help: color.New(color.FgGreen),
		del:  color.New(color.FgRed),
		ins:  color.New(color.FgGreen),
	}
	all := []*color.Color{p.path, p.gut, p.note, p.help, p.del, p.ins}
	for _, c := range p.sev {
		all = append(all, c)
	}
	for _, c := range p.caret {
		all = append(all, c)
	}
	for _, c := range all {
		// решение принимает вызывающий, а не глобальный color.NoColor
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes с аналогичным форматом.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	file := fs.Get(d.Primary.Source)
	start, _ := fs.Resolve(d.Primary)

	loc := formatPath(file, fs, opts.PathMode)
	if file != nil {
		loc += fmt.Sprintf(":%d:%d", start.Line, start.Col)
	}
	fmt.Fprintf(w, "%s: %s %s: %s\n",
		pal.path.Sprint(loc), pal.sev[d.Severity].Sprint(d.Severity.String()), d.Code.ID(), d.Message)

	if file != nil {
		writeSnippet(w, file, fs, d.Primary, opts.Context, pal, pal.caret[d.Severity])
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.Source)
			nloc := formatPath(nf, fs, opts.PathMode)
			if nf != nil {
				ns, _ := fs.Resolve(n.Span)
				nloc += fmt.Sprintf(":%d:%d", ns.Line, ns.Col)
			}
			fmt.Fprintf(w, "  %s %s: %s\n", pal.gut.Sprint("="), pal.note.Sprint("note"), nloc+": "+n.Msg)
		}
	}

	if opts.ShowFixes {
		for _, fx := range d.Fixes {
			fmt.Fprintf(w, "  %s %s: %s\n", pal.gut.Sprint("="), pal.help.Sprint("help"), fx.Title)
			if !opts.ShowPreview {
				continue
			}
			for _, e := range fx.Edits {
				prev, err := buildFixEditPreview(fs, e)
				if err != nil {
					continue
				}
				for _, l := range prev.before {
					fmt.Fprintf(w, "    %s\n", pal.del.Sprint("- "+l))
				}
				for _, l := range prev.after {
					fmt.Fprintf(w, "    %s\n", pal.ins.Sprint("+ "+l))
				}
			}
		}
	}
}

// writeSnippet печатает строку span с номером и подчёркивание под ним.
// Ширина подчёркивания считается в колонках терминала, а не в байтах.
func writeSnippet(w io.Writer, file *source.File, fs *source.FileSet, sp source.Span, context int, pal palette, caret *color.Color) {
	start, end := fs.Resolve(sp)
	first := start.Line
	if context > 0 {
		first = uint32(max(int(start.Line)-context, 1))
	}
	gutter := len(strconv.FormatUint(uint64(start.Line), 10))

	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(w, " %s %s %s\n",
			pal.gut.Sprint(fmt.Sprintf("%*d", gutter, ln)), pal.gut.Sprint("|"), file.GetLine(ln))
	}

	line := file.GetLine(start.Line)
	col := min(int(start.Col-1), len(line))
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col-1), len(line))
	}
	stop = max(stop, col)

	var pad strings.Builder
	for _, r := range line[:col] {
		if r == '\t' {
			pad.WriteByte('\t')
			continue
		}
		pad.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	width := max(runewidth.StringWidth(line[col:stop]), 1)
	mark := "^" + strings.Repeat("~", width-1)

	fmt.Fprintf(w, " %s %s %s%s\n", strings.Repeat(" ", gutter), pal.gut.Sprint("|"), pad.String(), caret.Sprint(mark))
}
