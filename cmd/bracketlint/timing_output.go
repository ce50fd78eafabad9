package main

import (
	"fmt"
	"io"

	"bracketlint/internal/observ"
)

func printTimings(out io.Writer, report *observ.Report) {
	if out == nil || report == nil {
		return
	}
	fmt.Fprintln(out, "timings:")
	for _, p := range report.Phases {
		fmt.Fprintf(out, "  %-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(out, "  (%s)", p.Note)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "  %-10s %8.2f ms\n", "total", report.TotalMS)
}
