package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bracketlint/internal/driver"
	"bracketlint/internal/version"
)

// exitError carries a non-zero exit status out of a command without
// printing anything.
type exitError struct {
	status driver.ExitStatus
}

func (e *exitError) Error() string { return "exit status " + e.status.String() }

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bracketlint",
		Short:         "Linter for Jinja-style templates",
		Long:          `bracketlint parses HTML templates with {{ }} and {% %} tags and reports suspicious constructs`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	// Глобальные флаги
	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.PersistentFlags().Bool("quiet", false, "suppress the summary line")
	root.PersistentFlags().Bool("timings", false, "show timing information")
	root.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = config or unlimited)")
	root.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	root.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	root.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	root.PersistentFlags().Int("trace-ring-size", 4096, "events kept by the ring tracer")
	root.PersistentFlags().String("cpu-profile", "", "write CPU profile to file")
	root.PersistentFlags().String("mem-profile", "", "write heap profile to file on exit")
	root.PersistentFlags().String("runtime-trace", "", "write Go runtime trace to file")
	return root
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	var exit *exitError
	switch {
	case err == nil:
		return int(driver.ExitSuccess)
	case errors.As(err, &exit):
		return int(exit.status)
	default:
		fmt.Fprintf(stderr, "bracketlint: %v\n", err)
		return int(driver.ExitError)
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// useColor resolves --color for output going to w and configures
// fatih/color to match.
func useColor(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	var on bool
	switch mode {
	case "on", "always":
		on = true
	case "off", "never":
		on = false
	case "auto":
		on = isTerminal(w)
	default:
		return false, fmt.Errorf("invalid --color %q (expected auto|on|off)", mode)
	}
	color.NoColor = !on
	return on, nil
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- fd fits in int
}
