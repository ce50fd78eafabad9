package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"bracketlint/internal/config"
	"bracketlint/internal/diagfmt"
	"bracketlint/internal/driver"
	"bracketlint/internal/fix"
	"bracketlint/internal/workspace"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Lint templates in the given files and directories",
		Long:  "Resolve template files (default: the current directory), report violations and optionally fix them.",
		RunE:  runCheck,
	}

	cmd.Flags().Bool("fix", false, "apply fixes (mode from [lint].fix, apply by default)")
	cmd.Flags().Bool("diff", false, "print fixes as unified diffs without writing")
	cmd.Flags().Bool("respect-gitignore", true, "skip files ignored by .gitignore")
	cmd.Flags().Bool("no-respect-gitignore", false, "do not read .gitignore files")
	cmd.Flags().Bool("force-exclude", false, "apply exclusions to explicitly passed files")
	cmd.Flags().String("output-format", "pretty", "output format (pretty|json|msgpack|short)")
	cmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	cmd.Flags().StringSlice("disable", nil, "comma-separated rules to disable")
	cmd.Flags().String("config", "", "path to bracketlint.toml (default: search upwards)")
	cmd.MarkFlagsMutuallyExclusive("fix", "diff")
	cmd.MarkFlagsMutuallyExclusive("respect-gitignore", "no-respect-gitignore")
	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd, cwd)
	if err != nil {
		return err
	}
	settings := workspace.NewSettings(true, fix.ModeDiff)
	if err := settings.ApplyConfig(cfg, cwd); err != nil {
		return fmt.Errorf("%s: %w", cfg.Path, err)
	}
	if err := applyFlags(cmd, &settings); err != nil {
		return err
	}

	formatStr, err := cmd.Flags().GetString("output-format")
	if err != nil {
		return err
	}
	format, err := diagfmt.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	tracer, cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	out := cmd.OutOrStdout()
	colored, err := useColor(cmd, out)
	if err != nil {
		return err
	}

	ws := workspace.New(cwd, settings)
	res, err := driver.Check(cmd.Context(), ws, driver.Options{Paths: args, Jobs: jobs, Timings: showTimings})
	if err != nil {
		dumpTrace(cmd, tracer)
		return err
	}

	opts := diagfmt.Options{
		Format: format,
		Pretty: diagfmt.PrettyOpts{
			Color:     colored,
			Context:   2,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
			ShowFixes: !settings.Linter.Fix,
		},
		JSON: diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
			IncludeFixes:     true,
		},
	}
	if err := diagfmt.Write(out, res.Bag, ws.Files, opts); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}

	human := format == diagfmt.FormatPretty || format == diagfmt.FormatShort
	if human && res.Fixes != nil {
		printFixes(out, res.Fixes, settings.Linter.FixMode)
	}
	if human && !quiet {
		printSummary(cmd.ErrOrStderr(), res)
	}
	if showTimings {
		printTimings(cmd.ErrOrStderr(), res.Timings)
	}

	status := res.ExitStatus()
	if status == driver.ExitError {
		dumpTrace(cmd, tracer)
	}
	if status != driver.ExitSuccess {
		return &exitError{status: status}
	}
	return nil
}

func loadConfig(cmd *cobra.Command, cwd string) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		return config.Load(path)
	}
	cfg, err := config.Discover(cwd)
	if errors.Is(err, config.ErrNoConfig) {
		return nil, nil
	}
	return cfg, err
}

// applyFlags lets command-line flags override the configuration file.
func applyFlags(cmd *cobra.Command, s *workspace.Settings) error {
	flags := cmd.Flags()

	if flags.Changed("respect-gitignore") {
		v, err := flags.GetBool("respect-gitignore")
		if err != nil {
			return err
		}
		s.RespectGitignore = v
	}
	if noIgnore, err := flags.GetBool("no-respect-gitignore"); err != nil {
		return err
	} else if noIgnore {
		s.RespectGitignore = false
	}
	if force, err := flags.GetBool("force-exclude"); err != nil {
		return err
	} else if force {
		s.FileResolver.ForceExclude = true
	}

	disabled, err := flags.GetStringSlice("disable")
	if err != nil {
		return err
	}
	for _, name := range disabled {
		if name = strings.TrimSpace(name); name != "" {
			s.Linter.Disabled = append(s.Linter.Disabled, name)
		}
	}

	if doFix, err := flags.GetBool("fix"); err != nil {
		return err
	} else if doFix {
		s.Linter.Fix = true
		if !s.Linter.FixMode.Writes() {
			s.Linter.FixMode = fix.ModeApply
		}
	}
	if diff, err := flags.GetBool("diff"); err != nil {
		return err
	} else if diff {
		s.Linter.Fix = true
		s.Linter.FixMode = fix.ModeDiff
	}

	if cmd.Root().PersistentFlags().Changed("max-diagnostics") {
		n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("--max-diagnostics must not be negative")
		}
		s.Linter.MaxDiagnostics = n
	}
	return nil
}

func printFixes(out io.Writer, res *fix.ApplyResult, mode fix.Mode) {
	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	for _, change := range res.FileChanges {
		if mode == fix.ModeDiff {
			for _, line := range strings.SplitAfter(change.Diff(), "\n") {
				switch {
				case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
					fmt.Fprint(out, line)
				case strings.HasPrefix(line, "+"):
					added.Fprint(out, line)
				case strings.HasPrefix(line, "-"):
					removed.Fprint(out, line)
				default:
					fmt.Fprint(out, line)
				}
			}
			continue
		}
		if change.WrittenTo != "" {
			fmt.Fprintf(out, "fixed %s (%d edits) -> %s\n", change.Path, change.EditCount, change.WrittenTo)
		}
	}
	for _, skip := range res.Skipped {
		fmt.Fprintf(out, "skipped fix in %s: %s\n", skip.Path, skip.Reason)
	}
}

func printSummary(w io.Writer, res *driver.Result) {
	ok := color.New(color.FgGreen, color.Bold)
	bad := color.New(color.FgRed, color.Bold)

	if res.Fixed > 0 {
		fmt.Fprintf(w, "Fixed %d violation(s).\n", res.Fixed)
	}
	n := res.Violations()
	if n == 0 {
		ok.Fprintln(w, "All checks passed!")
		return
	}
	bad.Fprintf(w, "Found %d violation(s)", n)
	fmt.Fprintf(w, " in %d file(s).\n", len(res.Files))
	if dropped := res.Bag.Dropped(); dropped > 0 {
		fmt.Fprintf(w, "%d more not shown (--max-diagnostics).\n", dropped)
	}
}
