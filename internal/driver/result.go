package driver

import (
	"bracketlint/internal/diag"
	"bracketlint/internal/fix"
	"bracketlint/internal/lint"
	"bracketlint/internal/observ"
	"bracketlint/internal/workspace"
)

// ExitStatus is the process exit code of a check run.
type ExitStatus int

const (
	// ExitSuccess: no violations.
	ExitSuccess ExitStatus = 0
	// ExitFailure: violations found.
	ExitFailure ExitStatus = 1
	// ExitError: the tool itself failed (I/O, configuration).
	ExitError ExitStatus = 2
)

func (s ExitStatus) String() string {
	switch s {
	case ExitSuccess:
		return "success"
	case ExitFailure:
		return "failure"
	default:
		return "error"
	}
}

// FileResult holds what was computed for one member.
type FileResult struct {
	Member workspace.MemberID
	Path   string
	// Nodes is the number of identities the parse committed.
	Nodes int
	Bag   *diag.Bag
	Fix   lint.FixResult
}

// Result of Check.
type Result struct {
	Workspace *workspace.Workspace
	// Bag holds every diagnostic of the run, sorted and de-duplicated.
	Bag   *diag.Bag
	Files []FileResult
	// Fixes is nil unless fixing was enabled and produced edits.
	Fixes *fix.ApplyResult
	// Fixed counts diagnostics resolved by written fixes; they are not in Bag.
	Fixed   int
	Timings *observ.Report
}

// Violations counts warnings and errors.
func (r *Result) Violations() int {
	if r == nil || r.Bag == nil {
		return 0
	}
	return r.Bag.Count(diag.SevWarning)
}

// ExitStatus derives the exit code: I/O errors beat violations.
func (r *Result) ExitStatus() ExitStatus {
	if r == nil || r.Bag == nil {
		return ExitError
	}
	for _, d := range r.Bag.Items() {
		if d.Severity == diag.SevError && d.Code >= diag.IOInfo {
			return ExitError
		}
	}
	if r.Violations() > 0 {
		return ExitFailure
	}
	return ExitSuccess
}
