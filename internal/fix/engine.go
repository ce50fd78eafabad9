package fix

// todo: интеграция с git:
// По умолчанию создавать .bak только для незатрекинных файлов.

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyOptions configures what Apply does with the fixed content.
type ApplyOptions struct {
	Mode Mode
}

// SkippedFix captures a skipped edit with a reason.
type SkippedFix struct {
	Path   string
	Edit   diag.FixEdit
	Reason string
}

// FileChange summarises the modifications computed for one file.
type FileChange struct {
	Path      string
	EditCount int
	Before    []byte
	After     []byte
	// WrittenTo is the file the fixed content went to, empty when nothing
	// was written.
	WrittenTo string
}

// Diff renders the change as a unified diff.
func (c FileChange) Diff() string {
	return UnifiedDiff(c.Path, string(c.Before), string(c.After))
}

// ApplyResult aggregates applied edits, skipped ones, and file changes.
type ApplyResult struct {
	Applied     int
	Skipped     []SkippedFix
	FileChanges []FileChange
}

// FromDiagnostics collects the edits of the first fix of every diagnostic,
// grouped by source file.
func FromDiagnostics(diagnostics []diag.Diagnostic) map[source.SourceID][]diag.FixEdit {
	out := make(map[source.SourceID][]diag.FixEdit)
	for _, d := range diagnostics {
		if !d.Fixable() {
			continue
		}
		for _, e := range d.Fixes[0].Edits {
			out[e.Span.Source] = append(out[e.Span.Source], e)
		}
	}
	return out
}

// Apply computes the fixed content of every file in edits and, depending on
// opts.Mode, writes it out. Files are processed in SourceID order. Virtual
// files are never written.
func Apply(fs *source.FileSet, edits map[source.SourceID][]diag.FixEdit, opts ApplyOptions) (*ApplyResult, error) {
	result := &ApplyResult{}
	if fs == nil {
		return result, fmt.Errorf("fix: FileSet is nil")
	}
	baseDir := fs.BaseDir()

	for _, id := range slices.Sorted(maps.Keys(edits)) {
		file := fs.Get(id)
		if file == nil {
			for _, e := range edits[id] {
				result.Skipped = append(result.Skipped, SkippedFix{Edit: e, Reason: "unknown source file"})
			}
			continue
		}
		path := file.FormatPath("relative", baseDir)

		after, n, skipped := ApplyEdits(file.Content, edits[id])
		for _, s := range skipped {
			s.Path = path
			result.Skipped = append(result.Skipped, s)
		}
		if n == 0 {
			continue
		}
		result.Applied += n
		change := FileChange{Path: path, EditCount: n, Before: file.Content, After: after}

		if target := targetPath(file.Path, opts.Mode); target != "" {
			if file.Flags&source.FileVirtual != 0 {
				result.Skipped = append(result.Skipped, SkippedFix{Path: path, Reason: "target file is virtual"})
			} else {
				if err := writeFile(target, file.Path, restoreEncoding(file.Flags, after)); err != nil {
					result.FileChanges = append(result.FileChanges, change)
					return result, err
				}
				change.WrittenTo = target
			}
		}
		result.FileChanges = append(result.FileChanges, change)
	}

	if result.Applied == 0 {
		return result, ErrNoFixes
	}
	return result, nil
}

// targetPath returns where mode writes the fixed content of path.
func targetPath(path string, mode Mode) string {
	switch mode {
	case ModeApply:
		return path
	case ModeGenerate:
		ext := filepath.Ext(path)
		return strings.TrimSuffix(path, ext) + ".fixed" + ext
	default:
		return ""
	}
}

var bom = []byte{0xEF, 0xBB, 0xBF}

// restoreEncoding undoes the BOM and CRLF normalisation done on load, so a
// written file keeps its original line endings.
func restoreEncoding(flags source.FileFlags, data []byte) []byte {
	if flags&source.FileNormalizedCRLF != 0 {
		data = bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n"))
	}
	if flags&source.FileHadBOM != 0 {
		data = append(slices.Clone(bom), data...)
	}
	return data
}

// writeFile writes data to target with the permissions of the original file.
func writeFile(target, original string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(original); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(target, data, mode); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
