package fix

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bracketlint/internal/diag"
	"bracketlint/internal/source"
)

func loadTemp(t *testing.T, content string) (*source.FileSet, *source.File) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fs := source.NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	require.NoError(t, err)
	return fs, fs.Get(id)
}

func editsFor(file *source.File) map[source.SourceID][]diag.FixEdit {
	return map[source.SourceID][]diag.FixEdit{
		file.ID: {{Span: source.NewSpan(file.ID, 3, 12), NewText: "x is none", OldText: "x == none"}},
	}
}

func TestApplyModes(t *testing.T) {
	const before = "{{ x == none }}\n"
	const after = "{{ x is none }}\n"

	t.Run("diff", func(t *testing.T) {
		fs, file := loadTemp(t, before)
		res, err := Apply(fs, editsFor(file), ApplyOptions{Mode: ModeDiff})
		require.NoError(t, err)
		assert.Equal(t, 1, res.Applied)
		require.Len(t, res.FileChanges, 1)
		assert.Empty(t, res.FileChanges[0].WrittenTo)
		assert.Contains(t, res.FileChanges[0].Diff(), "+"+after)

		onDisk, err := os.ReadFile(file.Path)
		require.NoError(t, err)
		assert.Equal(t, before, string(onDisk))
	})

	t.Run("apply", func(t *testing.T) {
		fs, file := loadTemp(t, before)
		res, err := Apply(fs, editsFor(file), ApplyOptions{Mode: ModeApply})
		require.NoError(t, err)
		assert.Equal(t, file.Path, res.FileChanges[0].WrittenTo)

		onDisk, err := os.ReadFile(file.Path)
		require.NoError(t, err)
		assert.Equal(t, after, string(onDisk))
	})

	t.Run("generate", func(t *testing.T) {
		fs, file := loadTemp(t, before)
		res, err := Apply(fs, editsFor(file), ApplyOptions{Mode: ModeGenerate})
		require.NoError(t, err)

		want := filepath.Join(filepath.Dir(file.Path), "page.fixed.html")
		assert.Equal(t, want, res.FileChanges[0].WrittenTo)
		generated, err := os.ReadFile(want)
		require.NoError(t, err)
		assert.Equal(t, after, string(generated))

		original, err := os.ReadFile(file.Path)
		require.NoError(t, err)
		assert.Equal(t, before, string(original))
	})
}

func TestApplyVirtualFileIsNotWritten(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("mem.html", []byte("{{ x == none }}")))
	res, err := Apply(fs, editsFor(file), ApplyOptions{Mode: ModeApply})
	require.NoError(t, err)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "target file is virtual", res.Skipped[0].Reason)
	assert.Equal(t, "{{ x is none }}", string(res.FileChanges[0].After))
}

func TestApplyNoFixes(t *testing.T) {
	fs, file := loadTemp(t, "{{ y }}")
	_, err := Apply(fs, nil, ApplyOptions{})
	assert.True(t, errors.Is(err, ErrNoFixes))

	res, err := Apply(fs, editsFor(file), ApplyOptions{})
	assert.ErrorIs(t, err, ErrNoFixes)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "edit span out of range", res.Skipped[0].Reason)
}

func TestFromDiagnostics(t *testing.T) {
	sp := source.NewSpan(2, 0, 1)
	diags := []diag.Diagnostic{
		diag.New(diag.SevWarning, diag.LintRedundantNot, sp, "a").
			WithFix("first", diag.FixEdit{Span: sp, NewText: "1"}).
			WithFix("second", diag.FixEdit{Span: sp, NewText: "2"}),
		diag.New(diag.SevWarning, diag.LintEmptyBlock, sp, "no fix"),
	}
	got := FromDiagnostics(diags)
	require.Len(t, got[2], 1)
	assert.Equal(t, "1", got[2][0].NewText)
}

func TestApplyKeepsLineEndings(t *testing.T) {
	fs, file := loadTemp(t, "\xEF\xBB\xBF{{ x == none }}\r\n")
	require.NotZero(t, file.Flags&source.FileNormalizedCRLF)

	_, err := Apply(fs, editsFor(file), ApplyOptions{Mode: ModeApply})
	require.NoError(t, err)

	got, err := os.ReadFile(file.Path)
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBF{{ x is none }}\r\n", string(got))
}
