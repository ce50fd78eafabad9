package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var templateExts = map[string]bool{".html": true, ".jinja": true, ".twig": true}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addInlineSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все шаблоны
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !templateExts[filepath.Ext(path)] {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addInlineSeeds covers the recovery paths: unclosed tags, stray end tags
// and broken expressions.
func addInlineSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"plain text only",
		"{{ a == none }}{{ not not b }}",
		"{% if x %}{% elif y %}{% else %}{% else %}{% endif %}",
		"{% for a, b in c %}{{ a[b].d(e=1)|f }}{% endfor %}",
		"{% endif %}{% endfor %}{% bogus %}",
		"{{ (a + ",
		"{% if %}",
		"{# unterminated",
		"{{ 'unterminated }}",
		"{% macro m(1) %}{% endmacro %}",
		"{% block a %}{% endblock b %}",
		"{{ a if b }}{{ [1, 2, }}",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
