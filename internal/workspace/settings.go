package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"bracketlint/internal/config"
	"bracketlint/internal/fix"
)

// Pattern is one include or exclude glob.
type Pattern struct {
	Glob string
	// Builtin patterns match the base name only.
	Builtin bool
}

// Match reports whether the pattern matches rel, a slash path relative to
// the workspace base.
func (p Pattern) Match(rel string) bool {
	name := rel
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		name = rel[i+1:]
	}
	if p.Builtin {
		ok, _ := doublestar.Match(p.Glob, name)
		return ok
	}
	if ok, _ := doublestar.Match(p.Glob, rel); ok {
		return true
	}
	// шаблон без слэша пользователь обычно пишет для имени файла
	if !strings.Contains(p.Glob, "/") {
		ok, _ := doublestar.Match(p.Glob, name)
		return ok
	}
	return false
}

func matchAny(patterns []Pattern, rel string) bool {
	for _, p := range patterns {
		if p.Match(rel) {
			return true
		}
	}
	return false
}

func builtins(globs ...string) []Pattern {
	out := make([]Pattern, len(globs))
	for i, g := range globs {
		out[i] = Pattern{Glob: g, Builtin: true}
	}
	return out
}

// DefaultExclude lists directories that are never walked.
var DefaultExclude = builtins(
	".bzr", ".direnv", ".eggs", ".git", ".git-rewrite", ".hg",
	".ipynb_checkpoints", ".mypy_cache", ".nox", ".pants.d", ".pyenv",
	".pytest_cache", ".pytype", ".ruff_cache", ".svn", ".tox", ".venv",
	".vscode", "__pypackages__", "_build", "buck-out", "dist",
	"node_modules", "site-packages", "venv",
)

// DefaultInclude lists the template extensions linted by default.
var DefaultInclude = builtins("*.html", "*.jinja", "*.twig")

// FileResolverSettings controls which files belong to the workspace.
type FileResolverSettings struct {
	Include     []Pattern
	Exclude     []Pattern
	UserExclude []Pattern
	// ForceExclude applies exclusions to explicitly passed files too.
	ForceExclude bool
}

// LinterSettings controls the lint pass.
type LinterSettings struct {
	FixMode        fix.Mode
	Fix            bool
	Disabled       []string
	MaxDiagnostics int
}

// Settings of one workspace.
type Settings struct {
	RespectGitignore bool
	FileResolver     FileResolverSettings
	Linter           LinterSettings
}

// NewSettings returns the built-in defaults.
func NewSettings(respectGitignore bool, mode fix.Mode) Settings {
	return Settings{
		RespectGitignore: respectGitignore,
		FileResolver: FileResolverSettings{
			Include: append([]Pattern(nil), DefaultInclude...),
			Exclude: append([]Pattern(nil), DefaultExclude...),
		},
		Linter: LinterSettings{FixMode: mode},
	}
}

// ApplyConfig merges cfg on top of s. User patterns are anchored at base,
// the directory the workspace is resolved from.
func (s *Settings) ApplyConfig(cfg *config.Config, base string) error {
	if cfg == nil {
		return nil
	}
	prefix, err := relPrefix(base, cfg.Root)
	if err != nil {
		return err
	}
	for _, g := range cfg.Files.Include {
		p, err := userPattern(prefix, g)
		if err != nil {
			return err
		}
		s.FileResolver.Include = append(s.FileResolver.Include, p)
	}
	for _, g := range cfg.Files.Exclude {
		p, err := userPattern(prefix, g)
		if err != nil {
			return err
		}
		s.FileResolver.UserExclude = append(s.FileResolver.UserExclude, p)
	}
	s.FileResolver.ForceExclude = s.FileResolver.ForceExclude || cfg.Files.ForceExclude
	s.RespectGitignore = cfg.GitignoreOr(s.RespectGitignore)

	if cfg.Lint.Fix != "" {
		mode, err := fix.ParseMode(cfg.Lint.Fix)
		if err != nil {
			return err
		}
		s.Linter.FixMode = mode
	}
	s.Linter.Disabled = append(s.Linter.Disabled, cfg.Lint.Disable...)
	if cfg.Lint.MaxDiagnostics > 0 {
		s.Linter.MaxDiagnostics = cfg.Lint.MaxDiagnostics
	}
	return nil
}

// relPrefix returns the slash path of root relative to base, "" when equal.
func relPrefix(base, root string) (string, error) {
	if root == "" || base == "" {
		return "", nil
	}
	rel, err := filepath.Rel(base, root)
	if err != nil {
		return "", fmt.Errorf("config root %q: %w", root, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." || strings.HasPrefix(rel, "../") || rel == ".." {
		return "", nil
	}
	return rel, nil
}

func userPattern(prefix, glob string) (Pattern, error) {
	glob = strings.TrimPrefix(strings.TrimSpace(glob), "./")
	if !doublestar.ValidatePattern(glob) {
		return Pattern{}, fmt.Errorf("invalid pattern %q", glob)
	}
	if prefix != "" && strings.Contains(glob, "/") {
		glob = prefix + "/" + glob
	}
	return Pattern{Glob: glob}, nil
}
