// Package config loads bracketlint.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the project configuration file.
const FileName = "bracketlint.toml"

// ErrNoConfig indicates that no bracketlint.toml exists above the start directory.
var ErrNoConfig = errors.New("no " + FileName + " found")

var fixModes = []string{"diff", "generate", "apply"}

// Files is the [files] section.
type Files struct {
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
	// RespectGitignore is nil when the key is absent.
	RespectGitignore *bool `toml:"respect-gitignore"`
	ForceExclude     bool  `toml:"force-exclude"`
}

// Lint is the [lint] section.
type Lint struct {
	Fix            string   `toml:"fix"`
	Disable        []string `toml:"disable"`
	MaxDiagnostics int      `toml:"max-diagnostics"`
}

// Config is a decoded bracketlint.toml.
type Config struct {
	// Path of the file the config was read from.
	Path string `toml:"-"`
	// Root is the directory holding the file; user patterns are relative to it.
	Root string `toml:"-"`

	Files Files `toml:"files"`
	Lint  Lint  `toml:"lint"`
}

// Find walks up from startDir to locate bracketlint.toml.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNoConfig
}

// Load decodes and validates the file at path. Unknown keys are errors.
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	cfg.Path = abs
	cfg.Root = filepath.Dir(abs)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Discover finds and loads the config governing startDir.
// It returns ErrNoConfig when there is none.
func Discover(startDir string) (*Config, error) {
	path, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	return Load(path)
}

func (c *Config) validate() error {
	c.Lint.Fix = strings.TrimSpace(c.Lint.Fix)
	if c.Lint.Fix != "" && !slices.Contains(fixModes, c.Lint.Fix) {
		return fmt.Errorf("invalid [lint].fix %q (expected: %s)", c.Lint.Fix, strings.Join(fixModes, "|"))
	}
	if c.Lint.MaxDiagnostics < 0 {
		return fmt.Errorf("invalid [lint].max-diagnostics %d: must not be negative", c.Lint.MaxDiagnostics)
	}
	for _, p := range slices.Concat(c.Files.Include, c.Files.Exclude) {
		if strings.TrimSpace(p) == "" {
			return errors.New("empty pattern in [files]")
		}
	}
	return nil
}

// GitignoreOr returns the respect-gitignore setting, or def when unset.
func (c *Config) GitignoreOr(def bool) bool {
	if c == nil || c.Files.RespectGitignore == nil {
		return def
	}
	return *c.Files.RespectGitignore
}
