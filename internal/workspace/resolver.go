package workspace

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ResolvedFile is a file selected for linting.
type ResolvedFile struct {
	Path string
	// Root is true for files passed explicitly, false for files found by walking.
	Root bool
}

// IsRoot reports whether the file was passed explicitly.
func (f ResolvedFile) IsRoot() bool { return f.Root }

// FileName returns the base name of the file.
func (f ResolvedFile) FileName() string { return filepath.Base(f.Path) }

// Resolver finds the files of a workspace.
type Resolver struct {
	settings *Settings
	base     string
}

// NewResolver creates a resolver. base anchors relative patterns and is
// usually the working directory.
func NewResolver(settings *Settings, base string) *Resolver {
	return &Resolver{settings: settings, base: base}
}

// RespectGitignore reports whether .gitignore files are honoured.
func (r *Resolver) RespectGitignore() bool { return r.settings.RespectGitignore }

// ForceExclude reports whether exclusions apply to explicit files.
func (r *Resolver) ForceExclude() bool { return r.settings.FileResolver.ForceExclude }

// FindFiles resolves paths into the sorted, de-duplicated list of files to lint.
// Directories are walked; explicit files are kept unless ForceExclude
// excludes them.
func (r *Resolver) FindFiles(paths []string) ([]ResolvedFile, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	seen := make(map[string]int)
	var out []ResolvedFile
	push := func(f ResolvedFile) {
		if i, ok := seen[f.Path]; ok {
			// явный файл важнее найденного обходом
			out[i].Root = out[i].Root || f.Root
			return
		}
		seen[f.Path] = len(out)
		out = append(out, f)
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("cannot resolve %q: %w", p, err)
		}
		clean := filepath.Clean(p)
		if !info.IsDir() {
			if r.ForceExclude() && r.excluded(r.rel(clean), false) {
				continue
			}
			push(ResolvedFile{Path: clean, Root: true})
			continue
		}
		if err := r.walk(clean, push); err != nil {
			return nil, err
		}
	}

	slices.SortFunc(out, func(a, b ResolvedFile) int { return cmp.Compare(a.Path, b.Path) })
	return out, nil
}

func (r *Resolver) walk(root string, push func(ResolvedFile)) error {
	var ignore *gitignore
	if r.RespectGitignore() {
		ignore = &gitignore{}
		r.loadParentIgnores(ignore, root)
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) && path != root {
				return nil
			}
			return err
		}
		rel := r.rel(path)
		if d.IsDir() {
			if path != root && (r.excluded(rel, true) || ignore.ignored(rel, true)) {
				return filepath.SkipDir
			}
			if ignore != nil {
				loadIgnore(ignore, path, rel)
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !matchAny(r.settings.FileResolver.Include, rel) || isGenerated(d.Name()) {
			return nil
		}
		if r.excluded(rel, false) || ignore.ignored(rel, false) {
			return nil
		}
		push(ResolvedFile{Path: path})
		return nil
	})
}

func (r *Resolver) excluded(rel string, isDir bool) bool {
	fr := r.settings.FileResolver
	if isDir {
		return matchAny(fr.Exclude, rel) || matchAny(fr.UserExclude, rel)
	}
	return matchAny(fr.UserExclude, rel)
}

// rel returns path as a slash path relative to the base. Paths outside
// the base stay as they are.
func (r *Resolver) rel(path string) string {
	if r.base == "" {
		return filepath.ToSlash(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	rel, err := filepath.Rel(r.base, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	if rel == "." {
		return ""
	}
	return filepath.ToSlash(rel)
}

// loadParentIgnores reads the .gitignore files between the base and root.
func (r *Resolver) loadParentIgnores(ignore *gitignore, root string) {
	rel := r.rel(root)
	if rel == "" || filepath.IsAbs(filepath.FromSlash(rel)) {
		return
	}
	loadIgnore(ignore, r.base, "")
	parts := strings.Split(rel, "/")
	dir := r.base
	for i := range parts[:len(parts)-1] {
		dir = filepath.Join(dir, parts[i])
		loadIgnore(ignore, dir, strings.Join(parts[:i+1], "/"))
	}
}

func loadIgnore(ignore *gitignore, dir, rel string) {
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	ignore.add(rel, data)
}

// isGenerated reports whether name is the output of `--fix` in generate mode.
func isGenerated(name string) bool {
	ext := filepath.Ext(name)
	return strings.HasSuffix(strings.TrimSuffix(name, ext), ".fixed")
}
