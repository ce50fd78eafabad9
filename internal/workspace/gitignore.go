package workspace

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

type ignoreRule struct {
	glob    string // slash path relative to the workspace base
	negate  bool
	dirOnly bool
}

// gitignore collects the rules of every .gitignore seen during a walk.
// Later rules win, as in git.
type gitignore struct {
	rules []ignoreRule
}

// add parses content of a .gitignore located in dir (slash path relative
// to the base, "" for the base itself).
func (g *gitignore) add(dir string, content []byte) {
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		var r ignoreRule
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		line = strings.TrimPrefix(line, `\`)
		if strings.HasSuffix(line, "/") {
			r.dirOnly = true
			line = strings.TrimSuffix(line, "/")
		}
		anchored := strings.Contains(line, "/")
		line = strings.TrimPrefix(line, "/")
		if line == "" || !doublestar.ValidatePattern(line) {
			continue
		}
		if !anchored {
			line = "**/" + line
		}
		if dir != "" {
			line = dir + "/" + line
		}
		r.glob = line
		g.rules = append(g.rules, r)
	}
}

// ignored reports whether rel is excluded by the collected rules.
func (g *gitignore) ignored(rel string, isDir bool) bool {
	if g == nil {
		return false
	}
	ignored := false
	for _, r := range g.rules {
		if r.dirOnly && !isDir {
			continue
		}
		if ok, _ := doublestar.Match(r.glob, rel); ok {
			ignored = !r.negate
		}
	}
	return ignored
}
