// Package workspace describes one lint run: its settings, the files it
// resolved and the parsed member of each file.
package workspace

import (
	"iter"

	"fortio.org/safecast"

	"bracketlint/internal/ast"
	"bracketlint/internal/source"
)

// MemberID indexes Members.
type MemberID uint32

// Member is one linted file.
type Member struct {
	// Path as resolved, not canonicalised.
	Path string
	File source.SourceID
	Root bool
	// Document is zero until the file is parsed.
	Document ast.Node[ast.Document]
}

// Members is the ordered set of files of a workspace.
type Members struct {
	byPath map[string]MemberID
	list   []Member
}

// Add appends m and returns its id. Adding a path twice replaces the entry.
func (ms *Members) Add(m Member) MemberID {
	if ms.byPath == nil {
		ms.byPath = make(map[string]MemberID)
	}
	if id, ok := ms.byPath[m.Path]; ok {
		ms.list[id] = m
		return id
	}
	id, err := safecast.Conv[MemberID](len(ms.list))
	if err != nil {
		panic(err)
	}
	ms.list = append(ms.list, m)
	ms.byPath[m.Path] = id
	return id
}

// Get returns the member with id, or nil.
func (ms *Members) Get(id MemberID) *Member {
	if int(id) >= len(ms.list) {
		return nil
	}
	return &ms.list[id]
}

// ByPath returns the member added for path.
func (ms *Members) ByPath(path string) (*Member, bool) {
	id, ok := ms.byPath[path]
	if !ok {
		return nil, false
	}
	return &ms.list[id], true
}

func (ms *Members) Len() int { return len(ms.list) }

// All yields members in insertion order.
func (ms *Members) All() iter.Seq2[MemberID, *Member] {
	return func(yield func(MemberID, *Member) bool) {
		for i := range ms.list {
			if !yield(MemberID(i), &ms.list[i]) { // #nosec G115 -- bounded by Add
				return
			}
		}
	}
}

// Workspace holds everything known about a run.
type Workspace struct {
	Base     string
	Settings Settings
	Files    *source.FileSet
	Members  Members
}

// New creates an empty workspace rooted at base.
func New(base string, settings Settings) *Workspace {
	return &Workspace{
		Base:     base,
		Settings: settings,
		Files:    source.NewFileSetWithBase(base),
	}
}

// Resolver returns a file resolver for the workspace settings.
func (ws *Workspace) Resolver() *Resolver {
	return NewResolver(&ws.Settings, ws.Base)
}
