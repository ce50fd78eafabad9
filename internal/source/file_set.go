package source

import (
	"fmt"
	"os"
	"sync"

	"fortio.org/safecast"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/text/unicode/norm"
)

// FileSet owns every source file of a run and hands out SourceIDs.
//
// Files are immutable once added; the set may be read from many goroutines
// while a single loader keeps adding files.
type FileSet struct {
	mu      sync.RWMutex
	files   []*File
	index   map[string]SourceID // path -> id
	baseDir string              // базовая директория для относительных путей
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return NewFileSetWithBase("")
}

// NewFileSetWithBase creates a FileSet with the given base directory for
// relative path rendering.
func NewFileSetWithBase(baseDir string) *FileSet {
	return &FileSet{
		// slot 0 is the default source of the null span
		files:   []*File{nil},
		index:   make(map[string]SourceID),
		baseDir: baseDir,
	}
}

// BaseDir returns the base directory, falling back to the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return fileSet.baseDir
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files) - 1
}

// Add stores a file from normalized bytes, computes LineIdx and Hash, and returns a new SourceID.
// It always creates a new SourceID even if a file with the same path already exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) SourceID {
	if !norm.NFC.IsNormal(content) {
		flags |= FileNotNFC
	}
	normalizedPath := normalizePath(path)
	file := &File{
		Path:    normalizedPath,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    xxhash.Sum64(content),
		Flags:   flags,
	}

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()

	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	file.ID = SourceID(n)
	fileSet.files = append(fileSet.files, file)
	// индекс всегда указывает на последнюю версию файла
	fileSet.index[normalizedPath] = file.ID
	return file.ID
}

// Load reads a file from disk, normalizes CRLF/BOM, and calls Add.
func (fileSet *FileSet) Load(path string) (SourceID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return NoSourceID, err
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds a virtual file (stdin, test, or generated) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) SourceID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id, or nil if id is unknown.
func (fileSet *FileSet) Get(id SourceID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return fileSet.files[id]
}

// GetLatest returns the latest SourceID registered for path.
func (fileSet *FileSet) GetLatest(path string) (SourceID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// GetByPath returns the latest file registered for path.
func (fileSet *FileSet) GetByPath(path string) (*File, bool) {
	id, ok := fileSet.GetLatest(path)
	if !ok {
		return nil, false
	}
	return fileSet.Get(id), true
}

// Resolve converts a span into line and column positions. It is meant for
// presentation only: nothing below the diagnostics layer works in lines.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.Source)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return toLineCol(f.LineIdx, span.Range.Start), toLineCol(f.LineIdx, span.Range.End)
}

// Text returns the source bytes covered by span.
func (fileSet *FileSet) Text(span Span) string {
	f := fileSet.Get(span.Source)
	if f == nil || int(span.Range.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[span.Range.Start:span.Range.End])
}

// GetLine returns the 1-based line lineNum without its newline, or "" when
// the line does not exist.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenLineIdx, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case lineNum-2 < lenLineIdx:
		start = f.LineIdx[lineNum-2] + 1
	default:
		return ""
	}
	if lineNum-1 < lenLineIdx {
		end = f.LineIdx[lineNum-1]
	} else {
		end = lenContent
	}
	if start > lenContent {
		return ""
	}
	return string(f.Content[start:min(end, lenContent)])
}

// FormatPath renders the path in one of the modes "absolute", "relative",
// "basename" or "auto".
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path
	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path
	case "basename":
		return BaseName(f.Path)
	default:
		return f.Path
	}
}
