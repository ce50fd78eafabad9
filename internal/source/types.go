package source

type (
	// SourceID identifies a loaded source file. NoSourceID is the default
	// source carried by the null span and never names a real file.
	SourceID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const NoSourceID SourceID = 0

func (id SourceID) IsValid() bool { return id != NoSourceID }

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	// FileNotNFC marks content that is not in Unicode normalization form C.
	// The bytes are kept as-is so offsets stay valid.
	FileNotNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      SourceID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    uint64
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based, in bytes
}
